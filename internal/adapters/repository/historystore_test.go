package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/adapters/repository"
	"github.com/selfcraft/atlas/internal/domain/model"
)

func snap(userID string, tool model.Tool, n int) model.Snapshot {
	return model.Snapshot{
		ID:        fmt.Sprintf("%s-%s-%d", userID, tool, n),
		UserID:    userID,
		Tool:      tool,
		CreatedAt: time.Date(2026, 8, 1, 0, 0, n, 0, time.UTC),
	}
}

func TestHistoryStoreAppendAndRead(t *testing.T) {
	t.Parallel()

	Convey("Given an empty history store", t, func() {
		ctx := context.Background()
		store := repository.NewHistoryStore(ctx)
		defer func() { So(store.Close(), ShouldBeNil) }()

		Convey("When nothing has been appended", func() {
			Convey("Then reads report the empty state", func() {
				So(store.Count(ctx), ShouldEqual, 0)
				So(store.Users(ctx), ShouldEqual, 0)
				So(store.CountFor(ctx, "u1", model.ToolPsych), ShouldEqual, 0)

				recent, err := store.Recent(ctx, "u1", model.ToolPsych, 5)
				So(err, ShouldBeNil)
				So(recent, ShouldBeEmpty)

				_, err = store.Latest(ctx, "u1", model.ToolPsych)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When snapshots are appended for two users", func() {
			So(store.Append(ctx, snap("u1", model.ToolPsych, 1)), ShouldBeNil)
			So(store.Append(ctx, snap("u1", model.ToolPsych, 2)), ShouldBeNil)
			So(store.Append(ctx, snap("u1", model.ToolJournal, 1)), ShouldBeNil)
			So(store.Append(ctx, snap("u2", model.ToolPsych, 1)), ShouldBeNil)

			Convey("Then counts track users, tools and totals", func() {
				So(store.Count(ctx), ShouldEqual, 4)
				So(store.Users(ctx), ShouldEqual, 2)
				So(store.CountFor(ctx, "u1", model.ToolPsych), ShouldEqual, 2)
				So(store.CountFor(ctx, "u1", model.ToolJournal), ShouldEqual, 1)
			})

			Convey("Then Latest returns the newest snapshot per history", func() {
				latest, err := store.Latest(ctx, "u1", model.ToolPsych)
				So(err, ShouldBeNil)
				So(latest.ID, ShouldEqual, "u1-psych-2")
			})

			Convey("Then Recent returns newest first", func() {
				recent, err := store.Recent(ctx, "u1", model.ToolPsych, 10)
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 2)
				So(recent[0].ID, ShouldEqual, "u1-psych-2")
				So(recent[1].ID, ShouldEqual, "u1-psych-1")
			})

			Convey("Then Recent honors the limit", func() {
				recent, err := store.Recent(ctx, "u1", model.ToolPsych, 1)
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 1)
				So(recent[0].ID, ShouldEqual, "u1-psych-2")
			})

			Convey("Then a non-positive limit is rejected", func() {
				_, err := store.Recent(ctx, "u1", model.ToolPsych, 0)
				So(errors.Is(err, repository.ErrInvalidLimit), ShouldBeTrue)
			})
		})
	})
}

func TestHistoryStoreLimit(t *testing.T) {
	t.Parallel()

	Convey("Given a store with a history limit of 3", t, func() {
		ctx := context.Background()
		store := repository.NewHistoryStore(ctx, repository.WithHistoryLimit(3))
		defer func() { So(store.Close(), ShouldBeNil) }()

		Convey("When five snapshots land in one history", func() {
			for n := 1; n <= 5; n++ {
				So(store.Append(ctx, snap("u1", model.ToolProgress, n)), ShouldBeNil)
			}

			Convey("Then only the newest three survive", func() {
				So(store.CountFor(ctx, "u1", model.ToolProgress), ShouldEqual, 3)
				So(store.Count(ctx), ShouldEqual, 3)

				recent, err := store.Recent(ctx, "u1", model.ToolProgress, 10)
				So(err, ShouldBeNil)
				So(recent[0].ID, ShouldEqual, "u1-progress-5")
				So(recent[2].ID, ShouldEqual, "u1-progress-3")
			})
		})
	})
}

func TestHistoryStoreConcurrency(t *testing.T) {
	t.Parallel()

	Convey("Given concurrent writers on distinct users", t, func() {
		ctx := context.Background()
		store := repository.NewHistoryStore(ctx)
		defer func() { So(store.Close(), ShouldBeNil) }()

		const writers = 20
		const perWriter = 10

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				userID := fmt.Sprintf("user-%d", i)
				for n := 1; n <= perWriter; n++ {
					_ = store.Append(ctx, snap(userID, model.ToolBarrier, n))
				}
			}(i)
		}
		wg.Wait()

		Convey("Then every snapshot is accounted for", func() {
			So(store.Count(ctx), ShouldEqual, writers*perWriter)
			So(store.Users(ctx), ShouldEqual, writers)
		})
	})
}
