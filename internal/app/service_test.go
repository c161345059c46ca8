package service_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	service "github.com/selfcraft/atlas/internal/app"
	"github.com/selfcraft/atlas/internal/domain/model"
)

func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestServiceLifecycle(t *testing.T) {
	t.Parallel()

	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := service.New(
			service.WithWorkerCount(2),
			service.WithQueueSize(64),
			service.WithDedupeSize(128),
			service.WithHistoryLimit(10),
		)
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When an income submission is enqueued", func() {
			sub := submission(model.ToolIncome)
			sub.Income = &model.IncomeInput{Answers: map[string]string{
				"body_interest": "да",
			}}

			So(svc.SeenAndRecord(ctx, sub.SubmissionID), ShouldBeFalse)
			So(svc.Enqueue(ctx, sub), ShouldBeTrue)

			Convey("Then a snapshot lands in the user's history", func() {
				ok := waitFor(2*time.Second, func() bool {
					snaps, err := svc.Recent(ctx, "user-1", model.ToolIncome, 5)
					return err == nil && len(snaps) == 1
				})
				So(ok, ShouldBeTrue)

				snaps, err := svc.Recent(ctx, "user-1", model.ToolIncome, 5)
				So(err, ShouldBeNil)
				So(snaps[0].Income, ShouldNotBeNil)
				So(snaps[0].ReportText, ShouldNotBeEmpty)
			})

			Convey("And the same id is seen on a retry", func() {
				So(svc.SeenAndRecord(ctx, sub.SubmissionID), ShouldBeTrue)
				So(svc.Size(), ShouldEqual, 1)

				svc.Unrecord(ctx, sub.SubmissionID)
				So(svc.Size(), ShouldEqual, 0)
			})
		})

		Convey("When stats are requested", func() {
			stats := svc.GetStats()

			So(stats["started"], ShouldBeTrue)
			So(stats["worker_count"], ShouldEqual, 2)
			So(stats, ShouldContainKey, "queue_length")
			So(stats, ShouldContainKey, "total_snapshots")
		})

		Convey("When the service stops", func() {
			svc.Stop()

			Convey("Then a second stop is harmless", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}
