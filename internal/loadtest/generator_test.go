package loadtest_test

import (
	"context"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/model"
	"github.com/selfcraft/atlas/internal/domain/rank"
	"github.com/selfcraft/atlas/internal/loadtest"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	Convey("Given a load test configuration", t, func() {
		config := &loadtest.Config{
			BaseURL:     "http://localhost:9080",
			NumSessions: 60,
			NumUsers:    5,
			Workers:     4,
			Timeout:     time.Second,
		}

		Convey("When submissions are generated", func() {
			subs := loadtest.Generate(context.Background(), config)

			Convey("Then the requested number is produced", func() {
				So(len(subs), ShouldEqual, 60)
			})

			Convey("Then every submission passes validation", func() {
				for _, sub := range subs {
					So(sub.Validate(), ShouldBeNil)
				}
			})

			Convey("Then all tools are covered", func() {
				seen := make(map[model.Tool]int)
				for _, sub := range subs {
					seen[sub.Tool]++
				}
				for _, tool := range model.Tools {
					So(seen[tool], ShouldBeGreaterThan, 0)
				}
			})

			Convey("Then users are drawn from the configured pool", func() {
				users := make(map[string]struct{})
				for _, sub := range subs {
					users[sub.User.UserID] = struct{}{}
				}
				So(len(users), ShouldBeLessThanOrEqualTo, 5)
			})

			Convey("Then every income session carries scoring answer cues", func() {
				for _, sub := range subs {
					if sub.Tool != model.ToolIncome {
						continue
					}
					scores := rank.CalcIncomeScores(sub.Income.Answers)
					total := 0
					for _, d := range catalog.DirectionPriority {
						total += scores.ByDirection(d)
					}
					So(total, ShouldBeGreaterThan, 0)
				}
			})

			Convey("Then submission IDs are unique", func() {
				ids := make(map[string]struct{})
				for _, sub := range subs {
					ids[sub.SubmissionID] = struct{}{}
				}
				So(len(ids), ShouldEqual, 60)
			})
		})
	})
}
