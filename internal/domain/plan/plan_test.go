package plan_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/indices"
	"github.com/selfcraft/atlas/internal/domain/plan"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	Convey("Given planning inputs close to the income goal", t, func() {
		in := plan.UserInputs{
			Direction:     catalog.DirectionOnline,
			Energy:        9,
			Motivation:    9,
			Confidence:    8,
			TimePerWeek:   25,
			IncomeTarget:  100000,
			CurrentIncome: 90000,
		}

		p := plan.Build(in)

		Convey("Then readiness and strategy follow the index", func() {
			So(p.Readiness, ShouldEqual, 9)
			So(p.Strategy, ShouldEqual, indices.StrategyIntensive)
		})

		Convey("Then the small gap triggers the scaling block", func() {
			So(p.GapPercent, ShouldAlmostEqual, 10)
			So(p.Scaling, ShouldBeTrue)
			So(p.ActiveSearch, ShouldBeFalse)

			tasks := p.Months[1].Weeks[3].Tasks
			So(tasks[len(tasks)-2], ShouldContainSubstring, "Raise your rate")
			So(tasks[len(tasks)-1], ShouldContainSubstring, "extended package")

			Convey("And month 1 is left untouched", func() {
				for _, task := range p.Months[0].Weeks[3].Tasks {
					So(task, ShouldNotContainSubstring, "Raise your rate")
				}
			})
		})

		Convey("Then plenty of time adds the month-3 suffix", func() {
			So(p.HighTime, ShouldBeTrue)
			So(strings.HasSuffix(p.Months[2].Title, "(+ accelerated scaling)"), ShouldBeTrue)
			So(p.Months[0].Title, ShouldNotContainSubstring, "accelerated")
			So(p.Months[1].Title, ShouldNotContainSubstring, "accelerated")
		})
	})

	Convey("Given very little time per week", t, func() {
		in := plan.UserInputs{
			Direction:     catalog.DirectionSales,
			Energy:        9,
			Motivation:    9,
			Confidence:    9,
			TimePerWeek:   5,
			IncomeTarget:  100000,
			CurrentIncome: 50000,
		}

		p := plan.Build(in)

		Convey("Then every week keeps ceil(0.7n) front tasks", func() {
			So(p.LowTime, ShouldBeTrue)

			src := plan.Templates[catalog.DirectionSales][indices.StrategyIntensive][0].Weeks[0]
			So(len(src.Tasks), ShouldEqual, 6)

			got := p.Months[0].Weeks[0].Tasks
			So(got, ShouldHaveLength, 5)
			So(got, ShouldResemble, src.Tasks[:5])
		})
	})

	Convey("Given a huge income gap", t, func() {
		in := plan.UserInputs{
			Direction:     catalog.DirectionBody,
			Energy:        6,
			Motivation:    5,
			Confidence:    5,
			TimePerWeek:   10,
			IncomeTarget:  100000,
			CurrentIncome: 10000,
		}

		p := plan.Build(in)

		Convey("Then active search lands in week 4 of months 2 and 3", func() {
			So(p.ActiveSearch, ShouldBeTrue)
			for mi := 1; mi <= 2; mi++ {
				tasks := p.Months[mi].Weeks[3].Tasks
				So(tasks[len(tasks)-2], ShouldContainSubstring, "Active client search")
			}
		})
	})

	Convey("Given a zero income target", t, func() {
		p := plan.Build(plan.UserInputs{
			Direction: catalog.DirectionSoft,
			Energy:    3, Motivation: 3, Confidence: 3,
			TimePerWeek: 10,
		})

		Convey("Then the gap reads fully unmet and readiness is low", func() {
			So(p.GapPercent, ShouldEqual, 100)
			So(p.Strategy, ShouldEqual, indices.StrategySoft)
			So(p.LowReadiness, ShouldBeTrue)
		})
	})
}

func TestBuildNonAliasing(t *testing.T) {
	t.Parallel()

	Convey("Given two plans built from the same direction and tier", t, func() {
		in := plan.UserInputs{
			Direction: catalog.DirectionCreative,
			Energy:    9, Motivation: 9, Confidence: 9,
			TimePerWeek: 10, IncomeTarget: 100000, CurrentIncome: 50000,
		}

		a := plan.Build(in)
		b := plan.Build(in)

		Convey("When one copy is mutated", func() {
			a.Months[0].Weeks[0].Tasks[0] = "mutated"
			a.Checkpoints[0] = "mutated"

			Convey("Then the other copy is unaffected", func() {
				So(b.Months[0].Weeks[0].Tasks[0], ShouldNotEqual, "mutated")
				So(b.Checkpoints[0], ShouldNotEqual, "mutated")
			})

			Convey("Then the static template is unaffected", func() {
				tpl := plan.Templates[catalog.DirectionCreative][indices.StrategyIntensive]
				So(tpl[0].Weeks[0].Tasks[0], ShouldNotEqual, "mutated")
				So(plan.Checkpoints[catalog.DirectionCreative][0], ShouldNotEqual, "mutated")
			})
		})

		Convey("When built twice from identical inputs", func() {
			So(a.Months, ShouldResemble, plan.Build(in).Months)
		})
	})
}

func TestSuggestDirection(t *testing.T) {
	t.Parallel()

	Convey("Given profiled top segments", t, func() {
		Convey("When a segment maps to a direction", func() {
			cases := map[catalog.Segment]catalog.Direction{
				catalog.SegmentCreative:  catalog.DirectionCreative,
				catalog.SegmentBusiness:  catalog.DirectionSales,
				catalog.SegmentPractical: catalog.DirectionBody,
				catalog.SegmentResearch:  catalog.DirectionOnline,
				catalog.SegmentEducation: catalog.DirectionSoft,
			}
			for seg, want := range cases {
				dir, ok := plan.SuggestDirection(seg)
				So(ok, ShouldBeTrue)
				So(dir, ShouldEqual, want)
			}
		})

		Convey("When every catalogued segment is covered", func() {
			for _, seg := range catalog.Segments {
				_, ok := plan.SuggestDirection(seg)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("When the segment is unknown", func() {
			_, ok := plan.SuggestDirection(catalog.Segment("astrology"))
			So(ok, ShouldBeFalse)
		})
	})
}
