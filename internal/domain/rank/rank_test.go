package rank_test

import (
	"testing"

	"pgregory.net/rapid"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/rank"
)

func TestProfessions(t *testing.T) {
	t.Parallel()

	Convey("Given a segment and a primary motivation", t, func() {
		Convey("When ranking the analytics catalogue for money", func() {
			ranked := rank.Professions(catalog.SegmentAnalytics, catalog.MotivationMoney)

			Convey("Then at most ten entries come back", func() {
				So(len(ranked), ShouldBeLessThanOrEqualTo, 10)
				So(ranked, ShouldNotBeEmpty)
			})

			Convey("Then money-tagged professions precede untagged ones", func() {
				seenUntagged := false
				for _, p := range ranked {
					if rank.MotivationMatches(p, catalog.MotivationMoney) {
						So(seenUntagged, ShouldBeFalse)
					} else {
						seenUntagged = true
					}
				}
			})
		})

		Convey("When the sort has ties", func() {
			ranked := rank.Professions(catalog.SegmentCreative, catalog.MotivationMeaning)
			source := catalog.SegmentProfessions[catalog.SegmentCreative]

			Convey("Then catalogue order is preserved within each bucket", func() {
				pos := func(name string) int {
					for i, p := range source {
						if p.Name == name {
							return i
						}
					}
					return -1
				}
				lastTagged, lastUntagged := -1, -1
				for _, p := range ranked {
					i := pos(p.Name)
					So(i, ShouldBeGreaterThanOrEqualTo, 0)
					if rank.MotivationMatches(p, catalog.MotivationMeaning) {
						So(i, ShouldBeGreaterThan, lastTagged)
						lastTagged = i
					} else {
						So(i, ShouldBeGreaterThan, lastUntagged)
						lastUntagged = i
					}
				}
			})
		})
	})
}

func TestProfessionsDeterminism(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		segment := rapid.SampledFrom(catalog.Segments).Draw(t, "segment")
		motivation := rapid.SampledFrom(catalog.Motivations).Draw(t, "motivation")

		a := rank.Professions(segment, motivation)
		b := rank.Professions(segment, motivation)

		if len(a) != len(b) {
			t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Name != b[i].Name {
				t.Fatalf("order differs at %d: %q vs %q", i, a[i].Name, b[i].Name)
			}
		}
	})
}

func TestCalcIncomeScores(t *testing.T) {
	t.Parallel()

	Convey("Given income questionnaire answers", t, func() {
		Convey("When the answers lean hands-on", func() {
			s := rank.CalcIncomeScores(rank.IncomeAnswers{
				"body_interest":     "Да, давно думаю об этом",
				"touch_comfort":     "Да",
				"physical_load":     "Хорошо",
				"offline_available": "Да",
				"start_ready":       "7",
			})

			Convey("Then the body accumulator collects every cue", func() {
				So(s.Body, ShouldEqual, 3+3+2+1+1)
				So(rank.PickDirection(s), ShouldEqual, catalog.DirectionBody)
			})
		})

		Convey("When touch comfort is hesitant", func() {
			s := rank.CalcIncomeScores(rank.IncomeAnswers{
				"touch_comfort": "Скорее да",
			})

			Convey("Then the lower weight applies", func() {
				So(s.Body, ShouldEqual, 2)
			})
		})

		Convey("When the answers favor remote work", func() {
			s := rank.CalcIncomeScores(rank.IncomeAnswers{
				"online_available":  "Да, есть ноутбук",
				"likes_people":      "Минимум общения",
				"offline_available": "Нет",
			})

			Convey("Then the online accumulator wins", func() {
				So(s.Online, ShouldEqual, 2+3+2)
				So(rank.PickDirection(s), ShouldEqual, catalog.DirectionOnline)
			})
		})

		Convey("When every accumulator is zero", func() {
			s := rank.CalcIncomeScores(rank.IncomeAnswers{})

			Convey("Then the priority order breaks the tie toward body", func() {
				So(rank.PickDirection(s), ShouldEqual, catalog.DirectionBody)
			})
		})

		Convey("When sales and online tie", func() {
			s := rank.IncomeScores{Sales: 4, Online: 4}

			Convey("Then sales wins by declared priority", func() {
				So(rank.PickDirection(s), ShouldEqual, catalog.DirectionSales)
			})
		})
	})
}
