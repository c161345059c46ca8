package classify_test

import (
	"testing"

	"pgregory.net/rapid"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/catalog"
	"github.com/selfcraft/atlas/internal/domain/classify"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	Convey("Given free-form activity answers", t, func() {
		Convey("When answers hit distinct segments", func() {
			dist := classify.Segments([]string{
				"помогаю друзьям решать проблемы",
				"анализирую данные в таблицах",
			})

			Convey("Then both segments get equal nonzero weight", func() {
				So(dist[catalog.SegmentHelpPeople], ShouldAlmostEqual, 0.5)
				So(dist[catalog.SegmentAnalytics], ShouldAlmostEqual, 0.5)
				So(dist[catalog.SegmentCreative], ShouldEqual, 0)
			})

			Convey("And Top2 resolves ties by declaration order", func() {
				first, second := dist.Top2()
				So(first, ShouldEqual, catalog.SegmentHelpPeople)
				So(second, ShouldEqual, catalog.SegmentAnalytics)
			})
		})

		Convey("When one answer matches two segments", func() {
			dist := classify.Segments([]string{"рисую и помогаю людям"})

			Convey("Then the credit is split evenly", func() {
				So(dist[catalog.SegmentCreative], ShouldAlmostEqual, 0.5)
				So(dist[catalog.SegmentHelpPeople], ShouldAlmostEqual, 0.5)
			})
		})

		Convey("When no answer matches anything", func() {
			dist := classify.Segments([]string{"просто гуляю по парку"})

			Convey("Then the distribution stays all-zero", func() {
				So(dist.Sum(), ShouldEqual, 0)
			})
		})

		Convey("When truncated word forms appear", func() {
			dist := classify.Segments([]string{"помощь соседям"})

			Convey("Then the five-rune prefix rule still matches", func() {
				So(dist[catalog.SegmentHelpPeople], ShouldAlmostEqual, 1)
			})
		})
	})
}

func TestSegmentsNormalizationInvariant(t *testing.T) {
	t.Parallel()

	samples := []string{
		"рисую картины",
		"помогаю людям",
		"анализирую данные",
		"веду переговоры",
		"организую мероприятия",
		"путешествую и работаю удаленно",
		"ничего особенного",
	}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		activities := make([]string, n)
		for i := range activities {
			activities[i] = rapid.SampledFrom(samples).Draw(t, "activity")
		}
		dist := classify.Segments(activities)
		sum := dist.Sum()
		if sum != 0 && (sum < 0.999999 || sum > 1.000001) {
			t.Fatalf("distribution sum = %v, want 1 or 0", sum)
		}
	})
}

func TestMotivation(t *testing.T) {
	t.Parallel()

	Convey("Given a motivation statement", t, func() {
		Convey("When it speaks about money", func() {
			counts := classify.Motivation("хочу зарабатывать деньги")

			Convey("Then the money counter gets one hit per token", func() {
				So(counts[catalog.MotivationMoney], ShouldEqual, 2)
				So(classify.PrimaryMotivation(counts), ShouldEqual, catalog.MotivationMoney)
			})
		})

		Convey("When the vocabulary is outside every keyword table", func() {
			counts := classify.Motivation("гуляю вечером по парку")

			Convey("Then the fallback motivation is process", func() {
				So(classify.PrimaryMotivation(counts), ShouldEqual, catalog.MotivationProcess)
			})
		})

		Convey("When two motivations tie", func() {
			counts := map[catalog.Motivation]int{
				catalog.MotivationMeaning: 2,
				catalog.MotivationMoney:   2,
			}

			Convey("Then declaration order breaks the tie", func() {
				So(classify.PrimaryMotivation(counts), ShouldEqual, catalog.MotivationMeaning)
			})
		})
	})
}
