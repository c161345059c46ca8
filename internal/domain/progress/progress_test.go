package progress_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/progress"
)

func TestLabelDelta(t *testing.T) {
	t.Parallel()

	Convey("Given signed deltas", t, func() {
		So(progress.LabelDelta(3), ShouldEqual, progress.DeltaStrongUp)
		So(progress.LabelDelta(2), ShouldEqual, progress.DeltaStrongUp)
		So(progress.LabelDelta(1), ShouldEqual, progress.DeltaMildUp)
		So(progress.LabelDelta(0), ShouldEqual, progress.DeltaNone)
		So(progress.LabelDelta(-1), ShouldEqual, progress.DeltaMildDown)
		So(progress.LabelDelta(-2), ShouldEqual, progress.DeltaStrongDown)
		So(progress.LabelDelta(-5), ShouldEqual, progress.DeltaStrongDown)
	})
}

func TestCompare(t *testing.T) {
	t.Parallel()

	metrics := []progress.MetricDef{
		{Key: "energy", Label: "Energy"},
		{Key: "confidence", Label: "Confidence"},
		{Key: "clarity", Label: "Clarity"},
	}

	Convey("Given two consecutive entries", t, func() {
		Convey("When most metrics grow", func() {
			prev := progress.Entry{Values: map[string]int{"energy": 4, "confidence": 5, "clarity": 6}}
			cur := progress.Entry{Values: map[string]int{"energy": 7, "confidence": 6, "clarity": 6}}

			c := progress.Compare(cur, prev, metrics)

			Convey("Then the energy jump is a strong_up", func() {
				So(c.Deltas[0].Delta, ShouldEqual, 3)
				So(c.Deltas[0].Label, ShouldEqual, progress.DeltaStrongUp)
			})

			Convey("Then the overall trend is positive", func() {
				So(c.Grew, ShouldEqual, 2)
				So(c.Fell, ShouldEqual, 0)
				So(c.Unchanged, ShouldEqual, 1)
				So(c.Trend, ShouldEqual, progress.TrendPositive)
			})
		})

		Convey("When growth and decline tie", func() {
			prev := progress.Entry{Values: map[string]int{"energy": 5, "confidence": 5, "clarity": 5}}
			cur := progress.Entry{Values: map[string]int{"energy": 6, "confidence": 4, "clarity": 5}}

			c := progress.Compare(cur, prev, metrics)

			Convey("Then the trend defaults to stable", func() {
				So(c.Trend, ShouldEqual, progress.TrendStable)
			})
		})

		Convey("When most metrics fall", func() {
			prev := progress.Entry{Values: map[string]int{"energy": 8, "confidence": 7, "clarity": 5}}
			cur := progress.Entry{Values: map[string]int{"energy": 5, "confidence": 6, "clarity": 5}}

			c := progress.Compare(cur, prev, metrics)

			So(c.Trend, ShouldEqual, progress.TrendNegative)
		})

		Convey("When a metric is missing from one entry", func() {
			prev := progress.Entry{Values: map[string]int{"energy": 4}}
			cur := progress.Entry{Values: map[string]int{"energy": 4, "confidence": 3}}

			c := progress.Compare(cur, prev, metrics)

			Convey("Then the missing value reads as zero", func() {
				So(c.Deltas[1].Previous, ShouldEqual, 0)
				So(c.Deltas[1].Delta, ShouldEqual, 3)
			})
		})
	})
}
