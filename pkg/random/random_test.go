package random_test

import (
	"testing"

	"github.com/selfcraft/atlas/pkg/random"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSource(t *testing.T) {
	Convey("Given a seeded source", t, func() {
		a := random.New(42)
		b := random.New(42)

		Convey("Then two sources with the same seed should agree", func() {
			for i := 0; i < 20; i++ {
				So(a.IntN(10), ShouldEqual, b.IntN(10))
			}
		})

		Convey("Then values should stay in range", func() {
			for i := 0; i < 100; i++ {
				v := a.IntN(3)
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 3)
			}
		})
	})

	Convey("Given a fixed sequence stub", t, func() {
		seq := &random.Sequence{Values: []int{0, 1, 5}}

		Convey("Then it should replay values modulo n", func() {
			So(seq.IntN(2), ShouldEqual, 0)
			So(seq.IntN(2), ShouldEqual, 1)
			So(seq.IntN(2), ShouldEqual, 1) // 5 % 2
			So(seq.IntN(2), ShouldEqual, 0) // wraps around
		})

		Convey("Then an empty sequence should return zero", func() {
			empty := &random.Sequence{}
			So(empty.IntN(7), ShouldEqual, 0)
		})
	})
}
