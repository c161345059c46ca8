package text_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/text"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	Convey("Given free-form answers", t, func() {
		Convey("When the text has punctuation and mixed case", func() {
			got := text.Tokenize("Рисую, ПИШУ музыку!")

			Convey("Then tokens are lowercased and punctuation is gone", func() {
				So(got, ShouldResemble, []string{"рисую", "пишу", "музыку"})
			})
		})

		Convey("When the text contains stop words and short tokens", func() {
			got := text.Tokenize("я помогаю, чтобы им было не так сложно")

			Convey("Then stop words and tokens under three runes are dropped", func() {
				So(got, ShouldResemble, []string{"помогаю", "сложно"})
			})
		})

		Convey("When the text is empty or only noise", func() {
			So(text.Tokenize(""), ShouldBeEmpty)
			So(text.Tokenize("!!! ?? , ."), ShouldBeEmpty)
			So(text.Tokenize("и в на о"), ShouldBeEmpty)
		})

		Convey("When the same text is tokenized twice", func() {
			a := text.Tokenize("анализирую данные в таблицах")
			b := text.Tokenize("анализирую данные в таблицах")

			Convey("Then the result is identical", func() {
				So(a, ShouldResemble, b)
			})
		})
	})
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	Convey("Given Cyrillic strings", t, func() {
		Convey("When the string is longer than the limit", func() {
			So(text.TruncateRunes("помогаю", 5), ShouldEqual, "помог")
		})

		Convey("When the string is shorter than or equal to the limit", func() {
			So(text.TruncateRunes("дом", 5), ShouldEqual, "дом")
			So(text.TruncateRunes("помог", 5), ShouldEqual, "помог")
		})
	})
}
