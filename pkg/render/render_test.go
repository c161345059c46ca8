package render_test

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/selfcraft/atlas/internal/domain/report"
	"github.com/selfcraft/atlas/pkg/render"
)

func sampleDocument() report.Document {
	return report.Document{
		{Kind: report.KindHeading, Level: 1, Text: "Your psychological profile"},
		{Kind: report.KindParagraph, Text: "Strong creative signal."},
		{Kind: report.KindBulletList, Items: []string{"first", "second"}},
		{Kind: report.KindCallout, Text: "Mind the burnout risk."},
		{Kind: report.KindDivider},
		{Kind: report.KindHeading, Level: 2, Text: "Next steps"},
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	Convey("Given a document with all block kinds", t, func() {
		doc := sampleDocument()

		Convey("When rendered as plain text", func() {
			out := render.PlainText(doc)

			Convey("Then headings are uppercased", func() {
				So(out, ShouldContainSubstring, "YOUR PSYCHOLOGICAL PROFILE")
				So(out, ShouldContainSubstring, "NEXT STEPS")
			})

			Convey("Then paragraphs appear verbatim", func() {
				So(out, ShouldContainSubstring, "Strong creative signal.")
			})

			Convey("Then bullet items carry the dot marker on separate lines", func() {
				So(out, ShouldContainSubstring, "• first\n• second")
			})

			Convey("Then callouts carry the bang marker", func() {
				So(out, ShouldContainSubstring, "! Mind the burnout risk.")
			})

			Convey("Then dividers are a dashed line", func() {
				So(out, ShouldContainSubstring, strings.Repeat("-", 30))
			})

			Convey("Then blocks are separated by blank lines", func() {
				So(strings.Count(out, "\n\n"), ShouldEqual, len(doc)-1)
			})
		})

		Convey("When rendering an empty document", func() {
			So(render.PlainText(report.Document{}), ShouldEqual, "")
		})
	})
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	Convey("Given a document with all block kinds", t, func() {
		doc := sampleDocument()

		Convey("When rendered as markdown", func() {
			out := render.Markdown(doc)

			Convey("Then heading levels map to hash prefixes", func() {
				So(out, ShouldContainSubstring, "# Your psychological profile")
				So(out, ShouldContainSubstring, "## Next steps")
			})

			Convey("Then bullet items use dash markers", func() {
				So(out, ShouldContainSubstring, "- first\n- second")
			})

			Convey("Then callouts become blockquotes", func() {
				So(out, ShouldContainSubstring, "> Mind the burnout risk.")
			})

			Convey("Then dividers become horizontal rules", func() {
				So(out, ShouldContainSubstring, "---")
			})
		})

		Convey("When a heading has no level set", func() {
			out := render.Markdown(report.Document{{Kind: report.KindHeading, Text: "untitled"}})

			Convey("Then it falls back to a top-level heading", func() {
				So(out, ShouldEqual, "# untitled")
			})
		})
	})
}
