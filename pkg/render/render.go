// Package render turns report documents into concrete textual
// representations.
package render

import (
	"strings"

	"github.com/selfcraft/atlas/internal/domain/report"
)

// PlainText renders a document as plain text with simple list markers
// and blank-line separation.
func PlainText(doc report.Document) string {
	var b strings.Builder
	for i, block := range doc {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch block.Kind {
		case report.KindHeading:
			b.WriteString(strings.ToUpper(block.Text))
		case report.KindParagraph:
			b.WriteString(block.Text)
		case report.KindBulletList:
			for j, item := range block.Items {
				if j > 0 {
					b.WriteString("\n")
				}
				b.WriteString("• " + item)
			}
		case report.KindCallout:
			b.WriteString("! " + block.Text)
		case report.KindDivider:
			b.WriteString(strings.Repeat("-", 30))
		}
	}
	return b.String()
}

// Markdown renders a document as markdown.
func Markdown(doc report.Document) string {
	var b strings.Builder
	for i, block := range doc {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch block.Kind {
		case report.KindHeading:
			level := block.Level
			if level < 1 {
				level = 1
			}
			b.WriteString(strings.Repeat("#", level) + " " + block.Text)
		case report.KindParagraph:
			b.WriteString(block.Text)
		case report.KindBulletList:
			for j, item := range block.Items {
				if j > 0 {
					b.WriteString("\n")
				}
				b.WriteString("- " + item)
			}
		case report.KindCallout:
			b.WriteString("> " + block.Text)
		case report.KindDivider:
			b.WriteString("---")
		}
	}
	return b.String()
}
