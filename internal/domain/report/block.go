// Package report assembles computed results into ordered, typed
// documents independent of any rendering target.
package report

// BlockKind discriminates the document block variants.
type BlockKind string

const (
	KindHeading    BlockKind = "heading"
	KindParagraph  BlockKind = "paragraph"
	KindBulletList BlockKind = "bullet_list"
	KindCallout    BlockKind = "callout"
	KindDivider    BlockKind = "divider"
)

// Block is one typed content unit. Level applies to headings, Text to
// headings, paragraphs and callouts, Items to bullet lists.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text,omitempty"`
	Items []string  `json:"items,omitempty"`
}

// Document is an ordered sequence of blocks.
type Document []Block

func heading(level int, text string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text}
}

func paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

func bullets(items ...string) Block {
	return Block{Kind: KindBulletList, Items: items}
}

func callout(text string) Block {
	return Block{Kind: KindCallout, Text: text}
}

func divider() Block {
	return Block{Kind: KindDivider}
}
