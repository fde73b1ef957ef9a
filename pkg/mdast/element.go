package mdast

// InlineKind classifies an MdInlineElement.
type InlineKind uint8

const (
	InlineText InlineKind = iota
	InlineBold
	InlineItalic
	InlineCode
	InlineLink
	InlineImage
	// InlinePlaceholder reserves a list slot for a not-yet-resolved
	// emphasis delimiter. It never survives to the returned tree; every
	// Placeholder still active at end of resolution is rewritten to
	// InlineText by the resolver (spec.md §4.4).
	InlinePlaceholder
)

// MdInlineElement is a node in the inline content tree. Fields are
// populated according to Kind; see the per-kind comment.
type MdInlineElement struct {
	Kind InlineKind

	// Content holds literal text for InlineText and InlineCode, and the
	// alt text for InlineImage.
	Content string

	// Children holds nested inline content for InlineBold, InlineItalic,
	// and the link text for InlineLink.
	Children []MdInlineElement

	// Title is the optional link/image title.
	Title *string

	// URL is the link/image destination.
	URL string

	// PlaceholderChar is the delimiter character an unresolved
	// InlinePlaceholder falls back to rendering as literal text.
	PlaceholderChar byte
}

// NewText returns a plain-text inline element.
func NewText(s string) MdInlineElement { return MdInlineElement{Kind: InlineText, Content: s} }

// BlockKind classifies an MdBlockElement.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockHeader
	BlockUnorderedList
	BlockOrderedList
	BlockCodeBlock
	BlockQuote
	BlockTable
	BlockRawHTML
	BlockThematicBreak
)

// MdBlockElement is a node in the top-level block tree. Fields are
// populated according to Kind; see the per-kind comment.
type MdBlockElement struct {
	Kind BlockKind

	// Content holds inline content for BlockParagraph and BlockHeader.
	Content []MdInlineElement

	// Level is the heading level (1..6) for BlockHeader.
	Level int

	// Items holds list items for BlockUnorderedList and BlockOrderedList.
	Items []ListItem

	// Language is the optional fenced-code info string for BlockCodeBlock.
	// Per spec.md §8, it is either nil or a non-empty string — never an
	// empty one.
	Language *string

	// Lines holds the literal code lines for BlockCodeBlock, tabs already
	// expanded to Config.TabSize spaces.
	Lines []string

	// Children holds the nested block content of a BlockQuote.
	Children []MdBlockElement

	// Headers and Body hold a BlockTable's header row and body rows.
	Headers []TableCell
	Body    [][]TableCell

	// Raw holds the faithfully-rendered source text of a BlockRawHTML
	// element.
	Raw string
}

// ListItem wraps exactly one block, which may itself be a nested list.
type ListItem struct {
	Content MdBlockElement
}

// TableAlignment is a table column's declared alignment.
type TableAlignment uint8

const (
	AlignNone TableAlignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// TableCell is one cell of a Table, either in the header row or a body row.
type TableCell struct {
	Content   []MdInlineElement
	Alignment TableAlignment
	IsHeader  bool
}
