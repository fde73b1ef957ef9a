package mdparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdcore/pkg/mdast"
	"github.com/yaklabco/gomdcore/pkg/mdblock"
	"github.com/yaklabco/gomdcore/pkg/mdparse"
	"github.com/yaklabco/gomdcore/pkg/mdtoken"
)

func parseSource(t *testing.T, lines ...string) []mdast.MdBlockElement {
	t.Helper()
	toks := make([][]mdast.Token, len(lines))
	for i, l := range lines {
		toks[i] = mdtoken.Tokenize(l)
	}
	blocks := mdblock.Group(toks)
	return mdparse.ParseBlocks(blocks, mdast.NewConfig())
}

func TestParseHeading(t *testing.T) {
	elements := parseSource(t, "## Title")
	require.Len(t, elements, 1)
	assert.Equal(t, mdast.BlockHeader, elements[0].Kind)
	assert.Equal(t, 2, elements[0].Level)
	require.Len(t, elements[0].Content, 1)
	assert.Equal(t, "Title", elements[0].Content[0].Content)
}

func TestParseExcessHashesFallsBackToParagraph(t *testing.T) {
	elements := parseSource(t, "####### not a heading")
	require.Len(t, elements, 1)
	assert.Equal(t, mdast.BlockParagraph, elements[0].Kind)
}

func TestParseThematicBreak(t *testing.T) {
	elements := parseSource(t, "- item", "---")
	require.Len(t, elements, 2)
	assert.Equal(t, mdast.BlockThematicBreak, elements[1].Kind)
}

func TestParseFencedCodeBlock(t *testing.T) {
	elements := parseSource(t, "```go", "func main() {}", "```")
	require.Len(t, elements, 1)
	require.Equal(t, mdast.BlockCodeBlock, elements[0].Kind)
	require.NotNil(t, elements[0].Language)
	assert.Equal(t, "go", *elements[0].Language)
	require.Len(t, elements[0].Lines, 1)
	assert.Equal(t, "func main() {}", elements[0].Lines[0])
}

func TestParseIndentedCodeBlockExpandsTabs(t *testing.T) {
	elements := parseSource(t, "\ta\tb")
	require.Len(t, elements, 1)
	require.Equal(t, mdast.BlockCodeBlock, elements[0].Kind)
	require.Len(t, elements[0].Lines, 1)
	assert.Equal(t, "a    b", elements[0].Lines[0])
}

func TestParseBlockQuote(t *testing.T) {
	elements := parseSource(t, "> a quote", "> still quoted")
	require.Len(t, elements, 1)
	require.Equal(t, mdast.BlockQuote, elements[0].Kind)
	require.Len(t, elements[0].Children, 1)
	assert.Equal(t, mdast.BlockParagraph, elements[0].Children[0].Kind)
}

func TestParseUnorderedListWithNestedItem(t *testing.T) {
	elements := parseSource(t, "- one", "\t- two", "- three")
	require.Len(t, elements, 1)
	require.Equal(t, mdast.BlockUnorderedList, elements[0].Kind)
	require.Len(t, elements[0].Items, 3)
	assert.Equal(t, mdast.BlockUnorderedList, elements[0].Items[1].Content.Kind)
	require.Len(t, elements[0].Items[1].Content.Items, 1)
}

func TestParseOrderedList(t *testing.T) {
	elements := parseSource(t, "1. first", "2. second")
	require.Len(t, elements, 1)
	require.Equal(t, mdast.BlockOrderedList, elements[0].Kind)
	require.Len(t, elements[0].Items, 2)
}

func TestParseTable(t *testing.T) {
	elements := parseSource(t, "|a|b|", "|:-|-:|", "|1|2|")
	require.Len(t, elements, 1)
	require.Equal(t, mdast.BlockTable, elements[0].Kind)
	require.Len(t, elements[0].Headers, 2)
	assert.Equal(t, mdast.AlignLeft, elements[0].Headers[0].Alignment)
	assert.Equal(t, mdast.AlignRight, elements[0].Headers[1].Alignment)
	require.Len(t, elements[0].Body, 1)
}

func TestParseTableTooFewRowsFallsBackToParagraph(t *testing.T) {
	elements := parseSource(t, "|a|b|")
	require.Len(t, elements, 1)
	assert.Equal(t, mdast.BlockParagraph, elements[0].Kind)
}

func TestParseRawHTMLBlock(t *testing.T) {
	elements := parseSource(t, "<div>")
	require.Len(t, elements, 1)
	assert.Equal(t, mdast.BlockRawHTML, elements[0].Kind)
	assert.Equal(t, "<div>", elements[0].Raw)
}
