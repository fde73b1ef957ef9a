package mdparse

import (
	"strings"

	"github.com/yaklabco/gomdcore/pkg/mdast"
	"github.com/yaklabco/gomdcore/pkg/mdblock"
)

// ParseBlocks turns the grouper's fused token blocks into the final
// element tree (spec.md §4.3). cfg is normalized once up front so every
// recursive call sees sane TabSize/MaxNestingDepth values.
func ParseBlocks(blocks [][]mdast.Token, cfg mdast.Config) []mdast.MdBlockElement {
	cfg = cfg.Normalized()
	var out []mdast.MdBlockElement
	for _, tokens := range blocks {
		if el := parseBlock(tokens, cfg, 0); el != nil {
			out = append(out, *el)
		}
	}
	return out
}

func parseBlock(tokens []mdast.Token, cfg mdast.Config, depth int) *mdast.MdBlockElement {
	if len(tokens) == 0 || tokens[0].Kind == mdast.TokNewline {
		return nil
	}

	first := tokens[0]
	switch {
	case isHashTok(first):
		return parseHeading(tokens, cfg, depth)

	case first.Kind == mdast.TokThematicBreak:
		return &mdast.MdBlockElement{Kind: mdast.BlockThematicBreak}

	case first.Kind == mdast.TokCodeFence:
		return parseFencedCode(tokens, cfg)

	case first.Kind == mdast.TokTab:
		return parseIndentedCode(tokens, cfg)

	case first.Kind == mdast.TokBlockQuoteMarker:
		return parseBlockQuote(tokens, cfg, depth)

	case isDashTok(first):
		return parseList(tokens, cfg, depth, false)

	case first.Kind == mdast.TokOrderedListMarker:
		return parseList(tokens, cfg, depth, true)

	case first.Kind == mdast.TokTableCellSeparator:
		if table := parseTable(tokens, cfg); table != nil {
			return table
		}
		return paragraphOf(tokens, cfg, depth)

	case first.Kind == mdast.TokRawHTMLTag:
		return &mdast.MdBlockElement{Kind: mdast.BlockRawHTML, Raw: renderTokens(tokens)}

	default:
		return paragraphOf(tokens, cfg, depth)
	}
}

func paragraphOf(tokens []mdast.Token, cfg mdast.Config, depth int) *mdast.MdBlockElement {
	return &mdast.MdBlockElement{Kind: mdast.BlockParagraph, Content: ParseInline(tokens, cfg, depth)}
}

func isHashTok(t mdast.Token) bool { return t.Kind == mdast.TokPunctuation && t.Text == "#" }
func isDashTok(t mdast.Token) bool { return t.Kind == mdast.TokPunctuation && t.Text == "-" }

// parseHeading handles ATX headings: a run of 1-6 '#' tokens followed by a
// Whitespace token. Anything else (7+ hashes, or no following whitespace)
// is not a heading and falls back to a paragraph.
func parseHeading(tokens []mdast.Token, cfg mdast.Config, depth int) *mdast.MdBlockElement {
	level := 0
	for level < len(tokens) && isHashTok(tokens[level]) {
		level++
	}
	if level == 0 || level > 6 || level >= len(tokens) || tokens[level].Kind != mdast.TokWhitespace {
		return paragraphOf(tokens, cfg, depth)
	}
	content := ParseInline(tokens[level+1:], cfg, depth)
	return &mdast.MdBlockElement{Kind: mdast.BlockHeader, Level: level, Content: content}
}

// parseFencedCode reads the optional language off the opening fence line,
// discards the opening and closing fence lines, and expands tabs within
// the remaining lines verbatim.
func parseFencedCode(tokens []mdast.Token, cfg mdast.Config) *mdast.MdBlockElement {
	lines := splitOnNewline(tokens)

	var language *string
	if len(lines[0]) > 1 && lines[0][1].Kind == mdast.TokText {
		lang := lines[0][1].Text
		language = &lang
	}

	closingIdx := len(lines)
	for i := len(lines) - 1; i > 0; i-- {
		if len(lines[i]) > 0 && lines[i][0].Kind == mdast.TokCodeFence {
			closingIdx = i
			break
		}
	}

	var contentLines []string
	for _, line := range lines[1:closingIdx] {
		contentLines = append(contentLines, expandTabs(renderTokens(line), cfg.TabSize))
	}

	return &mdast.MdBlockElement{Kind: mdast.BlockCodeBlock, Language: language, Lines: contentLines}
}

// parseIndentedCode strips one leading Tab token from each line that
// starts with one (a whitespace-led line the grouper fused into the block
// has none) and expands any further embedded tabs.
func parseIndentedCode(tokens []mdast.Token, cfg mdast.Config) *mdast.MdBlockElement {
	lines := splitOnNewline(tokens)
	var contentLines []string
	for _, line := range lines {
		if len(line) > 0 && line[0].Kind == mdast.TokTab {
			line = line[1:]
		}
		contentLines = append(contentLines, expandTabs(renderTokens(line), cfg.TabSize))
	}
	return &mdast.MdBlockElement{Kind: mdast.BlockCodeBlock, Lines: contentLines}
}

// parseBlockQuote strips one leading BlockQuoteMarker and an optional
// single Whitespace from every line, regroups the result, and recurses.
// If the stripped content yields no child blocks, it falls back to a
// paragraph over the original, unstripped tokens.
func parseBlockQuote(tokens []mdast.Token, cfg mdast.Config, depth int) *mdast.MdBlockElement {
	if depth >= cfg.MaxNestingDepth {
		return paragraphOf(tokens, cfg, depth)
	}

	lines := splitOnNewline(tokens)
	stripped := make([][]mdast.Token, 0, len(lines))
	for _, line := range lines {
		stripped = append(stripped, stripBlockQuotePrefix(line))
	}

	regrouped := mdblock.Group(stripped)
	var children []mdast.MdBlockElement
	for _, b := range regrouped {
		if el := parseBlock(b, cfg, depth+1); el != nil {
			children = append(children, *el)
		}
	}
	if len(children) == 0 {
		return paragraphOf(tokens, cfg, depth)
	}
	return &mdast.MdBlockElement{Kind: mdast.BlockQuote, Children: children}
}

func stripBlockQuotePrefix(line []mdast.Token) []mdast.Token {
	if len(line) == 0 || line[0].Kind != mdast.TokBlockQuoteMarker {
		return line
	}
	line = line[1:]
	if len(line) > 0 && line[0].Kind == mdast.TokWhitespace {
		line = line[1:]
	}
	return line
}

// parseList walks a fused list block line by line, turning each
// marker-prefixed line into a ListItem and collecting any immediately
// following Tab-indented lines into a nested list, itself its own sibling
// ListItem (spec.md's scenario 3 shape).
func parseList(tokens []mdast.Token, cfg mdast.Config, depth int, ordered bool) *mdast.MdBlockElement {
	items := parseListItems(splitOnNewline(tokens), cfg, depth, ordered)
	kind := mdast.BlockUnorderedList
	if ordered {
		kind = mdast.BlockOrderedList
	}
	return &mdast.MdBlockElement{Kind: kind, Items: items}
}

func parseListItems(lines [][]mdast.Token, cfg mdast.Config, depth int, ordered bool) []mdast.ListItem {
	var items []mdast.ListItem
	i := 0
	for i < len(lines) {
		line := lines[i]
		if len(line) >= 2 && isItemMarker(line[0], ordered) && line[1].Kind == mdast.TokWhitespace {
			itemTokens := line[2:]
			itemBlock := parseBlock(itemTokens, cfg, depth+1)
			if itemBlock == nil {
				itemBlock = &mdast.MdBlockElement{Kind: mdast.BlockParagraph}
			}
			items = append(items, mdast.ListItem{Content: *itemBlock})
			i++

			if depth+1 < cfg.MaxNestingDepth {
				var nested [][]mdast.Token
				for i < len(lines) && len(lines[i]) > 0 && lines[i][0].Kind == mdast.TokTab {
					nested = append(nested, stripLeadingTabs(lines[i]))
					i++
				}
				if len(nested) > 0 {
					nestedOrdered := len(nested[0]) > 0 && nested[0][0].Kind == mdast.TokOrderedListMarker
					nestedItems := parseListItems(nested, cfg, depth+2, nestedOrdered)
					nestedKind := mdast.BlockUnorderedList
					if nestedOrdered {
						nestedKind = mdast.BlockOrderedList
					}
					items = append(items, mdast.ListItem{Content: mdast.MdBlockElement{Kind: nestedKind, Items: nestedItems}})
				}
			}
			continue
		}
		i++
	}
	return items
}

func isItemMarker(t mdast.Token, ordered bool) bool {
	if ordered {
		return t.Kind == mdast.TokOrderedListMarker
	}
	return isDashTok(t)
}

// parseTable requires at least a header row, an alignment row, and one
// body row; anything short of that isn't a table and the caller falls
// back to a paragraph.
func parseTable(tokens []mdast.Token, cfg mdast.Config) *mdast.MdBlockElement {
	lines := splitOnNewline(tokens)
	if len(lines) < 3 {
		return nil
	}

	aligns := parseAlignmentRow(lines[1], cfg)

	headerCells := splitRow(lines[0])
	headers := make([]mdast.TableCell, len(headerCells))
	for i, cell := range headerCells {
		headers[i] = mdast.TableCell{Content: ParseInline(cell, cfg, 0), Alignment: alignAt(aligns, i), IsHeader: true}
	}

	var body [][]mdast.TableCell
	for _, row := range lines[2:] {
		cells := splitRow(row)
		rowCells := make([]mdast.TableCell, len(cells))
		for i, cell := range cells {
			rowCells[i] = mdast.TableCell{Content: ParseInline(cell, cfg, 0), Alignment: alignAt(aligns, i)}
		}
		body = append(body, rowCells)
	}

	return &mdast.MdBlockElement{Kind: mdast.BlockTable, Headers: headers, Body: body}
}

func alignAt(aligns []mdast.TableAlignment, i int) mdast.TableAlignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return mdast.AlignNone
}

func parseAlignmentRow(line []mdast.Token, cfg mdast.Config) []mdast.TableAlignment {
	cells := splitRow(line)
	aligns := make([]mdast.TableAlignment, len(cells))
	for i, cell := range cells {
		text := strings.TrimSpace(renderTokens(cell))
		for _, r := range text {
			if r != '-' && r != ':' {
				cfg.Report(mdast.Diagnostic{Severity: mdast.SeverityWarning, Message: "unexpected character in table alignment row"})
				break
			}
		}
		left := strings.HasPrefix(text, ":")
		right := strings.HasSuffix(text, ":")
		switch {
		case left && right:
			aligns[i] = mdast.AlignCenter
		case left:
			aligns[i] = mdast.AlignLeft
		case right:
			aligns[i] = mdast.AlignRight
		default:
			aligns[i] = mdast.AlignNone
		}
	}
	return aligns
}

// splitRow splits a table row's tokens on TableCellSeparator, trims the
// empty leading/trailing cell produced by the row's surrounding pipes, and
// trims leading/trailing whitespace from each remaining cell.
func splitRow(line []mdast.Token) [][]mdast.Token {
	var raw [][]mdast.Token
	start := 0
	for i, t := range line {
		if t.Kind == mdast.TokTableCellSeparator {
			raw = append(raw, line[start:i])
			start = i + 1
		}
	}
	raw = append(raw, line[start:])

	if len(raw) > 0 && len(trimCellWhitespace(raw[0])) == 0 {
		raw = raw[1:]
	}
	if len(raw) > 0 && len(trimCellWhitespace(raw[len(raw)-1])) == 0 {
		raw = raw[:len(raw)-1]
	}

	cells := make([][]mdast.Token, len(raw))
	for i, cell := range raw {
		cells[i] = trimCellWhitespace(cell)
	}
	return cells
}

func trimCellWhitespace(cell []mdast.Token) []mdast.Token {
	start, end := 0, len(cell)
	for start < end && cell[start].Kind == mdast.TokWhitespace {
		start++
	}
	for end > start && cell[end-1].Kind == mdast.TokWhitespace {
		end--
	}
	return cell[start:end]
}
