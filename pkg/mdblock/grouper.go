// Package mdblock implements the block grouper: the context-sensitive
// stage that fuses adjacent per-line token sequences belonging to the same
// block (multi-line paragraph, fenced code, table, list, block quote,
// setext heading) before the block parser ever sees them (spec.md §4.2).
//
// The grouper is grounded on the first-token dispatch table of spec.md
// §4.2, which was itself distilled from the original implementation's
// group_lines_to_blocks and its per-construct helpers; this port follows
// that dispatch order and its tie-breaks (a `---` line rewrites the open
// paragraph into a setext H2 only when one is open; otherwise it is its
// own ThematicBreak) rather than re-deriving them from scratch.
package mdblock

import "github.com/yaklabco/gomdcore/pkg/mdast"

// Group walks the per-line token sequences in order and returns one token
// sequence per fused block, with Newline tokens preserved as internal
// separators.
func Group(lines [][]mdast.Token) [][]mdast.Token {
	g := &grouper{}
	for _, line := range lines {
		g.processLine(line)
	}
	g.flush()
	return g.blocks
}

type grouper struct {
	blocks      [][]mdast.Token
	current     []mdast.Token
	insideFence bool
}

func (g *grouper) flush() {
	if len(g.current) > 0 {
		g.blocks = append(g.blocks, g.current)
		g.current = nil
	}
}

// start discards any open current block's accumulation decision (flushing
// it first) and begins a new one from line. line is copied defensively so
// later mutation of current never aliases the caller's slice.
func (g *grouper) start(line []mdast.Token) {
	g.flush()
	g.current = append([]mdast.Token(nil), line...)
}

// fuse appends sep (if non-nil) and then line's tokens to current.
func (g *grouper) fuse(sep *mdast.Token, line []mdast.Token) {
	if sep != nil {
		g.current = append(g.current, *sep)
	}
	g.current = append(g.current, line...)
}

var newlineTok = mdast.Token{Kind: mdast.TokNewline}
var whitespaceTok = mdast.Token{Kind: mdast.TokWhitespace}

func (g *grouper) processLine(line []mdast.Token) {
	if g.insideFence {
		g.fuse(&newlineTok, line)
		if len(line) > 0 && line[0].Kind == mdast.TokCodeFence {
			g.insideFence = false
			g.flush()
		}
		return
	}

	if len(line) == 0 {
		g.flush()
		return
	}

	first := line[0]
	switch {
	case isHash(first):
		g.start(line)

	case isDash(first):
		if isDashPtr(firstOf(g.current)) {
			g.fuse(&newlineTok, line)
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokTab:
		if isListLike(firstOf(g.current)) {
			g.fuse(&newlineTok, line)
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokOrderedListMarker:
		if f := firstOf(g.current); f != nil && f.Kind == mdast.TokOrderedListMarker {
			g.fuse(&newlineTok, line)
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokThematicBreak:
		if isParagraphStyle(g.current) {
			prependSetextH2(&g.current)
			g.flush()
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokBlockQuoteMarker:
		if f := firstOf(g.current); f != nil && f.Kind == mdast.TokBlockQuoteMarker {
			g.fuse(&newlineTok, line)
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokCodeFence:
		g.start(line)
		g.insideFence = true

	case first.Kind == mdast.TokRawHTMLTag:
		if f := firstOf(g.current); f != nil && f.Kind == mdast.TokRawHTMLTag {
			g.fuse(&newlineTok, line)
		} else {
			g.start(line)
		}

	case isSetextUnderlineRun(line):
		if isParagraphStyle(g.current) {
			prependSetextH1(&g.current)
			g.flush()
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokText:
		if isParagraphStyle(g.current) {
			g.fuse(&whitespaceTok, line)
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokTableCellSeparator:
		if f := firstOf(g.current); f != nil && f.Kind == mdast.TokTableCellSeparator {
			g.fuse(&newlineTok, line)
		} else {
			g.start(line)
		}

	case first.Kind == mdast.TokWhitespace:
		stripped := stripLeadingWhitespace(line)
		if len(g.current) == 0 {
			g.start(stripped)
		} else {
			g.fuse(&newlineTok, stripped)
		}

	default:
		g.current = append(g.current, line...)
	}
}

func firstOf(toks []mdast.Token) *mdast.Token {
	if len(toks) == 0 {
		return nil
	}
	return &toks[0]
}

func isHash(t mdast.Token) bool {
	return t.Kind == mdast.TokPunctuation && t.Text == "#"
}

func isDash(t mdast.Token) bool {
	return t.Kind == mdast.TokPunctuation && t.Text == "-"
}

func isDashPtr(t *mdast.Token) bool {
	return t != nil && isDash(*t)
}

// isListLike reports whether a block opens with something a Tab-led
// continuation line should attach to: a list marker (ordered or dash
// unordered), a raw HTML tag, or another Tab (an already-open indented
// code block).
func isListLike(t *mdast.Token) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case mdast.TokOrderedListMarker, mdast.TokRawHTMLTag, mdast.TokTab:
		return true
	}
	return isDashPtr(t)
}

// isParagraphStyle reports whether current is a non-empty, prose-like run
// that a following Text/setext line may continue or rewrite, i.e. it isn't
// led by one of the structural markers that give a block its own
// identity.
func isParagraphStyle(current []mdast.Token) bool {
	f := firstOf(current)
	if f == nil {
		return false
	}
	switch {
	case isHash(*f), isDash(*f):
		return false
	}
	switch f.Kind {
	case mdast.TokTab, mdast.TokOrderedListMarker, mdast.TokThematicBreak,
		mdast.TokBlockQuoteMarker, mdast.TokCodeFence, mdast.TokTableCellSeparator,
		mdast.TokRawHTMLTag:
		return false
	}
	return true
}

// isSetextUnderlineRun reports whether line consists solely of '=' tokens,
// the setext-H1 underline (spec.md §4.2's `Text("=")` row). '=' is not one
// of the lexer's reserved single characters, so rule 4.1/11 classifies it
// as Punctuation("=") the same way it does '#' and '-'; the dispatch row's
// "Text('=')" label is read as "a line of nothing but '=' tokens", not as
// naming the lexer's TokenKind literally.
func isSetextUnderlineRun(line []mdast.Token) bool {
	if len(line) == 0 {
		return false
	}
	for _, t := range line {
		if t.Kind != mdast.TokPunctuation || t.Text != "=" {
			return false
		}
	}
	return true
}

func stripLeadingWhitespace(line []mdast.Token) []mdast.Token {
	i := 0
	for i < len(line) && line[i].Kind == mdast.TokWhitespace {
		i++
	}
	return line[i:]
}

func prependSetextH2(current *[]mdast.Token) {
	prefix := []mdast.Token{
		{Kind: mdast.TokPunctuation, Text: "#"},
		{Kind: mdast.TokPunctuation, Text: "#"},
		{Kind: mdast.TokWhitespace},
	}
	*current = append(prefix, *current...)
}

func prependSetextH1(current *[]mdast.Token) {
	prefix := []mdast.Token{
		{Kind: mdast.TokPunctuation, Text: "#"},
		{Kind: mdast.TokWhitespace},
	}
	*current = append(prefix, *current...)
}
