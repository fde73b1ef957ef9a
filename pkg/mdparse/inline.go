// Package mdparse implements the block and inline parser: the final stage
// that turns a grouper's fused token blocks into the MdBlockElement /
// MdInlineElement tree (spec.md §4.3, §4.4), grounded on the original
// implementation's parse_blocks/parse_block/parse_inline/resolve_emphasis
// family.
//
// Reference-style links ("[foo][bar]") are not supported; they render as
// literal text.
package mdparse

import (
	"strings"

	"github.com/yaklabco/gomdcore/pkg/mdast"
)

// ParseInline lexes+groups having already happened, turns one block's flat
// token stream into its inline element sequence.
func ParseInline(tokens []mdast.Token, cfg mdast.Config, depth int) []mdast.MdInlineElement {
	cursor := mdast.NewTokenCursor(tokens)
	elements, _ := parseInlineSequence(cursor, tokens, cfg, depth, nil)
	return elements
}

// parseInlineSequence runs the shared scanning loop starting at cursor's
// current position. If stopAt is non-nil, the loop halts (without
// consuming) the first time stopAt reports true for the current token;
// terminated reports whether that happened, as opposed to running off the
// end of tokens.
func parseInlineSequence(cursor *mdast.TokenCursor, tokens []mdast.Token, cfg mdast.Config, depth int, stopAt func(mdast.Token) bool) (elements []mdast.MdInlineElement, terminated bool) {
	var delims []mdast.Delimiter
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			elements = append(elements, mdast.NewText(buf.String()))
			buf.Reset()
		}
	}

	for {
		tok, ok := cursor.Current()
		if !ok {
			break
		}
		if stopAt != nil && stopAt(tok) {
			terminated = true
			break
		}

		switch {
		case tok.Kind == mdast.TokEmphasisRun:
			flush()
			elements = append(elements, mdast.MdInlineElement{Kind: mdast.InlinePlaceholder, PlaceholderChar: tok.Delimiter})
			delims = append(delims, mdast.Delimiter{
				Ch:             tok.Delimiter,
				RunLength:      tok.RunLength,
				TokenPosition:  cursor.Position(),
				ParsedPosition: len(elements) - 1,
				Active:         true,
			})
			cursor.Advance()

		case tok.Kind == mdast.TokCodeTick:
			flush()
			elements = append(elements, parseCodeSpan(cursor, tokens))

		case tok.Kind == mdast.TokOpenBracket:
			flush()
			elements = append(elements, parseLinkOrImage(cursor, tokens, cfg, depth, false))

		case tok.Kind == mdast.TokPunctuation && tok.Text == "!" && peekIsOpenBracket(cursor):
			flush()
			cursor.Advance()
			elements = append(elements, parseLinkOrImage(cursor, tokens, cfg, depth, true))

		case tok.Kind == mdast.TokEscape:
			buf.WriteByte('\\')
			buf.WriteByte(tok.EscapedChar)
			cursor.Advance()

		default:
			buf.WriteString(tok.Render())
			cursor.Advance()
		}
	}

	flush()
	classifyFlanking(tokens, delims)
	resolveEmphasis(&elements, delims)
	return elements, terminated
}

func peekIsOpenBracket(cursor *mdast.TokenCursor) bool {
	next, ok := cursor.PeekAhead(1)
	return ok && next.Kind == mdast.TokOpenBracket
}

// parseCodeSpan consumes a CodeTick-delimited code span: a run of
// backticks, verbatim content up to a matching run of the same length, the
// closing run. If no matching close exists before EOF, the opening
// backtick(s) and everything after them are emitted as literal text
// instead (spec.md §4.4 "unclosed code span").
func parseCodeSpan(cursor *mdast.TokenCursor, tokens []mdast.Token) mdast.MdInlineElement {
	start := cursor.Position()
	openLen := 0
	for {
		tok, ok := cursor.Current()
		if !ok || tok.Kind != mdast.TokCodeTick {
			break
		}
		openLen++
		cursor.Advance()
	}

	var content strings.Builder
	for {
		tok, ok := cursor.Current()
		if !ok {
			return literalFrom(tokens, start, cursor.Position())
		}
		if tok.Kind == mdast.TokCodeTick {
			closeStart := cursor.Position()
			closeLen := 0
			for {
				t, ok2 := cursor.Current()
				if !ok2 || t.Kind != mdast.TokCodeTick {
					break
				}
				closeLen++
				cursor.Advance()
			}
			if closeLen == openLen {
				return mdast.MdInlineElement{Kind: mdast.InlineCode, Content: content.String()}
			}
			content.WriteString(strings.Repeat("`", cursor.Position()-closeStart))
			continue
		}
		content.WriteString(tok.Render())
		cursor.Advance()
	}
}

// literalFrom rebuilds the literal source text of tokens[start:end], used
// when a construct fails to close and must fall back to plain text.
func literalFrom(tokens []mdast.Token, start, end int) mdast.MdInlineElement {
	if end > len(tokens) {
		end = len(tokens)
	}
	return mdast.NewText(renderTokens(tokens[start:end]))
}

// flattenInline renders a label's already-resolved inline elements back to
// plain text, used for image alt text and for the literal-text fallbacks
// when a link/image fails to close.
func flattenInline(elements []mdast.MdInlineElement) string {
	var b strings.Builder
	flattenInlineInto(&b, elements)
	return b.String()
}

func flattenInlineInto(b *strings.Builder, elements []mdast.MdInlineElement) {
	for _, e := range elements {
		switch e.Kind {
		case mdast.InlineText, mdast.InlineCode:
			b.WriteString(e.Content)
		case mdast.InlinePlaceholder:
			b.WriteByte(e.PlaceholderChar)
		default:
			flattenInlineInto(b, e.Children)
		}
	}
}
