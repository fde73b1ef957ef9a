package mdparse

import (
	"strings"

	"github.com/yaklabco/gomdcore/pkg/mdast"
)

// parseLinkOrImage consumes a "[...]" (link) or already-'!'-consumed
// "![...]" (image) construct starting at cursor's current OpenBracket,
// recursively parsing the label (nested links, images, and emphasis all
// resolve with their own local delimiter stack before the label is used),
// then the following "(url \"title\")". Any step that fails to find its
// expected terminator reverts to the literal source text consumed so far
// (spec.md §4.4 "Link/image parsing").
func parseLinkOrImage(cursor *mdast.TokenCursor, tokens []mdast.Token, cfg mdast.Config, depth int, isImage bool) mdast.MdInlineElement {
	start := cursor.Position()
	fallback := func() mdast.MdInlineElement {
		return mdast.NewText(prefixBang(isImage) + renderTokens(tokens[start:min(cursor.Position(), len(tokens))]))
	}

	if depth >= cfg.MaxNestingDepth {
		cursor.Advance() // consume '[' as a literal rather than recurse further
		return fallback()
	}
	cursor.Advance() // consume '['

	isCloseBracket := func(t mdast.Token) bool { return t.Kind == mdast.TokCloseBracket }
	labelElements, closed := parseInlineSequence(cursor, tokens, cfg, depth+1, isCloseBracket)
	if !closed {
		return fallback()
	}
	cursor.Advance() // consume ']'

	next, ok := cursor.Current()
	if !ok || next.Kind != mdast.TokOpenParen {
		return mdast.NewText(prefixBang(isImage) + "[" + flattenInline(labelElements) + "]")
	}
	cursor.Advance() // consume '('

	var urlBuf strings.Builder
	for {
		tok, ok := cursor.Current()
		if !ok {
			return fallback()
		}
		if tok.Kind == mdast.TokWhitespace || tok.Kind == mdast.TokCloseParen {
			break
		}
		urlBuf.WriteString(tok.Render())
		cursor.Advance()
	}
	url := urlBuf.String()

	var title *string
	if tok, ok := cursor.Current(); ok && tok.Kind == mdast.TokWhitespace {
		for {
			t, ok2 := cursor.Current()
			if !ok2 || t.Kind != mdast.TokWhitespace {
				break
			}
			cursor.Advance()
		}

		hasQuote := false
		if t, ok2 := cursor.Current(); ok2 && t.Kind == mdast.TokPunctuation && t.Text == "\"" {
			hasQuote = true
			cursor.Advance()
		}

		var titleBuf strings.Builder
		closedQuote := !hasQuote
		for {
			t, ok2 := cursor.Current()
			if !ok2 {
				return fallback()
			}
			if t.Kind == mdast.TokCloseParen {
				break
			}
			if hasQuote && !closedQuote && t.Kind == mdast.TokPunctuation && t.Text == "\"" {
				closedQuote = true
				cursor.Advance()
				continue
			}
			if !closedQuote {
				titleBuf.WriteString(t.Render())
			}
			cursor.Advance()
		}
		if hasQuote && !closedQuote {
			return fallback()
		}
		if titleBuf.Len() > 0 {
			s := titleBuf.String()
			title = &s
		}
	}

	tok, ok := cursor.Current()
	if !ok || tok.Kind != mdast.TokCloseParen {
		return fallback()
	}
	cursor.Advance() // consume ')'

	if isImage {
		return mdast.MdInlineElement{Kind: mdast.InlineImage, Content: flattenInline(labelElements), Title: title, URL: url}
	}
	return mdast.MdInlineElement{Kind: mdast.InlineLink, Children: labelElements, Title: title, URL: url}
}

func prefixBang(isImage bool) string {
	if isImage {
		return "!"
	}
	return ""
}
