// Package mdtoken implements the Markdown lexer: a pure, stateless
// function turning one line of source text into an ordered token stream
// (spec.md §4.1). It never looks at surrounding lines or block context;
// that context-sensitivity lives one stage up, in pkg/mdblock.
package mdtoken

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdcore/pkg/mdast"
)

// Tokenize lexes a single line (no embedded newline) into its token
// stream, in the priority order spec.md §4.1 specifies. It never fails:
// any byte the rules below don't claim becomes a single-character
// Punctuation token.
func Tokenize(line string) []mdast.Token {
	if toks, ok := tokenizeThematicBreak(line); ok {
		return toks
	}

	var toks []mdast.Token
	runes := []rune(line)
	i := 0

	if tok, consumed, ok := tryOrderedListMarker(runes); ok {
		toks = append(toks, tok)
		i = consumed
	}

	for i < len(runes) {
		ch := runes[i]
		atLineStart := i == 0 && len(toks) == 0

		switch {
		case ch == '\t':
			toks = append(toks, mdast.Token{Kind: mdast.TokTab})
			i++

		case ch == '`':
			if atLineStart {
				start := i
				for i < len(runes) && runes[i] == '`' {
					i++
				}
				if i-start >= 3 {
					toks = append(toks, mdast.Token{Kind: mdast.TokCodeFence, Text: string(runes[start:i])})
					continue
				}
				i = start
			}
			toks = append(toks, mdast.Token{Kind: mdast.TokCodeTick})
			i++

		case ch == '>' && atLineStart:
			toks = append(toks, mdast.Token{Kind: mdast.TokBlockQuoteMarker})
			i++

		case ch == '*' || ch == '_':
			start := i
			for i < len(runes) && runes[i] == ch {
				i++
			}
			toks = append(toks, mdast.Token{
				Kind:      mdast.TokEmphasisRun,
				Delimiter: byte(ch),
				RunLength: i - start,
			})

		case ch == '<':
			if tok, consumed, ok := tryRawHTMLTag(runes, i); ok {
				toks = append(toks, tok)
				i = consumed
				continue
			}
			toks = append(toks, mdast.Token{Kind: mdast.TokPunctuation, Text: "<"})
			i++

		case ch == '\\':
			if i+1 < len(runes) && runes[i+1] <= 0x7F {
				toks = append(toks, mdast.Token{Kind: mdast.TokEscape, EscapedChar: byte(runes[i+1])})
				i += 2
			} else {
				toks = append(toks, mdast.Token{Kind: mdast.TokPunctuation, Text: "\\"})
				i++
			}

		case ch == '|':
			toks = append(toks, mdast.Token{Kind: mdast.TokTableCellSeparator})
			i++
		case ch == '(':
			toks = append(toks, mdast.Token{Kind: mdast.TokOpenParen})
			i++
		case ch == ')':
			toks = append(toks, mdast.Token{Kind: mdast.TokCloseParen})
			i++
		case ch == '[':
			toks = append(toks, mdast.Token{Kind: mdast.TokOpenBracket})
			i++
		case ch == ']':
			toks = append(toks, mdast.Token{Kind: mdast.TokCloseBracket})
			i++

		case ch == ' ':
			toks = append(toks, mdast.Token{Kind: mdast.TokWhitespace})
			i++

		case isWordChar(ch):
			start := i
			for i < len(runes) && isWordChar(runes[i]) {
				i++
			}
			toks = append(toks, mdast.Token{Kind: mdast.TokText, Text: string(runes[start:i])})

		default:
			toks = append(toks, mdast.Token{Kind: mdast.TokPunctuation, Text: string(ch)})
			i++
		}
	}

	return toks
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokenizeThematicBreak handles rule 4: a line consisting solely of "---"
// (trimmed of trailing whitespace) becomes a single ThematicBreak token,
// with any trailing whitespace/tabs preserved as their own tokens so
// Render() round-trips the original line exactly.
func tokenizeThematicBreak(line string) ([]mdast.Token, bool) {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed != "---" {
		return nil, false
	}
	toks := []mdast.Token{{Kind: mdast.TokThematicBreak, Text: "---"}}
	for _, c := range line[len(trimmed):] {
		if c == '\t' {
			toks = append(toks, mdast.Token{Kind: mdast.TokTab})
		} else {
			toks = append(toks, mdast.Token{Kind: mdast.TokWhitespace})
		}
	}
	return toks, true
}

// tryOrderedListMarker handles rule 5: an ASCII-digit run followed by '.'
// or ')' at the start of the line. Returns the token and how many runes of
// the line it consumed.
func tryOrderedListMarker(runes []rune) (mdast.Token, int, bool) {
	i := 0
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(runes) {
		return mdast.Token{}, 0, false
	}
	if runes[i] != '.' && runes[i] != ')' {
		return mdast.Token{}, 0, false
	}
	i++
	return mdast.Token{Kind: mdast.TokOrderedListMarker, Text: string(runes[:i])}, i, true
}

// tryRawHTMLTag handles rule 7: "<tag...>" where the character after '<'
// is an ASCII letter or '/' and the tag closes on the same line.
func tryRawHTMLTag(runes []rune, start int) (mdast.Token, int, bool) {
	if start+1 >= len(runes) {
		return mdast.Token{}, 0, false
	}
	next := runes[start+1]
	isLetter := (next >= 'a' && next <= 'z') || (next >= 'A' && next <= 'Z')
	if !isLetter && next != '/' {
		return mdast.Token{}, 0, false
	}
	for j := start + 2; j < len(runes); j++ {
		if runes[j] == '>' {
			return mdast.Token{Kind: mdast.TokRawHTMLTag, Text: string(runes[start : j+1])}, j + 1, true
		}
	}
	return mdast.Token{}, 0, false
}
