package mdparse

import (
	"strings"

	"github.com/yaklabco/gomdcore/pkg/mdast"
)

// splitOnNewline splits a fused block's token stream into its constituent
// source lines, dropping the Newline separators themselves.
func splitOnNewline(tokens []mdast.Token) [][]mdast.Token {
	var lines [][]mdast.Token
	start := 0
	for i, t := range tokens {
		if t.Kind == mdast.TokNewline {
			lines = append(lines, tokens[start:i])
			start = i + 1
		}
	}
	lines = append(lines, tokens[start:])
	return lines
}

// renderTokens reconstructs the faithful literal text of a token slice.
func renderTokens(tokens []mdast.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Render())
	}
	return b.String()
}

// expandTabs expands tab characters within already-rendered text to
// cfg.TabSize spaces.
func expandTabs(s string, tabSize int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabSize))
}

// stripLeadingTabs removes every leading TokTab token from a line, used
// when un-indenting nested list continuations.
func stripLeadingTabs(line []mdast.Token) []mdast.Token {
	i := 0
	for i < len(line) && line[i].Kind == mdast.TokTab {
		i++
	}
	return line[i:]
}
