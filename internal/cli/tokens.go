package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdcore/pkg/mdast"
	"github.com/yaklabco/gomdcore/pkg/mdtoken"
)

func newTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <path>",
		Short: "Dump the lexer's token stream for a file",
		Long: `Tokenize a Markdown file one line at a time and print each line's token
stream, useful for diagnosing the block grouper's input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0])
		},
	}
	return cmd
}

func runTokens(cmd *cobra.Command, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		tokens := mdtoken.Tokenize(scanner.Text())
		fmt.Fprintf(out, "%d:\n", lineNo)
		for _, tok := range tokens {
			fmt.Fprintf(out, "  %-20s %q\n", tokenKindName(tok.Kind), tok.Render())
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func tokenKindName(kind mdast.TokenKind) string {
	switch kind {
	case mdast.TokText:
		return "Text"
	case mdast.TokPunctuation:
		return "Punctuation"
	case mdast.TokWhitespace:
		return "Whitespace"
	case mdast.TokTab:
		return "Tab"
	case mdast.TokNewline:
		return "Newline"
	case mdast.TokEscape:
		return "Escape"
	case mdast.TokOrderedListMarker:
		return "OrderedListMarker"
	case mdast.TokEmphasisRun:
		return "EmphasisRun"
	case mdast.TokOpenParen:
		return "OpenParen"
	case mdast.TokCloseParen:
		return "CloseParen"
	case mdast.TokOpenBracket:
		return "OpenBracket"
	case mdast.TokCloseBracket:
		return "CloseBracket"
	case mdast.TokTableCellSeparator:
		return "TableCellSeparator"
	case mdast.TokCodeTick:
		return "CodeTick"
	case mdast.TokCodeFence:
		return "CodeFence"
	case mdast.TokBlockQuoteMarker:
		return "BlockQuoteMarker"
	case mdast.TokThematicBreak:
		return "ThematicBreak"
	case mdast.TokRawHTMLTag:
		return "RawHTMLTag"
	default:
		return "Unknown"
	}
}
