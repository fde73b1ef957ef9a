package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdcore/internal/configloader"
	"github.com/yaklabco/gomdcore/internal/ui/pretty"
	"github.com/yaklabco/gomdcore/pkg/mdast"
	"github.com/yaklabco/gomdcore/pkg/mdblock"
	"github.com/yaklabco/gomdcore/pkg/mdparse"
	"github.com/yaklabco/gomdcore/pkg/mdtoken"
)

func newTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <path>",
		Short: "Pretty-print a file's parsed block/inline tree",
		Long: `Parse a Markdown file and print its block/inline element tree, one
indented line per node, useful for diagnosing the parser and emphasis
resolver.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args[0])
		},
	}
	return cmd
}

func runTree(cmd *cobra.Command, path string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := loadResult.Config

	lines, err := readFileLines(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	mdCfg := mdast.Config{
		TabSize:         cfg.TabSize,
		MaxNestingDepth: cfg.MaxNestingDepth,
	}.Normalized()

	tokenLines := make([][]mdast.Token, len(lines))
	for i, line := range lines {
		tokenLines[i] = mdtoken.Tokenize(line)
	}
	blocks := mdblock.Group(tokenLines)
	elements := mdparse.ParseBlocks(blocks, mdCfg)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	out := cmd.OutOrStdout()
	for _, el := range elements {
		fmt.Fprint(out, formatBlock(styles, el, 0))
	}

	return nil
}

func formatBlock(styles *pretty.Styles, el mdast.MdBlockElement, depth int) string {
	var b strings.Builder
	indent := strings.Repeat("  ", depth)

	b.WriteString(indent)
	b.WriteString(styles.TreeBranch.Render("- "))
	b.WriteString(styles.TreeNode.Render(blockKindName(el.Kind)))

	switch el.Kind {
	case mdast.BlockHeader:
		b.WriteString(styles.TreeText.Render(fmt.Sprintf(" level=%d", el.Level)))
	case mdast.BlockCodeBlock:
		if el.Language != nil {
			b.WriteString(styles.TreeText.Render(fmt.Sprintf(" lang=%s", *el.Language)))
		}
	}
	b.WriteString("\n")

	for _, inline := range el.Content {
		b.WriteString(formatInline(styles, inline, depth+1))
	}
	for _, child := range el.Children {
		b.WriteString(formatBlock(styles, child, depth+1))
	}
	for _, item := range el.Items {
		b.WriteString(formatBlock(styles, item.Content, depth+1))
	}
	for rowIdx, row := range append([][]mdast.TableCell{el.Headers}, el.Body...) {
		for _, cell := range row {
			cellIndent := strings.Repeat("  ", depth+1)
			b.WriteString(cellIndent + styles.TreeBranch.Render("- ") +
				styles.TreeNode.Render(fmt.Sprintf("TableCell row=%d", rowIdx)) + "\n")
			for _, inline := range cell.Content {
				b.WriteString(formatInline(styles, inline, depth+2))
			}
		}
	}

	return b.String()
}

func formatInline(styles *pretty.Styles, el mdast.MdInlineElement, depth int) string {
	var b strings.Builder
	indent := strings.Repeat("  ", depth)

	b.WriteString(indent)
	b.WriteString(styles.TreeBranch.Render("- "))
	b.WriteString(styles.TreeNode.Render(inlineKindName(el.Kind)))

	switch el.Kind {
	case mdast.InlineText, mdast.InlineCode:
		b.WriteString(styles.TreeText.Render(fmt.Sprintf(" %q", el.Content)))
	case mdast.InlineLink, mdast.InlineImage:
		b.WriteString(styles.TreeText.Render(fmt.Sprintf(" url=%q", el.URL)))
	}
	b.WriteString("\n")

	for _, child := range el.Children {
		b.WriteString(formatInline(styles, child, depth+1))
	}

	return b.String()
}

func blockKindName(kind mdast.BlockKind) string {
	switch kind {
	case mdast.BlockParagraph:
		return "Paragraph"
	case mdast.BlockHeader:
		return "Header"
	case mdast.BlockUnorderedList:
		return "UnorderedList"
	case mdast.BlockOrderedList:
		return "OrderedList"
	case mdast.BlockCodeBlock:
		return "CodeBlock"
	case mdast.BlockQuote:
		return "Quote"
	case mdast.BlockTable:
		return "Table"
	case mdast.BlockRawHTML:
		return "RawHTML"
	case mdast.BlockThematicBreak:
		return "ThematicBreak"
	default:
		return "Unknown"
	}
}

func inlineKindName(kind mdast.InlineKind) string {
	switch kind {
	case mdast.InlineText:
		return "Text"
	case mdast.InlineBold:
		return "Bold"
	case mdast.InlineItalic:
		return "Italic"
	case mdast.InlineCode:
		return "Code"
	case mdast.InlineLink:
		return "Link"
	case mdast.InlineImage:
		return "Image"
	default:
		return "Unknown"
	}
}
