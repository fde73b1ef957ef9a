// Package htmlgen renders a parsed Markdown element tree to HTML5. It
// performs no sanitization: callers embedding untrusted input in a
// browser-facing page are responsible for that themselves (SPEC_FULL.md
// §4.5), matching the original implementation's html_generator, which
// likewise emits raw tags and leaves sanitization to an optional
// downstream pass.
package htmlgen

import (
	"html"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdcore/pkg/mdast"
)

// Render walks a parsed document's block elements and returns the HTML5
// fragment they represent, one top-level element after another with no
// separating whitespace added.
func Render(blocks []mdast.MdBlockElement) string {
	var b strings.Builder
	for _, block := range blocks {
		renderBlock(&b, block)
	}
	return b.String()
}

func renderBlock(b *strings.Builder, el mdast.MdBlockElement) {
	switch el.Kind {
	case mdast.BlockParagraph:
		b.WriteString("<p>")
		renderInlines(b, el.Content)
		b.WriteString("</p>")

	case mdast.BlockHeader:
		tag := "h" + strconv.Itoa(el.Level)
		b.WriteString("<" + tag + ">")
		renderInlines(b, el.Content)
		b.WriteString("</" + tag + ">")

	case mdast.BlockUnorderedList:
		b.WriteString("<ul>")
		renderItems(b, el.Items)
		b.WriteString("</ul>")

	case mdast.BlockOrderedList:
		b.WriteString("<ol>")
		renderItems(b, el.Items)
		b.WriteString("</ol>")

	case mdast.BlockCodeBlock:
		b.WriteString("<pre><code")
		if el.Language != nil {
			b.WriteString(` class="language-` + html.EscapeString(*el.Language) + `"`)
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(strings.Join(el.Lines, "\n")))
		b.WriteString("</code></pre>")

	case mdast.BlockQuote:
		b.WriteString("<blockquote>")
		for _, child := range el.Children {
			renderBlock(b, child)
		}
		b.WriteString("</blockquote>")

	case mdast.BlockTable:
		renderTable(b, el)

	case mdast.BlockRawHTML:
		b.WriteString(el.Raw)

	case mdast.BlockThematicBreak:
		b.WriteString("<hr>")
	}
}

func renderItems(b *strings.Builder, items []mdast.ListItem) {
	for _, item := range items {
		b.WriteString("<li>")
		if isListKind(item.Content.Kind) {
			renderBlock(b, item.Content)
		} else {
			renderInlines(b, item.Content.Content)
		}
		b.WriteString("</li>")
	}
}

func isListKind(k mdast.BlockKind) bool {
	return k == mdast.BlockUnorderedList || k == mdast.BlockOrderedList
}

func renderTable(b *strings.Builder, el mdast.MdBlockElement) {
	b.WriteString("<table><thead><tr>")
	for _, cell := range el.Headers {
		b.WriteString("<th" + alignAttr(cell.Alignment) + ">")
		renderInlines(b, cell.Content)
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range el.Body {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td" + alignAttr(cell.Alignment) + ">")
			renderInlines(b, cell.Content)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
}

func alignAttr(a mdast.TableAlignment) string {
	switch a {
	case mdast.AlignLeft:
		return ` style="text-align:left"`
	case mdast.AlignRight:
		return ` style="text-align:right"`
	case mdast.AlignCenter:
		return ` style="text-align:center"`
	default:
		return ""
	}
}

func renderInlines(b *strings.Builder, elements []mdast.MdInlineElement) {
	for _, e := range elements {
		renderInline(b, e)
	}
}

func renderInline(b *strings.Builder, e mdast.MdInlineElement) {
	switch e.Kind {
	case mdast.InlineText:
		b.WriteString(html.EscapeString(e.Content))

	case mdast.InlineBold:
		b.WriteString("<strong>")
		renderInlines(b, e.Children)
		b.WriteString("</strong>")

	case mdast.InlineItalic:
		b.WriteString("<em>")
		renderInlines(b, e.Children)
		b.WriteString("</em>")

	case mdast.InlineCode:
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(e.Content))
		b.WriteString("</code>")

	case mdast.InlineLink:
		b.WriteString(`<a href="` + html.EscapeString(e.URL) + `"`)
		if e.Title != nil {
			b.WriteString(` title="` + html.EscapeString(*e.Title) + `"`)
		}
		b.WriteString(">")
		renderInlines(b, e.Children)
		b.WriteString("</a>")

	case mdast.InlineImage:
		b.WriteString(`<img src="` + html.EscapeString(e.URL) + `" alt="` + html.EscapeString(e.Content) + `"`)
		if e.Title != nil {
			b.WriteString(` title="` + html.EscapeString(*e.Title) + `"`)
		}
		b.WriteString(">")

	case mdast.InlinePlaceholder:
		b.WriteByte(e.PlaceholderChar)
	}
}
