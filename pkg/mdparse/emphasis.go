package mdparse

import "github.com/yaklabco/gomdcore/pkg/mdast"

// classifyFlanking fills in CanOpen/CanClose for every delimiter, using the
// tokens immediately before and after its EmphasisRun in the original token
// stream (spec.md §4.4's flanking rule; '_' additionally forbids intra-word
// use).
func classifyFlanking(tokens []mdast.Token, delims []mdast.Delimiter) {
	for i := range delims {
		d := &delims[i]
		var before, after *mdast.Token
		if d.TokenPosition > 0 {
			before = &tokens[d.TokenPosition-1]
		}
		if d.TokenPosition+1 < len(tokens) {
			after = &tokens[d.TokenPosition+1]
		}

		d.CanOpen = isOpenBoundary(before) && after != nil && !after.IsWhitespaceLike()
		d.CanClose = isOpenBoundary(after) && before != nil && !before.IsWhitespaceLike()

		if d.Ch == '_' {
			if before != nil && before.Kind == mdast.TokText {
				d.CanOpen = false
			}
			if after != nil && after.Kind == mdast.TokText {
				d.CanClose = false
			}
		}
	}
}

// isOpenBoundary reports whether t is missing (nil), whitespace-like, or
// punctuation -- the three contexts spec.md §4.4 treats as a valid flank
// boundary.
func isOpenBoundary(t *mdast.Token) bool {
	if t == nil {
		return true
	}
	if t.IsWhitespaceLike() {
		return true
	}
	return t.Kind != mdast.TokText
}

// resolveEmphasis pairs up active delimiters left to right, rewriting the
// Placeholder elements they reserved into Bold/Italic nodes, and finally
// collapses any still-unpaired placeholder to a single literal character
// (spec.md §4.4's resolver).
func resolveEmphasis(elements *[]mdast.MdInlineElement, delims []mdast.Delimiter) {
	for i := range delims {
		closer := &delims[i]
		for closer.Active && closer.CanClose {
			openerIdx := -1
			for j := i - 1; j >= 0; j-- {
				opener := &delims[j]
				if !opener.Active || !opener.CanOpen || opener.Ch != closer.Ch {
					continue
				}
				if ruleOfThreeBlocks(opener, closer) {
					continue
				}
				openerIdx = j
				break
			}
			if openerIdx == -1 {
				break
			}
			pairDelimiters(elements, delims, openerIdx, i)
		}
	}

	for i := range delims {
		d := &delims[i]
		if d.Active {
			(*elements)[d.ParsedPosition] = mdast.NewText(string(d.Ch))
		}
	}
}

// ruleOfThreeBlocks reports whether opener/closer may not combine because
// one of them can both open and close, the combined run is a multiple of
// three, and neither individual run is itself a multiple of three.
func ruleOfThreeBlocks(opener, closer *mdast.Delimiter) bool {
	if !((closer.CanOpen && closer.CanClose) || (opener.CanOpen && opener.CanClose)) {
		return false
	}
	total := opener.RunLength + closer.RunLength
	return total%3 == 0 && opener.RunLength%3 != 0 && closer.RunLength%3 != 0
}

// pairDelimiters consumes one Bold (2 chars/side) or Italic (1 char/side)
// pairing between delims[openerIdx] and delims[i], splicing the new node
// into elements in place of the strictly-enclosed content and keeping
// either placeholder that still has run length left over.
func pairDelimiters(elements *[]mdast.MdInlineElement, delims []mdast.Delimiter, openerIdx, closerIdx int) {
	opener := &delims[openerIdx]
	closer := &delims[closerIdx]

	consumed := 1
	kind := mdast.InlineItalic
	if opener.RunLength >= 2 && closer.RunLength >= 2 {
		consumed = 2
		kind = mdast.InlineBold
	}

	oldOpenerPos := opener.ParsedPosition
	oldCloserPos := closer.ParsedPosition

	enclosed := append([]mdast.MdInlineElement(nil), (*elements)[oldOpenerPos+1:oldCloserPos]...)
	// Delimiters still active between the pair end up inside newNode and
	// can no longer pair, so their placeholders become literal text.
	for k := openerIdx + 1; k < closerIdx; k++ {
		if delims[k].Active {
			enclosed[delims[k].ParsedPosition-oldOpenerPos-1] = mdast.NewText(string(delims[k].Ch))
			delims[k].Active = false
		}
	}
	newNode := mdast.MdInlineElement{Kind: kind, Children: enclosed}

	opener.RunLength -= consumed
	closer.RunLength -= consumed
	opener.Active = opener.RunLength > 0
	closer.Active = closer.RunLength > 0

	var segment []mdast.MdInlineElement
	if opener.Active {
		segment = append(segment, (*elements)[oldOpenerPos])
	}
	segment = append(segment, newNode)
	if closer.Active {
		segment = append(segment, (*elements)[oldCloserPos])
	}

	newElements := append([]mdast.MdInlineElement(nil), (*elements)[:oldOpenerPos]...)
	newElements = append(newElements, segment...)
	newElements = append(newElements, (*elements)[oldCloserPos+1:]...)
	*elements = newElements

	oldSpan := oldCloserPos - oldOpenerPos + 1
	netRemoved := oldSpan - len(segment)

	openerNewPos := oldOpenerPos
	closerNewPos := oldOpenerPos + len(segment) - 1

	for k := range delims {
		switch k {
		case openerIdx:
			if opener.Active {
				opener.ParsedPosition = openerNewPos
			}
		case closerIdx:
			if closer.Active {
				closer.ParsedPosition = closerNewPos
			}
		default:
			if delims[k].ParsedPosition > oldCloserPos {
				delims[k].ParsedPosition -= netRemoved
			}
		}
	}
}
