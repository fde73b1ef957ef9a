package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdcore/pkg/mdast"
)

// FormatDiagnostic formats a single diagnostic for terminal output.
// path is threaded in by the caller since mdast.Diagnostic carries no file
// identity of its own — it is always scoped to whatever file produced it.
func (s *Styles) FormatDiagnostic(path string, diag mdast.Diagnostic, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(path)
	if diag.Line > 0 {
		location += s.Location.Render(fmt.Sprintf(":%d", diag.Line))
	}

	severity := s.FormatSeverity(diag.Severity)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		severity,
		s.Message.Render(diag.Message),
	))

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev mdast.Severity) string {
	switch sev {
	case mdast.SeverityWarning:
		return s.Warning.Render("warning")
	case mdast.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats a line of source for diagnostic context.
// mdast.Diagnostic has no column, so this marks the line without a caret.
func (s *Styles) FormatSourceContext(line string) string {
	const indent = "        "
	return indent + s.SourceLine.Render(line) + "\n"
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, diagnosticCount int) string {
	header := s.FilePath.Render(path)
	if diagnosticCount > 0 {
		word := "diagnostics"
		if diagnosticCount == 1 {
			word = "diagnostic"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", diagnosticCount, word))
	}
	return header
}
