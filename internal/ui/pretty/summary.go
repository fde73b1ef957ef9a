package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdcore/pkg/runner"
)

const summaryDividerWidth = 40

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 diagnostics (2 warnings, 1 info), in 2 files, 5 written".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.DiagnosticsTotal == 0 {
		msg := s.Success.Render("No diagnostics") +
			s.Dim.Render(fmt.Sprintf(" (%d files rendered, %d written)", stats.FilesProcessed, stats.FilesWritten))
		return msg + "\n"
	}

	diagWord := "diagnostics"
	if stats.DiagnosticsTotal == 1 {
		diagWord = "diagnostic"
	}

	var severityParts []string
	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	var parts []string
	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.DiagnosticsTotal, diagWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.DiagnosticsTotal, diagWord))
	}

	fileWord := "files"
	if stats.FilesWithDiagnostics == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithDiagnostics, fileWord))

	if stats.FilesWritten > 0 {
		parts = append(parts, fmt.Sprintf("%d written", stats.FilesWritten))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files discovered:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")
	builder.WriteString("  Files processed:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")
	builder.WriteString("  Files written:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesWritten)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:       " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total diagnostics:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.DiagnosticsTotal)) + "\n")

	if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
		builder.WriteString("    Warnings:          " +
			s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
		builder.WriteString("    Info:              " +
			s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Render finished with errors"))
	case stats.DiagnosticsTotal > 0:
		builder.WriteString(s.Warning.Render("Render finished with diagnostics"))
	default:
		builder.WriteString(s.Success.Render("Render finished cleanly"))
	}
	builder.WriteString("\n")

	return builder.String()
}
