package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdcore/internal/ui/pretty"
	"github.com/yaklabco/gomdcore/pkg/runner"
)

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       10,
		FilesProcessed:        10,
		FilesWritten:          10,
		FilesWithDiagnostics:  3,
		DiagnosticsTotal:      15,
		DiagnosticsBySeverity: map[string]int{"warning": 10, "info": 5},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files discovered:")
	assert.Contains(t, result, "Files processed:")
	assert.Contains(t, result, "Files written:")
	assert.Contains(t, result, "Total diagnostics:")
	assert.Contains(t, result, "15")
	assert.Contains(t, result, "Warnings:")
	assert.Contains(t, result, "Info:")
}

func TestFormatSummary_NoDiagnostics(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       5,
		FilesProcessed:        5,
		FilesWritten:          5,
		DiagnosticsTotal:      0,
		DiagnosticsBySeverity: map[string]int{},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Render finished cleanly")
	assert.NotContains(t, result, "Files errored:")
}

func TestFormatSummary_WithErrored(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       10,
		FilesProcessed:        8,
		FilesErrored:          2,
		DiagnosticsTotal:      5,
		DiagnosticsBySeverity: map[string]int{"warning": 5},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Files errored:")
	assert.Contains(t, result, "Render finished with errors")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       10,
		FilesProcessed:        10,
		FilesWithDiagnostics:  2,
		DiagnosticsTotal:      5,
		DiagnosticsBySeverity: map[string]int{"warning": 5},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Render finished with diagnostics")
}

func TestFormatSummary_InfoOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesDiscovered:       10,
		FilesProcessed:        10,
		FilesWithDiagnostics:  1,
		DiagnosticsTotal:      3,
		DiagnosticsBySeverity: map[string]int{"info": 3},
	}

	result := styles.FormatSummary(stats)

	assert.Contains(t, result, "Info:")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "Render finished with diagnostics")
}

func TestFormatSummaryOneLine_NoDiagnostics(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        5,
		FilesWritten:          5,
		DiagnosticsTotal:      0,
		DiagnosticsBySeverity: map[string]int{},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "No diagnostics")
	assert.Contains(t, result, "5 files rendered")
}

func TestFormatSummaryOneLine_WithDiagnostics(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        10,
		FilesWritten:          10,
		FilesWithDiagnostics:  3,
		DiagnosticsTotal:      12,
		DiagnosticsBySeverity: map[string]int{"warning": 8, "info": 4},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "12 diagnostics")
	assert.Contains(t, result, "8 warnings")
	assert.Contains(t, result, "4 info")
	assert.Contains(t, result, "in 3 files")
	assert.Contains(t, result, "10 written")
}

func TestFormatSummaryOneLine_SingleDiagnostic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:        1,
		FilesWritten:          1,
		FilesWithDiagnostics:  1,
		DiagnosticsTotal:      1,
		DiagnosticsBySeverity: map[string]int{"warning": 1},
	}

	result := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, result, "1 diagnostic")
	assert.Contains(t, result, "in 1 file")
}
