package runner

import "github.com/yaklabco/gomdcore/pkg/mdast"

// FileOutcome captures the outcome of rendering a single source file.
type FileOutcome struct {
	// Path is the source file path that was processed.
	Path string

	// OutputPath is the rendered HTML file's destination path. Empty if
	// processing failed before the path was resolved; in a dry run it holds
	// the path that would have been written (see Written).
	OutputPath string

	// Diagnostics are the non-fatal warnings the parser reported while
	// processing this file (spec.md §7's advisory DiagnosticSink).
	Diagnostics []mdast.Diagnostic

	// Written reports whether OutputPath was actually created.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered      int
	FilesProcessed       int
	FilesErrored         int
	FilesWritten         int
	FilesWithDiagnostics int
	DiagnosticsTotal     int
	DiagnosticsBySeverity map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, in deterministic
	// (path-sorted) order.
	Files []FileOutcome

	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasDiagnostics reports whether any file produced a parser diagnostic.
func (r *Result) HasDiagnostics() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

func newStats() Stats {
	return Stats{DiagnosticsBySeverity: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Written {
		r.Stats.FilesWritten++
	}

	if len(outcome.Diagnostics) > 0 {
		r.Stats.FilesWithDiagnostics++
	}
	r.Stats.DiagnosticsTotal += len(outcome.Diagnostics)
	for _, d := range outcome.Diagnostics {
		severity := string(d.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.DiagnosticsBySeverity[severity]++
	}
}
