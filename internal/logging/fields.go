// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldOutDir = "out_dir"
	FieldDryRun = "dry_run"
	FieldJobs   = "jobs"

	// Statistics fields.
	FieldFilesDiscovered      = "files_discovered"
	FieldFilesProcessed       = "files_processed"
	FieldFilesWritten         = "files_written"
	FieldFilesErrored         = "files_errored"
	FieldFilesWithDiagnostics = "files_with_diagnostics"
	FieldDiagnosticsTotal     = "diagnostics_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Diagnostic fields.
	FieldSeverity = "severity"
)
