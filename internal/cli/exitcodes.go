package cli

import "github.com/yaklabco/gomdcore/pkg/runner"

// Exit codes for gomdcore.
const (
	// ExitSuccess indicates successful execution with no errored files.
	ExitSuccess = 0

	// ExitRenderErrors indicates one or more files failed to render.
	ExitRenderErrors = 1

	// ExitDiagnosticsFound indicates the run completed but produced
	// diagnostics (only treated as a failure in --strict mode).
	ExitDiagnosticsFound = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code for a render run. Diagnostics
// are always advisory (spec.md §7) and never affect the exit code unless
// strict mode is requested; only files that actually failed to render do.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.Stats.FilesErrored > 0 {
		return ExitRenderErrors
	}

	if strict && result.Stats.DiagnosticsTotal > 0 {
		return ExitDiagnosticsFound
	}

	return ExitSuccess
}
