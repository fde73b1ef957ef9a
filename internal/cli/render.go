package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdcore/internal/configloader"
	"github.com/yaklabco/gomdcore/internal/logging"
	"github.com/yaklabco/gomdcore/internal/ui/pretty"
	"github.com/yaklabco/gomdcore/pkg/config"
	"github.com/yaklabco/gomdcore/pkg/discover"
	"github.com/yaklabco/gomdcore/pkg/htmlgen"
	"github.com/yaklabco/gomdcore/pkg/mdast"
	"github.com/yaklabco/gomdcore/pkg/mdblock"
	"github.com/yaklabco/gomdcore/pkg/mdparse"
	"github.com/yaklabco/gomdcore/pkg/mdtoken"
	"github.com/yaklabco/gomdcore/pkg/runner"
)

// ErrRenderFailed is returned when one or more files failed to render, or,
// with --strict, when any file produced diagnostics.
var ErrRenderFailed = errors.New("render failed")

type renderFlags struct {
	outDir    string
	jobs      int
	ignore    []string
	recursive bool
	strict    bool
	format    string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files to HTML",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	addRenderFlags(cmd, flags)

	return cmd
}

const renderLongDescription = `Parse Markdown files and render them to HTML.

By default, renders all .md and .markdown files in the current directory
and subdirectories, writing HTML to stdout. Pass --out-dir to write each
file's rendered HTML under that directory instead, mirroring the input tree.

Examples:
  gomdcore render README.md             # Render a single file to stdout
  gomdcore render docs/                 # Render a directory to stdout
  gomdcore render docs/ --out-dir dist  # Render a directory to files`

func addRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVar(&flags.outDir, "out-dir", "", "write rendered HTML under this directory instead of stdout")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.recursive, "recursive", true, "recorded in the config only; directories are always walked recursively")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero if any file produces diagnostics")
	cmd.Flags().StringVar(&flags.format, "format", "text", "diagnostic summary format: text, json (not read; the summary is always text)")
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cliCfg := &config.Config{
		Jobs:   flags.jobs,
		Ignore: flags.ignore,
	}
	if cmd.Flags().Changed("out-dir") {
		cliCfg.OutDir = flags.outDir
	}
	if cmd.Flags().Changed("recursive") {
		cliCfg.Recursive = flags.recursive
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))

	if cmd.Flags().Changed("out-dir") {
		return renderToFiles(ctx, cmd, args, workDir, finalCfg, styles)
	}
	return renderToStdout(ctx, cmd, args, workDir, finalCfg, styles, flags.strict)
}

// renderToFiles discovers matching files and renders them concurrently via
// pkg/runner, writing each file's HTML under finalCfg.OutDir.
func renderToFiles(ctx context.Context, cmd *cobra.Command, args []string, workDir string, finalCfg *config.Config, styles *pretty.Styles) error {
	logger := logging.Default()

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   discover.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting render run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("render run failed"), err)
	}

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), styles.Failure.Render(outcome.Path+": "+outcome.Error.Error()))
			continue
		}
		if len(outcome.Diagnostics) == 0 {
			continue
		}
		fmt.Fprintln(cmd.ErrOrStderr(), styles.FormatFileHeader(outcome.Path, len(outcome.Diagnostics)))
		for _, diag := range outcome.Diagnostics {
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatDiagnostic(outcome.Path, diag, false, ""))
		}
	}

	fmt.Fprint(cmd.ErrOrStderr(), styles.FormatSummary(result.Stats))

	return exitErrorFromStats(result, getStrictFlag(cmd))
}

// renderToStdout bypasses pkg/runner's file-writing path: it discovers
// matching files and writes each one's rendered HTML straight to stdout,
// since runner.Run's FileOutcome never carries rendered content once
// written to disk.
func renderToStdout(ctx context.Context, cmd *cobra.Command, args []string, workDir string, finalCfg *config.Config, styles *pretty.Styles, strict bool) error {
	files, err := discover.Discover(ctx, discover.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   discover.DefaultExtensions(),
		ExcludeGlobs: finalCfg.Ignore,
	})
	if err != nil {
		return fmt.Errorf("discover files: %w", err)
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	erroredCount := 0
	diagnosticCount := 0
	for _, path := range files {
		html, diagnostics, err := renderFileToString(path, finalCfg)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), path+": "+err.Error())
			erroredCount++
			continue
		}
		for _, diag := range diagnostics {
			fmt.Fprint(cmd.ErrOrStderr(), styles.FormatDiagnostic(path, diag, false, ""))
		}
		diagnosticCount += len(diagnostics)
		if _, err := out.WriteString(html); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if erroredCount > 0 {
		return ErrRenderFailed
	}
	if strict && diagnosticCount > 0 {
		return ErrRenderFailed
	}
	return nil
}

func renderFileToString(path string, cfg *config.Config) (string, []mdast.Diagnostic, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}

	var sink diagnosticCollector
	mdCfg := mdast.Config{
		TabSize:         cfg.TabSize,
		MaxNestingDepth: cfg.MaxNestingDepth,
		Diagnostics:     &sink,
	}.Normalized()

	tokenLines := make([][]mdast.Token, len(lines))
	for i, line := range lines {
		tokenLines[i] = mdtoken.Tokenize(line)
	}
	blocks := mdblock.Group(tokenLines)
	elements := mdparse.ParseBlocks(blocks, mdCfg)

	return htmlgen.Render(elements), sink.diagnostics, nil
}

// diagnosticCollector implements mdast.DiagnosticSink by appending every
// reported Diagnostic, mirroring pkg/runner's own collector for the
// stdout-mode path that doesn't go through pkg/runner at all.
type diagnosticCollector struct {
	diagnostics []mdast.Diagnostic
}

func (d *diagnosticCollector) Report(diag mdast.Diagnostic) {
	d.diagnostics = append(d.diagnostics, diag)
}

func readFileLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func getStrictFlag(cmd *cobra.Command) bool {
	strict, _ := cmd.Flags().GetBool("strict")
	return strict
}

// exitErrorFromStats returns ErrRenderFailed when the run should be
// reported as a non-zero exit, per ExitCodeFromResult's semantics.
func exitErrorFromStats(result *runner.Result, strict bool) error {
	if ExitCodeFromResult(result, strict) != ExitSuccess {
		return ErrRenderFailed
	}
	return nil
}
