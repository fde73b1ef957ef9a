// Package runner orchestrates multi-file Markdown-to-HTML rendering: file
// discovery, concurrent per-file processing through the core pipeline, and
// aggregate result collection (spec.md §5's "independent per-call" pipeline
// driven across many files at once).
package runner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gomdcore/pkg/config"
	"github.com/yaklabco/gomdcore/pkg/discover"
	"github.com/yaklabco/gomdcore/pkg/fsutil"
	"github.com/yaklabco/gomdcore/pkg/htmlgen"
	"github.com/yaklabco/gomdcore/pkg/langdetect"
	"github.com/yaklabco/gomdcore/pkg/mdast"
	"github.com/yaklabco/gomdcore/pkg/mdblock"
	"github.com/yaklabco/gomdcore/pkg/mdparse"
	"github.com/yaklabco/gomdcore/pkg/mdtoken"
)

// Runner orchestrates multi-file rendering.
type Runner struct {
	// DryRun skips writing output files; diagnostics are still collected.
	DryRun bool
}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run discovers files under opts.Paths and renders them concurrently,
// respecting opts.Jobs and context cancellation. It returns a deterministic
// (path-sorted) Result.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := discover.Discover(ctx, opts.discoverOptions())
	if err != nil {
		return nil, err
	}

	result := &Result{Stats: newStats()}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	workDir, err := discover.ResolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	outcomes := make([]FileOutcome, len(files))
	group, gctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		group.SetLimit(opts.Jobs)
	}

	for i, path := range files {
		group.Go(func() error {
			outcomes[i] = r.renderFile(gctx, path, workDir, opts.Config)
			return nil
		})
	}

	// Errors, cancellation included, are carried per-file in
	// FileOutcome.Error rather than aborting the whole run; no worker
	// returns an error, so group.Wait returns nil.
	if err := group.Wait(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}

// renderFile runs one file through the core pipeline and, unless DryRun, writes
// the rendered HTML to its mapped output path.
func (r *Runner) renderFile(ctx context.Context, path, workDir string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{Path: path}

	select {
	case <-ctx.Done():
		outcome.Error = ctx.Err()
		return outcome
	default:
	}

	lines, err := readLines(path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
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

	if cfg.AutoDetectLanguage {
		fillMissingLanguages(elements)
	}

	out := htmlgen.Render(elements)
	outcome.Diagnostics = sink.diagnostics

	outPath, err := outputPathFor(path, workDir, cfg.OutDir)
	if err != nil {
		outcome.Error = fmt.Errorf("resolve output path for %s: %w", path, err)
		return outcome
	}
	outcome.OutputPath = outPath

	if r.DryRun {
		return outcome
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		outcome.Error = fmt.Errorf("create output dir for %s: %w", outPath, err)
		return outcome
	}
	if err := fsutil.WriteAtomic(ctx, outPath, []byte(out), fsutil.DefaultFileMode); err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outPath, err)
		return outcome
	}
	outcome.Written = true
	return outcome
}

// fillMissingLanguages walks the parsed tree and fills in the language tag
// via langdetect for every code block that has none (an indented block, or
// a fence without a tag).
func fillMissingLanguages(elements []mdast.MdBlockElement) {
	for i := range elements {
		fillMissingLanguage(&elements[i])
	}
}

func fillMissingLanguage(el *mdast.MdBlockElement) {
	if el.Kind == mdast.BlockCodeBlock && el.Language == nil && len(el.Lines) > 0 {
		detected := langdetect.Detect([]byte(strings.Join(el.Lines, "\n")))
		el.Language = &detected
	}
	fillMissingLanguages(el.Children)
	for j := range el.Items {
		fillMissingLanguage(&el.Items[j].Content)
	}
}

// outputPathFor maps a source file under workDir to its rendered HTML
// destination under outDir, preserving the directory structure relative to
// workDir and replacing the source extension with ".html".
func outputPathFor(srcPath, workDir, outDir string) (string, error) {
	rel, err := filepath.Rel(workDir, srcPath)
	if err != nil {
		rel = filepath.Base(srcPath)
	}
	ext := filepath.Ext(rel)
	rel = strings.TrimSuffix(rel, ext) + ".html"
	return filepath.Join(outDir, rel), nil
}

func readLines(path string) ([]string, error) {
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

// diagnosticCollector implements mdast.DiagnosticSink by appending every
// reported Diagnostic, for surfacing through a FileOutcome.
type diagnosticCollector struct {
	diagnostics []mdast.Diagnostic
}

func (d *diagnosticCollector) Report(diag mdast.Diagnostic) {
	d.diagnostics = append(d.diagnostics, diag)
}
