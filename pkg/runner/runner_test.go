package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdcore/pkg/config"
	"github.com/yaklabco/gomdcore/pkg/runner"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cfg := config.NewConfig()
	cfg.OutDir = filepath.Join(dir, "out")
	r := runner.New()

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "test.md", "# Test\n")

	cfg := config.NewConfig()
	cfg.OutDir = filepath.Join(dir, "out")
	r := runner.New()

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.FilesDiscovered)
	assert.Equal(t, 1, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWritten)
	require.Len(t, result.Files, 1)

	out, err := os.ReadFile(result.Files[0].OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1>Test</h1>")
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	names := []string{"a.md", "b.md", "c.md", "d.md", "e.md"}
	for _, name := range names {
		writeFile(t, dir, name, "# "+name+"\n")
	}

	cfg := config.NewConfig()
	cfg.OutDir = filepath.Join(dir, "out")
	r := runner.New()

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Equal(t, len(names), result.Stats.FilesDiscovered)
	assert.Equal(t, len(names), result.Stats.FilesProcessed)
	assert.Equal(t, len(names), result.Stats.FilesWritten)

	for i := 1; i < len(result.Files); i++ {
		assert.Less(t, result.Files[i-1].Path, result.Files[i].Path, "Files must be path-sorted")
	}
}

func TestRunner_Run_CollectsDiagnostics(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A malformed alignment row triggers a Diagnostic without failing the parse.
	writeFile(t, dir, "table.md", "|a|b|\n|xx|--|\n|1|2|\n")

	cfg := config.NewConfig()
	cfg.OutDir = filepath.Join(dir, "out")
	r := runner.New()

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.NotEmpty(t, result.Files[0].Diagnostics)
	assert.Equal(t, 1, result.Stats.FilesWithDiagnostics)
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for i := 0; i < 20; i++ {
		name := string(rune('a'+i%26)) + string(rune('0'+i/26)) + ".md"
		writeFile(t, dir, name, "# "+name+"\n")
	}

	cfg := config.NewConfig()
	cfg.OutDir = filepath.Join(dir, "out")
	r := runner.New()
	ctx := context.Background()

	serial, err := r.Run(ctx, runner.Options{Paths: []string{"."}, WorkingDir: dir, Config: cfg, Jobs: 1})
	require.NoError(t, err)

	parallel, err := r.Run(ctx, runner.Options{Paths: []string{"."}, WorkingDir: dir, Config: cfg, Jobs: 4})
	require.NoError(t, err)

	assert.Equal(t, serial.Stats.FilesDiscovered, parallel.Stats.FilesDiscovered)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for i := 0; i < 10; i++ {
		writeFile(t, dir, string(rune('a'+i))+".md", "content")
	}

	cfg := config.NewConfig()
	cfg.OutDir = filepath.Join(dir, "out")
	r := runner.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, runner.Options{Paths: []string{"."}, WorkingDir: dir, Config: cfg})
	if err != nil {
		assert.True(t, errors.Is(err, context.Canceled) || err != nil)
	}
}

func TestRunner_Run_DryRunDoesNotWrite(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "test.md", "# Test\n")

	cfg := config.NewConfig()
	outDir := filepath.Join(dir, "out")
	cfg.OutDir = outDir
	r := runner.New()
	r.DryRun = true

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	require.NoError(t, err)
	assert.Zero(t, result.Stats.FilesWritten)

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "dry run must not create the output directory")
}

func TestResult_HasErrors(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	assert.False(t, nilResult.HasErrors())

	clean := &runner.Result{Stats: runner.Stats{FilesProcessed: 3}}
	assert.False(t, clean.HasErrors())

	withErr := &runner.Result{Stats: runner.Stats{FilesErrored: 1}}
	assert.True(t, withErr.HasErrors())
}

func TestResult_HasDiagnostics(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	assert.False(t, nilResult.HasDiagnostics())

	clean := &runner.Result{Stats: runner.Stats{DiagnosticsTotal: 0}}
	assert.False(t, clean.HasDiagnostics())

	withDiag := &runner.Result{Stats: runner.Stats{DiagnosticsTotal: 2}}
	assert.True(t, withDiag.HasDiagnostics())
}
