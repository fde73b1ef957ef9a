// Package runner provides multi-file Markdown-to-HTML render orchestration.
package runner

import (
	"github.com/yaklabco/gomdcore/pkg/config"
	"github.com/yaklabco/gomdcore/pkg/discover"
)

// Options controls multi-file rendering behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered Markdown. Defaults to [".md", ".markdown"] via discover.DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (unlimited, left to the Go scheduler).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// discoverOptions narrows Options down to the fields discover.Discover needs.
func (o Options) discoverOptions() discover.Options {
	return discover.Options{
		Paths:          o.Paths,
		WorkingDir:     o.WorkingDir,
		Extensions:     o.Extensions,
		IncludeGlobs:   o.IncludeGlobs,
		ExcludeGlobs:   o.ExcludeGlobs,
		FollowSymlinks: o.FollowSymlinks,
	}
}
