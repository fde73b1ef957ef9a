// Package config defines core configuration types for gomdcore.
// These types are pure data structures with no external dependencies on
// Viper or other config loaders.
package config

// OutputFormat specifies the format the CLI writes diagnostics in.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config is the root configuration structure for gomdcore.
type Config struct {
	// TabSize is the number of spaces a tab expands to inside code blocks
	// and list continuations.
	TabSize int `mapstructure:"tab_size" yaml:"tab_size"`

	// MaxNestingDepth bounds recursion for block quotes, nested lists, and
	// nested links/images.
	MaxNestingDepth int `mapstructure:"max_nesting_depth" yaml:"max_nesting_depth"`

	// OutDir is the directory rendered HTML is written to.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir"`

	// Ignore contains glob patterns for files to skip during a directory
	// walk.
	Ignore []string `mapstructure:"ignore" yaml:"ignore"`

	// AutoDetectLanguage fills in the language tag via pkg/langdetect for
	// every code block that has none (an indented block, or a fence without
	// a tag).
	AutoDetectLanguage bool `mapstructure:"auto_detect_language" yaml:"auto_detect_language"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel workers. 0 means no limit.
	Jobs int `mapstructure:"-" yaml:"-"`

	// Recursive records the --recursive setting. File discovery does not
	// read it: directory arguments are always walked recursively.
	Recursive bool `mapstructure:"-" yaml:"-"`

	// Color enables ANSI-colored terminal output.
	Color bool `mapstructure:"-" yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		TabSize:            4,
		MaxNestingDepth:    64,
		OutDir:             "dist",
		Ignore:             nil,
		AutoDetectLanguage: true,
		Jobs:               0,
		Recursive:          true,
		Color:              true,
		Format:             FormatText,
	}
}
