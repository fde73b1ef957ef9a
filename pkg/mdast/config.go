package mdast

// Severity classifies a Diagnostic's importance. Diagnostics are always
// advisory; severity never changes how the core parses or what it returns
// (spec.md §7).
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Diagnostic is an advisory, non-fatal notice the core optionally reports
// through a Config's DiagnosticSink. Line is 1-based within the source
// buffer being parsed, or 0 when not attributable to a single line.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
}

// DiagnosticSink receives Diagnostic values as the core encounters them.
// It is called synchronously and must not block; it never influences the
// returned tree.
type DiagnosticSink interface {
	Report(Diagnostic)
}

// DefaultTabSize is used when a Config is constructed with TabSize <= 0.
const DefaultTabSize = 4

// DefaultMaxNestingDepth bounds recursion in block quotes, nested lists,
// and nested links/images before the core gives up on the current node
// rather than risk a stack overflow (spec.md §9 "Recursion depth").
const DefaultMaxNestingDepth = 64

// Config is the read-only record ParseBlocks (and ParseInline) accept;
// Tokenize and Group take no Config.
// It may be shared across concurrent, independent calls (spec.md §5).
type Config struct {
	// TabSize is the expansion width of a tab inside code (spec.md §2).
	// Must be a positive integer; NewConfig defaults it to DefaultTabSize.
	TabSize int

	// MaxNestingDepth caps recursion for block quotes, list nesting, and
	// nested links/images (spec.md §9).
	MaxNestingDepth int

	// Diagnostics, if non-nil, receives advisory notices (spec.md §7).
	Diagnostics DiagnosticSink
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() Config {
	return Config{
		TabSize:         DefaultTabSize,
		MaxNestingDepth: DefaultMaxNestingDepth,
	}
}

// Normalized returns a copy of c with zero/negative fields replaced by
// their defaults, so core packages never have to special-case an
// under-specified Config.
func (c Config) Normalized() Config {
	if c.TabSize <= 0 {
		c.TabSize = DefaultTabSize
	}
	if c.MaxNestingDepth <= 0 {
		c.MaxNestingDepth = DefaultMaxNestingDepth
	}
	return c
}

// Report sends a diagnostic to the sink if one is configured. Safe to call
// with a nil sink.
func (c Config) Report(d Diagnostic) {
	if c.Diagnostics != nil {
		c.Diagnostics.Report(d)
	}
}
