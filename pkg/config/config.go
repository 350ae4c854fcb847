// Package config defines core configuration types for mdprefix.
// These types are pure data structures; discovery and layering live in
// internal/configloader.
package config

// OutputFormat specifies the output format for scan results.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON, FormatSummary:
		return true
	default:
		return false
	}
}

// Flavor specifies the Markdown flavor used for verification.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// IsValid returns true if the flavor is known.
func (f Flavor) IsValid() bool {
	return f == FlavorCommonMark || f == FlavorGFM
}

// Config is the root configuration structure for mdprefix.
type Config struct {
	// Flavor specifies the Markdown flavor ("commonmark" or "gfm").
	// Task checkboxes are only recognized by goldmark under "gfm".
	Flavor Flavor `yaml:"flavor,omitempty" toml:"flavor,omitempty"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore,omitempty" toml:"ignore,omitempty"`

	// Extensions lists the file extensions treated as Markdown.
	Extensions []string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// TaskLists enables task checkbox recognition. Nil means enabled.
	TaskLists *bool `yaml:"task_lists,omitempty" toml:"task_lists,omitempty"`

	// MaxMarkers bounds the markers recorded per line (0 = default).
	MaxMarkers int `yaml:"max_markers,omitempty" toml:"max_markers,omitempty"`

	// Verify cross-checks every file against goldmark.
	Verify bool `yaml:"verify,omitempty" toml:"verify,omitempty"`

	// Jobs specifies the number of parallel workers (0 = GOMAXPROCS).
	Jobs int `yaml:"jobs,omitempty" toml:"jobs,omitempty"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"format,omitempty" toml:"format,omitempty"`

	// CLI-level options (not persisted to config files).

	// ShowBlank includes lines without markers in text output.
	ShowBlank bool `yaml:"-" toml:"-"`

	// Output is a file to write the report to instead of stdout.
	Output string `yaml:"-" toml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	enabled := true
	return &Config{
		Flavor:     FlavorGFM,
		Extensions: []string{".md", ".markdown"},
		TaskLists:  &enabled,
		Format:     FormatText,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}

// TaskListsEnabled reports whether task checkboxes should be recognized.
func (c *Config) TaskListsEnabled() bool {
	return c == nil || c.TaskLists == nil || *c.TaskLists
}
