package analysis

// SortField specifies how to sort analysis results.
type SortField string

const (
	// SortByCount sorts by structural line count (descending by default).
	SortByCount SortField = "count"
	// SortByAlpha sorts alphabetically.
	SortByAlpha SortField = "alpha"
	// SortByDepth sorts by blockquote depth, then by count.
	SortByDepth SortField = "depth"
)

// IsValid returns true if the sort field is valid.
func (s SortField) IsValid() bool {
	switch s {
	case SortByCount, SortByAlpha, SortByDepth:
		return true
	default:
		return false
	}
}

// Options configures the Analyze function.
type Options struct {
	// IncludeMismatches includes the flat verification mismatch list.
	IncludeMismatches bool

	// IncludeByFile includes the per-file analysis.
	IncludeByFile bool

	// IncludeByKind includes the per-marker-kind analysis.
	IncludeByKind bool

	// SortBy specifies how to sort ByFile and ByKind.
	SortBy SortField

	// SortDesc sorts in descending order (highest first).
	SortDesc bool

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		IncludeMismatches: true,
		IncludeByFile:     true,
		IncludeByKind:     true,
		SortBy:            SortByCount,
		SortDesc:          true,
	}
}
