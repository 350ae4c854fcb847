package analysis

import (
	"time"

	"github.com/yaklabco/mdprefix/pkg/blockprefix"
)

// Report contains pre-computed views of scan results.
// Computed once by Analyze(), used by all renderers.
type Report struct {
	// Mismatches is the flat list of verification disagreements.
	Mismatches []MismatchEntry `json:"mismatches,omitempty"`

	// ByFile holds one entry per scanned file.
	ByFile []FileAnalysis `json:"byFile,omitempty"`

	// ByKind counts markers per kind across all files.
	ByKind []KindAnalysis `json:"byKind,omitempty"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"summary"`

	// Verified is set when the run compared against goldmark.
	Verified bool `json:"verified"`

	// Version is the report format version.
	Version string `json:"version"`

	// Timestamp is when the analysis was performed.
	Timestamp time.Time `json:"timestamp"`
}

// MismatchEntry is a line where the scanner and goldmark disagree. Extra
// marks a list marker the scanner found that goldmark opens no item for.
type MismatchEntry struct {
	FilePath string           `json:"filePath"`
	Line     int              `json:"line"`
	Kind     blockprefix.Kind `json:"kind"`
	Extra    bool             `json:"extra,omitempty"`
	Found    string           `json:"found"`
}

// Totals contains aggregate statistics for the report.
type Totals struct {
	Files               int `json:"filesScanned"`
	FilesErrored        int `json:"filesErrored"`
	FilesWithMismatches int `json:"filesWithMismatches"`
	Lines               int `json:"lines"`
	StructuralLines     int `json:"structuralLines"`
	Markers             int `json:"markers"`
	MaxDepth            int `json:"maxDepth"`
	Mismatches          int `json:"mismatches"`
}

// HasMismatches returns true if verification found any disagreement.
func (t Totals) HasMismatches() bool {
	return t.Mismatches > 0
}

// HasErrors returns true if any file failed to scan.
func (t Totals) HasErrors() bool {
	return t.FilesErrored > 0
}

// FileAnalysis contains aggregated data for a single file.
type FileAnalysis struct {
	Path            string `json:"path"`
	Digest          string `json:"digest,omitempty"`
	Lines           int    `json:"lines"`
	StructuralLines int    `json:"structuralLines"`
	Markers         int    `json:"markers"`
	MaxDepth        int    `json:"maxDepth"`
	Mismatches      int    `json:"mismatches"`
	Error           string `json:"error,omitempty"`
}

// KindAnalysis contains aggregated data for a single marker kind.
type KindAnalysis struct {
	Kind  blockprefix.Kind `json:"kind"`
	Count int              `json:"count"`
	Files int              `json:"files"`
}
