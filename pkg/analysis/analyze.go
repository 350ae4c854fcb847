package analysis

import (
	"cmp"
	"path/filepath"
	"slices"
	"time"

	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/runner"
)

// ReportVersion is the current report format version.
const ReportVersion = "1.0.0"

// kindOrder fixes the tie-break order of marker kinds.
//
//nolint:gochecknoglobals // Read-only lookup table.
var kindOrder = []blockprefix.Kind{
	blockprefix.KindBlockquote,
	blockprefix.KindBullet,
	blockprefix.KindOrdered,
	blockprefix.KindTask,
}

// makeRelativePath converts an absolute path to a relative path from workDir.
// If workDir is empty or conversion fails, returns the original path.
func makeRelativePath(absPath, workDir string) string {
	if workDir == "" {
		return absPath
	}
	relPath, err := filepath.Rel(workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// kindCounts returns the number of markers of each kind in a summary.
func kindCounts(summary blockprefix.Summary) map[blockprefix.Kind]int {
	return map[blockprefix.Kind]int{
		blockprefix.KindBlockquote: summary.Blockquotes,
		blockprefix.KindBullet:     summary.Bullets,
		blockprefix.KindOrdered:    summary.Ordered,
		blockprefix.KindTask:       summary.Tasks(),
	}
}

// Analyze transforms a runner.Result into a Report.
func Analyze(result *runner.Result, opts Options) *Report {
	report := &Report{
		Version:   ReportVersion,
		Timestamp: time.Now(),
	}

	if result == nil {
		return report
	}
	report.Verified = result.Verified

	byKind := make(map[blockprefix.Kind]*KindAnalysis, len(kindOrder))
	for _, kind := range kindOrder {
		byKind[kind] = &KindAnalysis{Kind: kind}
	}

	for _, file := range result.Files {
		report.Totals.Files++
		displayPath := makeRelativePath(file.Path, opts.WorkingDir)

		if file.Error != nil {
			report.Totals.FilesErrored++
			if opts.IncludeByFile {
				report.ByFile = append(report.ByFile, FileAnalysis{Path: displayPath, Error: file.Error.Error()})
			}
			continue
		}

		markers := 0
		for kind, count := range kindCounts(file.Summary) {
			markers += count
			if count > 0 {
				byKind[kind].Count += count
				byKind[kind].Files++
			}
		}

		mismatches := file.Mismatches()
		if len(mismatches) > 0 {
			report.Totals.FilesWithMismatches++
		}

		report.Totals.Lines += file.Summary.Lines
		report.Totals.StructuralLines += file.Summary.StructuralLines
		report.Totals.Markers += markers
		report.Totals.MaxDepth = max(report.Totals.MaxDepth, file.Summary.MaxDepth)
		report.Totals.Mismatches += len(mismatches)

		if opts.IncludeByFile {
			report.ByFile = append(report.ByFile, FileAnalysis{
				Path:            displayPath,
				Digest:          file.Digest,
				Lines:           file.Summary.Lines,
				StructuralLines: file.Summary.StructuralLines,
				Markers:         markers,
				MaxDepth:        file.Summary.MaxDepth,
				Mismatches:      len(mismatches),
			})
		}

		if opts.IncludeMismatches {
			for _, mismatch := range mismatches {
				report.Mismatches = append(report.Mismatches, MismatchEntry{
					FilePath: displayPath,
					Line:     mismatch.Line,
					Kind:     mismatch.Kind,
					Extra:    mismatch.Extra,
					Found:    mismatch.Found,
				})
			}
		}
	}

	if opts.IncludeByFile {
		sortFileAnalysis(report.ByFile, opts.SortBy, opts.SortDesc)
	}
	if opts.IncludeByKind {
		report.ByKind = buildByKind(byKind, opts)
	}

	return report
}

// buildByKind constructs the ByKind slice, skipping kinds never seen.
func buildByKind(byKind map[blockprefix.Kind]*KindAnalysis, opts Options) []KindAnalysis {
	result := make([]KindAnalysis, 0, len(kindOrder))
	for _, kind := range kindOrder {
		if ka := byKind[kind]; ka.Count > 0 {
			result = append(result, *ka)
		}
	}
	sortKindAnalysis(result, opts.SortBy, opts.SortDesc)
	return result
}

func sortKindAnalysis(kinds []KindAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(kinds, func(left, right KindAnalysis) int {
		if sortBy == SortByAlpha {
			return cmp.Compare(left.Kind, right.Kind)
		}
		result := cmp.Compare(left.Count, right.Count)
		if desc {
			result = -result
		}
		return result
	})
}

func sortFileAnalysis(files []FileAnalysis, sortBy SortField, desc bool) {
	slices.SortStableFunc(files, func(left, right FileAnalysis) int {
		switch sortBy {
		case SortByAlpha:
			// Alphabetical sorting is always ascending (A-Z)
			return cmp.Compare(left.Path, right.Path)
		case SortByDepth:
			result := cmp.Compare(right.MaxDepth, left.MaxDepth)
			if result == 0 {
				result = cmp.Compare(right.StructuralLines, left.StructuralLines)
			}
			return result
		default: // SortByCount
			result := cmp.Compare(left.StructuralLines, right.StructuralLines)
			if desc {
				result = -result
			}
			return result
		}
	})
}
