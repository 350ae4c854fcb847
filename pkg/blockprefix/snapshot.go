package blockprefix

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdprefix/pkg/mdast"
)

// cancelCheckInterval is how many lines are analyzed between context checks.
const cancelCheckInterval = 256

// AnalyzeSnapshot analyzes every line of a file. The result has one entry
// per line, in order, with Line set.
func AnalyzeSnapshot(ctx context.Context, snap *mdast.FileSnapshot, opts Options) ([]LinePrefix, error) {
	if snap == nil {
		return nil, nil
	}

	prefixes := make([]LinePrefix, 0, snap.LineCount())
	for number, line := range snap.AllLines() {
		if (number-1)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("analyze %s: %w", snap.Path, err)
			}
		}

		prefix := Analyze(line, opts)
		prefix.Line = number
		prefixes = append(prefixes, prefix)
	}

	return prefixes, nil
}

// Summary counts markers across analyzed lines.
type Summary struct {
	Lines           int `json:"lines"`
	BlankLines      int `json:"blankLines"`
	StructuralLines int `json:"structuralLines"`
	Blockquotes     int `json:"blockquotes"`
	Bullets         int `json:"bullets"`
	Ordered         int `json:"ordered"`
	TasksChecked    int `json:"tasksChecked"`
	TasksUnchecked  int `json:"tasksUnchecked"`
	MaxDepth        int `json:"maxDepth"`
}

// Summarize counts the markers in prefixes.
func Summarize(prefixes []LinePrefix) Summary {
	var summary Summary

	for _, prefix := range prefixes {
		summary.Lines++
		if prefix.Blank {
			summary.BlankLines++
		}
		if prefix.Structural() {
			summary.StructuralLines++
		}
		summary.MaxDepth = max(summary.MaxDepth, prefix.Depth())

		for _, marker := range prefix.Markers {
			switch marker.Kind {
			case KindBlockquote:
				summary.Blockquotes++
			case KindBullet:
				summary.Bullets++
			case KindOrdered:
				summary.Ordered++
			case KindTask:
				if marker.Checked {
					summary.TasksChecked++
				} else {
					summary.TasksUnchecked++
				}
			}
		}
	}

	return summary
}

// Add accumulates other into s.
func (s *Summary) Add(other Summary) {
	s.Lines += other.Lines
	s.BlankLines += other.BlankLines
	s.StructuralLines += other.StructuralLines
	s.Blockquotes += other.Blockquotes
	s.Bullets += other.Bullets
	s.Ordered += other.Ordered
	s.TasksChecked += other.TasksChecked
	s.TasksUnchecked += other.TasksUnchecked
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
}

// ListItems returns the number of list markers of either kind.
func (s Summary) ListItems() int {
	return s.Bullets + s.Ordered
}

// Tasks returns the number of task checkboxes.
func (s Summary) Tasks() int {
	return s.TasksChecked + s.TasksUnchecked
}
