package goldmark

import (
	"cmp"
	"slices"

	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/mdast"
)

// Mismatch is a line where the scanner and goldmark disagree: either a
// container opening the scanner did not report, or, when Extra is set, a
// list marker the scanner reported that opens no list item.
type Mismatch struct {
	Line    int              `json:"line"`
	Kind    blockprefix.Kind `json:"kind"`
	Char    byte             `json:"-"`
	Checked bool             `json:"checked,omitempty"`
	Extra   bool             `json:"extra,omitempty"`

	// Found is the notation the scanner produced for the line.
	Found string `json:"found"`

	// Text is the source line, when quoted.
	Text string `json:"text,omitempty"`
}

// Comparison is the outcome of checking scanner output against goldmark.
type Comparison struct {
	// Checked counts starts that were compared.
	Checked int `json:"checked"`

	// Skipped counts starts without a line position.
	Skipped int `json:"skipped"`

	// Tolerated counts nested starts the scanner missed. The scanner keeps
	// no indentation context across lines, so items nested by indentation
	// alone are out of its reach.
	Tolerated int `json:"tolerated"`

	Mismatches []Mismatch `json:"mismatches,omitempty"`
}

// OK reports whether no mismatches were found.
func (c Comparison) OK() bool {
	return len(c.Mismatches) == 0
}

// Quote fills each mismatch's Text with its source line.
func (c *Comparison) Quote(snap *mdast.FileSnapshot) {
	for i := range c.Mismatches {
		c.Mismatches[i].Text = string(snap.LineContent(c.Mismatches[i].Line))
	}
}

// Compare checks scanner output against goldmark in both directions. Every
// container opening goldmark reports must appear as a marker of the same
// kind in the scanner's analysis of that line, and every list marker the
// scanner reports must open a list item.
//
// A list marker is not reported as extra when its line is opaque, when
// nothing follows it on the line (goldmark anchors such items to a later
// line, if any), or when goldmark has an unpositioned item of the same kind
// left to account for it. prefixes must hold one entry per line, in order.
func Compare(prefixes []blockprefix.LinePrefix, outline Outline) Comparison {
	var result Comparison

	for _, start := range outline.Starts {
		if start.Line < 1 || start.Line > len(prefixes) {
			result.Skipped++
			continue
		}

		if matches(prefixes, start) {
			result.Checked++
			continue
		}

		if start.Nested {
			result.Tolerated++
			continue
		}

		result.Checked++
		result.Mismatches = append(result.Mismatches, Mismatch{
			Line:    start.Line,
			Kind:    start.Kind,
			Char:    start.Char,
			Checked: start.Checked,
			Found:   prefixes[start.Line-1].Notation(),
		})
	}

	result.Mismatches = append(result.Mismatches, extras(prefixes, outline)...)
	slices.SortStableFunc(result.Mismatches, func(a, b Mismatch) int {
		return cmp.Compare(a.Line, b.Line)
	})

	return result
}

// itemKey identifies list items that can stand for each other.
type itemKey struct {
	kind blockprefix.Kind
	char byte
}

// extras returns the scanner's list markers that goldmark does not open an
// item for.
func extras(prefixes []blockprefix.LinePrefix, outline Outline) []Mismatch {
	perLine := make(map[int]map[itemKey]int)
	unplaced := make(map[itemKey]int)
	for _, start := range outline.Starts {
		if start.Kind != blockprefix.KindBullet && start.Kind != blockprefix.KindOrdered {
			continue
		}
		key := itemKey{kind: start.Kind, char: start.Char}
		if start.Line < 1 || start.Line > len(prefixes) {
			unplaced[key]++
			continue
		}
		if perLine[start.Line] == nil {
			perLine[start.Line] = make(map[itemKey]int)
		}
		perLine[start.Line][key]++
	}

	var found []Mismatch
	for i, prefix := range prefixes {
		line := i + 1
		if prefix.ContentBlank {
			continue
		}
		if _, opaque := slices.BinarySearch(outline.Opaque, line); opaque {
			continue
		}

		opened := perLine[line]
		for _, marker := range prefix.Markers {
			if marker.Kind != blockprefix.KindBullet && marker.Kind != blockprefix.KindOrdered {
				continue
			}
			key := itemKey{kind: marker.Kind, char: marker.Char}
			switch {
			case opened[key] > 0:
				opened[key]--
			case unplaced[key] > 0:
				unplaced[key]--
			case unplaced[itemKey{kind: marker.Kind}] > 0:
				unplaced[itemKey{kind: marker.Kind}]--
			default:
				found = append(found, Mismatch{
					Line:  line,
					Kind:  marker.Kind,
					Char:  marker.Char,
					Extra: true,
					Found: prefix.Notation(),
				})
			}
		}
	}

	return found
}

// matches reports whether the scanner saw start on its line. A list item
// whose content begins on the following line is matched against the
// preceding line when that line ends right after the marker.
func matches(prefixes []blockprefix.LinePrefix, start Start) bool {
	if lineHas(prefixes[start.Line-1], start) {
		return true
	}
	if start.Line < 2 {
		return false
	}

	prev := prefixes[start.Line-2]
	return opensEmpty(prev) && lineHas(prev, start)
}

func lineHas(prefix blockprefix.LinePrefix, start Start) bool {
	for _, marker := range prefix.Markers {
		if marker.Kind != start.Kind {
			continue
		}
		switch start.Kind {
		case blockprefix.KindTask:
			if marker.Checked == start.Checked {
				return true
			}
		case blockprefix.KindBullet, blockprefix.KindOrdered:
			if start.Char == 0 || marker.Char == start.Char {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// opensEmpty reports whether a line holds markers and nothing after them.
func opensEmpty(prefix blockprefix.LinePrefix) bool {
	return prefix.Structural() && prefix.ContentBlank
}
