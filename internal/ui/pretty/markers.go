package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdprefix/pkg/blockprefix"
	"github.com/yaklabco/mdprefix/pkg/parser/goldmark"
)

// FormatMarker returns a styled rendering of one marker.
func (s *Styles) FormatMarker(marker blockprefix.Marker) string {
	text := marker.String()
	switch marker.Kind {
	case blockprefix.KindBlockquote:
		return s.Blockquote.Render(text)
	case blockprefix.KindBullet:
		return s.Bullet.Render(text)
	case blockprefix.KindOrdered:
		return s.Ordered.Render(text)
	case blockprefix.KindTask:
		if marker.Checked {
			return s.TaskChecked.Render(text)
		}
		return s.TaskUnchecked.Render(text)
	default:
		return text
	}
}

// FormatNotation renders a line's markers space-separated, e.g. "> - [x]".
// Lines without markers render as a dimmed "(none)" or "(blank)".
func (s *Styles) FormatNotation(prefix blockprefix.LinePrefix) string {
	if !prefix.Structural() {
		if prefix.Blank {
			return s.Dim.Render("(blank)")
		}
		return s.Dim.Render("(none)")
	}

	parts := make([]string, len(prefix.Markers))
	for i, marker := range prefix.Markers {
		parts[i] = s.FormatMarker(marker)
	}
	return strings.Join(parts, " ")
}

// FormatLine formats one analyzed line as "path:line  notation".
// When content is non-empty it follows, dimmed, after the notation.
func (s *Styles) FormatLine(path string, prefix blockprefix.LinePrefix, content string) string {
	location := s.FilePath.Render(path) + ":" + s.LineNumber.Render(fmt.Sprint(prefix.Line))
	line := "  " + location + "  " + s.FormatNotation(prefix)
	if content != "" {
		line += "  " + s.Content.Render(content)
	}
	return line + "\n"
}

// FormatColumns describes where each marker sits, e.g. "> @0 col 0, - @2 col 2".
func (s *Styles) FormatColumns(prefix blockprefix.LinePrefix) string {
	parts := make([]string, len(prefix.Markers))
	for i, marker := range prefix.Markers {
		parts[i] = fmt.Sprintf("%s %s", s.FormatMarker(marker),
			s.Dim.Render(fmt.Sprintf("@%d col %d", marker.Offset, marker.Column)))
	}
	return strings.Join(parts, ", ")
}

// FormatMismatch formats a verification disagreement for one line. A quoted
// source line follows, dimmed, on its own line.
func (s *Styles) FormatMismatch(path string, mismatch goldmark.Mismatch) string {
	found := mismatch.Found
	if found == "" {
		found = "nothing"
	}

	detail := fmt.Sprintf("goldmark opens %s, scanner found %s", s.Bold.Render(string(mismatch.Kind)), found)
	if mismatch.Extra {
		detail = fmt.Sprintf("scanner found %s %s, goldmark opens no item",
			s.Bold.Render(string(mismatch.Kind)), string(mismatch.Char))
	}

	location := s.FilePath.Render(path) + ":" + s.LineNumber.Render(fmt.Sprint(mismatch.Line))
	out := fmt.Sprintf("  %s  %s  %s\n", location, s.Mismatch.Render("mismatch"), detail)
	if mismatch.Text != "" {
		out += "    " + s.Dim.Render(mismatch.Text) + "\n"
	}
	return out
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, structural int) string {
	header := s.FilePath.Render(path)
	if structural > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d structural lines)", structural))
	}
	return header
}
