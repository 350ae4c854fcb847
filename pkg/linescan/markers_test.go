package linescan_test

import (
	"testing"

	"github.com/yaklabco/mdprefix/pkg/linescan"
)

func TestScanner_ScanBlockquoteMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected bool
		offset   int
	}{
		{"bare marker", ">", true, 1},
		{"marker and space", "> quote", true, 2},
		{"marker without space", ">quote", true, 1},
		{"three spaces", "   > ", true, 5},
		{"four spaces", "    > ", false, 0},
		{"tab before marker", "\t> ", true, 2},
		{"tab before marker without space", "\t>x", true, 2},
		{"space and tab before marker", " \t> ", true, 3},
		{"marker then tab", ">\tquote", true, 2},
		{"text", "quote", false, 0},
		{"empty", "", false, 0},
		{"list marker", "- item", false, 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			scanner := linescan.New([]byte(testCase.line))
			before := scanner.State()

			got := scanner.ScanBlockquoteMarker()
			if got != testCase.expected {
				t.Fatalf("ScanBlockquoteMarker(%q) = %v, want %v", testCase.line, got, testCase.expected)
			}
			if !got && scanner.State() != before {
				t.Errorf("failed match moved scanner from %+v to %+v", before, scanner.State())
			}
			if scanner.Offset() != testCase.offset {
				t.Errorf("expected offset %d, got %d", testCase.offset, scanner.Offset())
			}
		})
	}
}

func TestScanner_ScanBlockquoteMarkerLeavesTabRemainder(t *testing.T) {
	t.Parallel()

	scanner := linescan.New([]byte(">\tcode"))
	if !scanner.ScanBlockquoteMarker() {
		t.Fatal("expected blockquote marker")
	}

	// The tab after '>' spans three columns; one belongs to the marker.
	if scanner.Pending() != 2 {
		t.Errorf("expected 2 pending columns, got %d", scanner.Pending())
	}
}

func TestScanner_TabIndentFeedsMarkerGap(t *testing.T) {
	t.Parallel()

	// Three of the tab's four columns are indentation. The fourth is still
	// pending after '>' and serves as the marker's optional space.
	scanner := linescan.New([]byte("\t>x"))
	if !scanner.ScanBlockquoteMarker() {
		t.Fatal("expected blockquote marker")
	}
	if scanner.Offset() != 2 || scanner.Pending() != 0 {
		t.Errorf("expected offset 2 with nothing pending, got %+v", scanner.State())
	}
	if scanner.HRuleFloor() != 0 {
		t.Errorf("expected hrule floor 0, got %d", scanner.HRuleFloor())
	}
}

func TestScanner_ScanListMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		ok      bool
		char    byte
		ordinal uint64
		offset  int
	}{
		{"dash", "- x", true, '-', 0, 2},
		{"plus", "+ x", true, '+', 0, 2},
		{"star", "* x", true, '*', 0, 2},
		{"indented bullet", "   - x", true, '-', 0, 5},
		{"bullet at end of line", "-", true, '-', 0, 1},
		{"bullet before newline", "-\n", true, '-', 0, 1},
		{"bullet before tab", "-\tx", true, '-', 0, 2},
		{"bullet without space", "-x", false, 0, 0, 0},
		{"thematic break", "---", false, 0, 0, 0},
		{"emphasis", "*emph*", false, 0, 0, 0},
		{"too indented", "    - x", false, 0, 0, 0},
		{"tab before bullet", "\t- x", true, '-', 0, 2},
		{"space and tab before ordered", " \t1. x", true, '.', 1, 4},
		{"ordered paren", "12) x", true, ')', 12, 4},
		{"ordered dot", "1. x", true, '.', 1, 3},
		{"ordered zero", "0. x", true, '.', 0, 3},
		{"ordered leading zeros", "007. x", true, '.', 7, 6},
		{"ordered at end of line", "3.", true, '.', 3, 2},
		{"ordered nine digits", "123456789. x", true, '.', 123456789, 11},
		{"ordered ten digits", "1234567890. x", false, 0, 0, 0},
		{"ordered no terminator", "12x", false, 0, 0, 0},
		{"ordered digits only", "12", false, 0, 0, 0},
		{"ordered no space", "1.x", false, 0, 0, 0},
		{"ordered wrong terminator", "1: x", false, 0, 0, 0},
		{"text", "x", false, 0, 0, 0},
		{"empty", "", false, 0, 0, 0},
		{"whitespace only", "   ", false, 0, 0, 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			scanner := linescan.New([]byte(testCase.line))
			before := scanner.State()

			marker, ok := scanner.ScanListMarker()
			if ok != testCase.ok {
				t.Fatalf("ScanListMarker(%q) ok = %v, want %v", testCase.line, ok, testCase.ok)
			}
			if !ok {
				if scanner.State() != before {
					t.Errorf("failed match moved scanner from %+v to %+v", before, scanner.State())
				}
				if marker != (linescan.ListMarker{}) {
					t.Errorf("failed match returned marker %+v", marker)
				}
				return
			}
			if marker.Char != testCase.char {
				t.Errorf("expected char %q, got %q", testCase.char, marker.Char)
			}
			if marker.Ordinal != testCase.ordinal {
				t.Errorf("expected ordinal %d, got %d", testCase.ordinal, marker.Ordinal)
			}
			if scanner.Offset() != testCase.offset {
				t.Errorf("expected offset %d, got %d", testCase.offset, scanner.Offset())
			}
		})
	}
}

func TestListMarker_Ordered(t *testing.T) {
	t.Parallel()

	for _, char := range []byte{'.', ')'} {
		if !(linescan.ListMarker{Char: char}).Ordered() {
			t.Errorf("expected %q to be ordered", char)
		}
	}
	for _, char := range []byte{'-', '+', '*'} {
		if (linescan.ListMarker{Char: char}).Ordered() {
			t.Errorf("expected %q to be a bullet", char)
		}
	}
}

func TestScanner_ScanTaskMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		line    string
		ok      bool
		checked bool
	}{
		{"unchecked", "[ ] todo", true, false},
		{"checked lower", "[x] done", true, true},
		{"checked upper", "[X] done", true, true},
		{"checked at end of line", "[x]", true, true},
		{"unchecked before newline", "[ ]\r\n", true, false},
		{"indented", "   [x] done", true, true},
		{"too indented", "    [x] done", false, false},
		{"tab before box", "\t[x] done", true, true},
		{"text after bracket", "[x]y", false, false},
		{"other mark", "[-] nope", false, false},
		{"empty box", "[] nope", false, false},
		{"unclosed", "[x", false, false},
		{"link", "[text](url)", false, false},
		{"empty", "", false, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			scanner := linescan.New([]byte(testCase.line))
			before := scanner.State()

			checked, ok := scanner.ScanTaskMarker()
			if ok != testCase.ok {
				t.Fatalf("ScanTaskMarker(%q) ok = %v, want %v", testCase.line, ok, testCase.ok)
			}
			if checked != testCase.checked {
				t.Errorf("ScanTaskMarker(%q) checked = %v, want %v", testCase.line, checked, testCase.checked)
			}
			if !ok && scanner.State() != before {
				t.Errorf("failed match moved scanner from %+v to %+v", before, scanner.State())
			}
		})
	}
}

func TestScanner_MarkerChain(t *testing.T) {
	t.Parallel()

	scanner := linescan.New([]byte("> > 1. [x] done\n"))

	depth := 0
	for scanner.ScanBlockquoteMarker() {
		depth++
	}
	if depth != 2 {
		t.Fatalf("expected 2 blockquote markers, got %d", depth)
	}

	marker, ok := scanner.ScanListMarker()
	if !ok || marker.Char != '.' || marker.Ordinal != 1 {
		t.Fatalf("expected ordered marker 1., got %+v (ok=%v)", marker, ok)
	}

	checked, ok := scanner.ScanTaskMarker()
	if !ok || !checked {
		t.Fatalf("expected checked task marker, got checked=%v ok=%v", checked, ok)
	}

	if string(scanner.Remaining()) != "done\n" {
		t.Errorf("unexpected remainder %q", scanner.Remaining())
	}
}
