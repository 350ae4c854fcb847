package mdast

// Position represents a 1-based line and column in a file.
type Position struct {
	Line   int
	Column int
}

// PositionAt returns the 1-based position of a byte offset. The zero
// Position is returned for offsets before the start of the file.
func (f *FileSnapshot) PositionAt(offset int) Position {
	line, col := f.LineAt(offset)
	return Position{Line: line, Column: col}
}
