package syntax

import "fmt"

// Pos is a source position. Lines and columns are 1-based; the column is a
// byte offset within the line. The zero value is an invalid position.
type Pos struct {
	filename string
	line     int
	col      int
}

// NoPos is the invalid position.
var NoPos Pos

// NewPos returns the position line:col in filename.
func NewPos(filename string, line, col int) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String formats the position as "filename:line:col", or "line:col" when the
// file name is unknown.
func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether p denotes an actual source position.
func (p Pos) IsValid() bool {
	return p.line > 0
}

func (p Pos) Line() int        { return p.line }
func (p Pos) Col() int         { return p.col }
func (p Pos) Filename() string { return p.filename }
func (p Pos) WithFilename(name string) Pos {
	p.filename = name
	return p
}
