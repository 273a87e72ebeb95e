package syntax

import (
	"io"
	"unicode/utf8"
)

// source is a character reader with line and column tracking.
// The whole input is read into memory up front; the caller keeps ownership
// of the io.Reader and is responsible for closing it.
type source struct {
	buf []byte

	filename string
	line     int // line of ch (1-based)
	col      int // column of ch (1-based, byte offset)

	ch     rune // current character, -1 at EOF
	chOffs int  // byte offset of ch in buf
	offs   int  // byte offset of the character after ch

	err error // read error, if any
}

func newSource(filename string, src io.Reader) *source {
	s := &source{
		filename: filename,
		line:     1,
		col:      0, // becomes 1 on the first nextch
		ch:       -1,
	}
	s.buf, s.err = io.ReadAll(src)
	s.nextch()
	return s
}

// nextch advances to the next character. Afterwards (line, col) is the
// position of s.ch.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}

	s.chOffs = s.offs
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}

	r, width := utf8.DecodeRune(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// peek returns the character following s.ch without consuming it.
func (s *source) peek() rune {
	if s.offs >= len(s.buf) {
		return -1
	}
	r, _ := utf8.DecodeRune(s.buf[s.offs:])
	return r
}

func (s *source) pos() Pos {
	return NewPos(s.filename, s.line, s.col)
}

// restOfLine returns the input from the current character up to, but not
// including, the next newline.
func (s *source) restOfLine() string {
	end := s.chOffs
	for end < len(s.buf) && s.buf[end] != '\n' && s.buf[end] != '\r' {
		end++
	}
	return string(s.buf[s.chOffs:end])
}

// isLetter reports whether r is an ASCII letter. Identifiers must start
// with one.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentChar reports whether r may continue an identifier or keyword.
func isIdentChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}
