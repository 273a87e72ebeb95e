package syntax

import (
	"strings"
	"testing"
)

func TestSourceBasic(t *testing.T) {
	src := newSource("test", strings.NewReader("ab\nc"))

	want := []struct {
		ch        rune
		line, col int
	}{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 1, 3},
		{'c', 2, 1},
		{-1, 2, 2},
	}
	for i, w := range want {
		if src.ch != w.ch || src.line != w.line || src.col != w.col {
			t.Errorf("step %d: got %q at %d:%d, want %q at %d:%d",
				i, src.ch, src.line, src.col, w.ch, w.line, w.col)
		}
		src.nextch()
	}
}

func TestSourceEmpty(t *testing.T) {
	src := newSource("test", strings.NewReader(""))
	if src.ch != -1 {
		t.Errorf("ch = %q, want EOF", src.ch)
	}
	if src.peek() != -1 {
		t.Errorf("peek() = %q, want EOF", src.peek())
	}
}

func TestSourcePeek(t *testing.T) {
	src := newSource("test", strings.NewReader("xy"))
	if src.peek() != 'y' {
		t.Errorf("peek() = %q, want 'y'", src.peek())
	}
	if src.ch != 'x' {
		t.Errorf("peek advanced the source: ch = %q", src.ch)
	}
}

func TestSourceRestOfLine(t *testing.T) {
	src := newSource("test", strings.NewReader("var x = #oops\nprint x"))
	for src.ch != '#' {
		src.nextch()
	}
	if got := src.restOfLine(); got != "#oops" {
		t.Errorf("restOfLine() = %q, want %q", got, "#oops")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errTestRead }

var errTestRead = &PreconditionError{Msg: "test read failure"}

func TestSourceReadError(t *testing.T) {
	src := newSource("test", failingReader{})
	if src.err != errTestRead {
		t.Errorf("err = %v, want %v", src.err, errTestRead)
	}
	if src.ch != -1 {
		t.Errorf("ch = %q, want EOF", src.ch)
	}
}
