package syntax

import (
	"fmt"
	"io"
	"strconv"
)

// LexError reports input that no token pattern matches.
type LexError struct {
	Pos    Pos
	Prefix string // unrecognized input, up to the end of the line
	Msg    string // set for recognized but invalid lexemes
}

func (e *LexError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: unrecognized token starting at '%s'", e.Pos, e.Prefix)
}

// PreconditionError reports misuse of the Scanner's value accessors. It
// signals a defect in the caller, never a problem with the input.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.Msg
}

// Scanner performs lexical analysis on Labo source code. It produces one
// token per call to Next. After the first error every further call yields
// _Error and Err returns that error.
type Scanner struct {
	source

	tok     Token
	lit     string
	tokPos  Pos
	ival    int64
	bval    bool
	scanned bool // at least one token was produced

	err error
}

// NewScanner returns a scanner reading all of src.
func NewScanner(filename string, src io.Reader) *Scanner {
	s := &Scanner{source: *newSource(filename, src)}
	if s.source.err != nil {
		s.err = fmt.Errorf("reading %s: %w", filename, s.source.err)
	}
	return s
}

// Next advances to the next token, skipping whitespace and line comments.
func (s *Scanner) Next() {
	s.scanned = true
	if s.err != nil {
		s.tok = _Error
		return
	}

redo:
	for isWhitespace(s.ch) {
		s.nextch()
	}
	if s.ch == '/' && s.peek() == '/' {
		s.skipLineComment()
		goto redo
	}

	s.tokPos = s.pos()
	s.lit = ""

	switch {
	case s.ch < 0:
		s.tok = _EOF

	case isLetter(s.ch):
		s.scanWord()

	case isDigit(s.ch):
		s.scanNumber()

	default:
		if !s.scanSymbol() {
			s.fail(&LexError{Pos: s.tokPos, Prefix: s.restOfLine()})
		}
	}
}

func (s *Scanner) fail(err error) {
	s.err = err
	s.tok = _Error
	s.lit = ""
}

// Token returns the current token kind.
func (s *Scanner) Token() Token { return s.tok }

// Literal returns the lexeme of the current token; it is empty at EOF.
func (s *Scanner) Literal() string { return s.lit }

// Pos returns the start position of the current token.
func (s *Scanner) Pos() Pos { return s.tokPos }

// Line returns the line of the current token.
func (s *Scanner) Line() int { return s.tokPos.Line() }

// Err returns the first error encountered, or nil.
func (s *Scanner) Err() error { return s.err }

// IntValue returns the decoded value of the current _Num token.
func (s *Scanner) IntValue() (int64, error) {
	if err := s.checkState(_Num); err != nil {
		return 0, err
	}
	return s.ival, nil
}

// BoolValue returns the decoded value of the current _Bool token.
func (s *Scanner) BoolValue() (bool, error) {
	if err := s.checkState(_Bool); err != nil {
		return false, err
	}
	return s.bval, nil
}

func (s *Scanner) checkState(want Token) error {
	if !s.scanned {
		return &PreconditionError{Msg: "no token was recognized"}
	}
	if s.tok != want {
		return &PreconditionError{Msg: fmt.Sprintf("no token of kind %s was recognized (have %s)", want, s.tok)}
	}
	return nil
}

// scanWord scans a keyword or an identifier. A keyword only matches when
// the following character cannot continue a name, so "iffy" and "fst_1"
// are identifiers.
func (s *Scanner) scanWord() {
	start := s.chOffs
	s.nextch()
	for isIdentChar(s.ch) {
		s.nextch()
	}
	s.lit = string(s.buf[start:s.chOffs])

	s.tok = LookupKeyword(s.lit)
	if s.tok == _Bool {
		s.bval = s.lit == "true"
	}
}

// scanNumber scans a natural number. Zero is always a complete literal, so
// "007" is three tokens.
func (s *Scanner) scanNumber() {
	start := s.chOffs
	if s.ch == '0' {
		s.nextch()
	} else {
		for isDigit(s.ch) {
			s.nextch()
		}
	}
	s.lit = string(s.buf[start:s.chOffs])

	v, err := strconv.ParseInt(s.lit, 10, 64)
	if err != nil {
		s.fail(&LexError{Pos: s.tokPos, Prefix: s.lit, Msg: fmt.Sprintf("integer literal %s out of range", s.lit)})
		return
	}
	s.tok = _Num
	s.ival = v
}

// scanSymbol scans a symbol, trying two-character symbols before their
// one-character prefixes. It reports false when nothing matches.
func (s *Scanner) scanSymbol() bool {
	switch s.ch {
	case '&':
		if s.peek() != '&' {
			return false
		}
		s.nextch()
		s.tok = _AndAnd
	case '=':
		if s.peek() == '=' {
			s.nextch()
			s.tok = _Eql
		} else {
			s.tok = _Assign
		}
	case '}':
		s.tok = _Rbrace
	case ')':
		s.tok = _Rparen
	case ']':
		s.tok = _Rbrack
	case '-':
		s.tok = _Sub
	case '!':
		s.tok = _Not
	case '{':
		s.tok = _Lbrace
	case '(':
		s.tok = _Lparen
	case '[':
		s.tok = _Lbrack
	case ',':
		s.tok = _Comma
	case '+':
		s.tok = _Add
	case ';':
		s.tok = _Semi
	case ':':
		s.tok = _Colon
	case '*':
		s.tok = _Mul
	default:
		return false
	}
	s.nextch()
	s.lit = s.tok.String()
	return true
}

// skipLineComment skips from "//" to the end of the line.
func (s *Scanner) skipLineComment() {
	for s.ch != '\n' && s.ch >= 0 {
		s.nextch()
	}
}
