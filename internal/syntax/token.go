// Package syntax implements lexical and syntactic analysis for the Labo
// language.
package syntax

import "fmt"

// Token is the kind of a lexical token.
type Token uint

const (
	_EOF   Token = iota // end of input
	_Error              // lexical error; see Scanner.Err

	// Non-singleton categories
	_Name // identifier: x, dict1
	_Num  // natural number: 0, 42
	_Bool // boolean literal: true, false

	// Symbols
	_AndAnd // &&
	_Assign // =
	_Rbrace // }
	_Rparen // )
	_Rbrack // ]
	_Eql    // ==
	_Sub    // -
	_Not    // !
	_Lbrace // {
	_Lparen // (
	_Lbrack // [
	_Comma  // ,
	_Add    // +
	_Semi   // ;
	_Colon  // :
	_Mul    // *

	// Keywords
	_Else
	_Fst
	_If
	_Print
	_Snd
	_Var
	_For
	_Of

	tokenCount
)

var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name: "NAME",
	_Num:  "NUM",
	_Bool: "BOOL",

	_AndAnd: "&&",
	_Assign: "=",
	_Rbrace: "}",
	_Rparen: ")",
	_Rbrack: "]",
	_Eql:    "==",
	_Sub:    "-",
	_Not:    "!",
	_Lbrace: "{",
	_Lparen: "(",
	_Lbrack: "[",
	_Comma:  ",",
	_Add:    "+",
	_Semi:   ";",
	_Colon:  ":",
	_Mul:    "*",

	_Else:  "else",
	_Fst:   "fst",
	_If:    "if",
	_Print: "print",
	_Snd:   "snd",
	_Var:   "var",
	_For:   "for",
	_Of:    "of",
}

func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsSymbol reports whether t is one of the punctuation symbols.
func (t Token) IsSymbol() bool {
	return t >= _AndAnd && t <= _Mul
}

// IsKeyword reports whether t is a keyword token. The boolean literals are
// keywords lexically but have their own token kind.
func (t Token) IsKeyword() bool {
	return t >= _Else && t <= _Of
}

// IsLiteral reports whether t carries a decoded value.
func (t Token) IsLiteral() bool {
	return t == _Num || t == _Bool
}

func (t Token) IsEOF() bool {
	return t == _EOF
}

// Operator tokens used by the checker and the evaluator to tell Operation
// nodes apart.
const (
	Add    Token = _Add    // +
	Mul    Token = _Mul    // *
	Eql    Token = _Eql    // ==
	AndAnd Token = _AndAnd // &&
	Sub    Token = _Sub    // unary -
	Not    Token = _Not    // !
	Fst    Token = _Fst    // fst
	Snd    Token = _Snd    // snd
)

// keywords maps keyword spellings to their tokens. "true" and "false" are
// looked up here too and come back as _Bool.
var keywords = map[string]Token{
	"else":  _Else,
	"false": _Bool,
	"fst":   _Fst,
	"if":    _If,
	"print": _Print,
	"snd":   _Snd,
	"true":  _Bool,
	"var":   _Var,
	"for":   _For,
	"of":    _Of,
}

// LookupKeyword returns the keyword token for ident, or _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// Precedence returns the binding power of binary operators; 0 for tokens
// that are not binary operators. All levels are left-associative.
//
//	1: ,  (pair construction)
//	2: &&
//	3: ==
//	4: +
//	5: *
func (t Token) Precedence() int {
	switch t {
	case _Comma:
		return 1
	case _AndAnd:
		return 2
	case _Eql:
		return 3
	case _Add:
		return 4
	case _Mul:
		return 5
	}
	return 0
}
