package token

import "fmt"

const (
	LeftParen  = Kind("(")
	RightParen = Kind(")")
	Minus      = Kind("-")
	Plus       = Kind("+")
	Semicolon  = Kind(";")
	Slash      = Kind("/")
	Star       = Kind("*")

	Bang         = Kind("!")
	BangEqual    = Kind("!=")
	Equal        = Kind("=")
	EqualEqual   = Kind("==")
	Greater      = Kind(">")
	GreaterEqual = Kind(">=")
	Less         = Kind("<")
	LessEqual    = Kind("<=")

	Identifier = Kind("identifier")
	String     = Kind("string")
	Number     = Kind("number")

	False = Kind("false")
	Nil   = Kind("nil")
	Print = Kind("print")
	True  = Kind("true")

	EOF = Kind("eof")
)

// Kind identifies the lexical class of a token.
type Kind string

// Position is a line and column in the source text, both starting at 1.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexeme with its kind and source position. For
// string tokens Lexeme holds the unquoted content.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    Position
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end"
	}
	return t.Lexeme
}
