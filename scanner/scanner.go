// Package scanner turns source text into tokens.
package scanner

import (
	"fmt"

	"github.com/saivishnu725/jlox-old-v2/token"
)

// Error is a lexical error at a known source position.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Pos.Line, e.Message)
}

var keywords = map[string]token.Kind{
	"false": token.False,
	"nil":   token.Nil,
	"print": token.Print,
	"true":  token.True,
}

type scanner struct {
	src       string
	start     int
	startPos  token.Position
	current   int
	line      int
	lineStart int
	tokens    []token.Token
}

// Scan tokenizes src and appends a trailing EOF token. It stops at the
// first lexical error.
func Scan(src string) ([]token.Token, error) {
	s := &scanner{src: src, line: 1}
	for !s.atEnd() {
		s.begin()
		if err := s.scanToken(); err != nil {
			return nil, err
		}
	}
	s.begin()
	s.add(token.EOF)
	return s.tokens, nil
}

// begin marks the start of the next token at the current offset.
func (s *scanner) begin() {
	s.start = s.current
	s.startPos = token.Position{Line: s.line, Column: s.start - s.lineStart + 1}
}

func (s *scanner) scanToken() error {
	c := s.advance()
	switch c {
	case '(':
		s.add(token.LeftParen)
	case ')':
		s.add(token.RightParen)
	case '-':
		s.add(token.Minus)
	case '+':
		s.add(token.Plus)
	case ';':
		s.add(token.Semicolon)
	case '*':
		s.add(token.Star)
	case '/':
		if s.match('/') {
			for !s.atEnd() && s.peek() != '\n' {
				s.current++
			}
		} else {
			s.add(token.Slash)
		}
	case '!':
		s.addEither('=', token.BangEqual, token.Bang)
	case '=':
		s.addEither('=', token.EqualEqual, token.Equal)
	case '<':
		s.addEither('=', token.LessEqual, token.Less)
	case '>':
		s.addEither('=', token.GreaterEqual, token.Greater)
	case ' ', '\r', '\t':
	case '\n':
		s.newline()
	case '"':
		return s.scanString()
	default:
		if isDigit(c) {
			s.scanNumber()
			return nil
		}
		if isAlpha(c) {
			s.scanIdent()
			return nil
		}
		return &Error{Pos: s.startPos, Message: fmt.Sprintf("Unexpected character %q.", c)}
	}
	return nil
}

func (s *scanner) scanString() error {
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.current++
			s.newline()
		} else {
			s.current++
		}
	}
	if s.atEnd() {
		return &Error{Pos: s.startPos, Message: "Unterminated string."}
	}
	s.current++
	s.addLexeme(token.String, s.src[s.start+1:s.current-1])
	return nil
}

func (s *scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.current++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}
	s.add(token.Number)
}

func (s *scanner) scanIdent() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.current++
	}
	if kind, ok := keywords[s.src[s.start:s.current]]; ok {
		s.add(kind)
	} else {
		s.add(token.Identifier)
	}
}

func (s *scanner) add(kind token.Kind) {
	s.addLexeme(kind, s.src[s.start:s.current])
}

func (s *scanner) addEither(next byte, two, one token.Kind) {
	if s.match(next) {
		s.add(two)
	} else {
		s.add(one)
	}
}

func (s *scanner) addLexeme(kind token.Kind, lexeme string) {
	s.tokens = append(s.tokens, token.Token{Kind: kind, Lexeme: lexeme, Pos: s.startPos})
}

func (s *scanner) newline() {
	s.line++
	s.lineStart = s.current
}

func (s *scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *scanner) match(c byte) bool {
	if s.atEnd() || s.src[s.current] != c {
		return false
	}
	s.current++
	return true
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}
