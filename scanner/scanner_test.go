package scanner

import (
	"testing"

	"github.com/saivishnu725/jlox-old-v2/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token.Token) []token.Kind {
	result := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		result = append(result, tok.Kind)
	}
	return result
}

func TestScan(t *testing.T) {
	tokens, err := Scan(`print (1 + 2.5) * 3 >= 4 != true; // trailing comment`)
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{
		token.Print, token.LeftParen, token.Number, token.Plus, token.Number,
		token.RightParen, token.Star, token.Number, token.GreaterEqual,
		token.Number, token.BangEqual, token.True, token.Semicolon, token.EOF,
	}, kinds(tokens))

	assert.Equal(t, "2.5", tokens[4].Lexeme)
}

func TestScanString(t *testing.T) {
	tokens, err := Scan(`"hello world";`)
	require.NoError(t, err)

	require.Equal(t, []token.Kind{token.String, token.Semicolon, token.EOF}, kinds(tokens))
	assert.Equal(t, "hello world", tokens[0].Lexeme)
	assert.Equal(t, token.Position{Line: 1, Column: 1}, tokens[0].Pos)
}

func TestScanPositions(t *testing.T) {
	tokens, err := Scan("print 1;\nprint 2;")
	require.NoError(t, err)

	require.Len(t, tokens, 7)
	assert.Equal(t, token.Position{Line: 1, Column: 1}, tokens[0].Pos)
	assert.Equal(t, token.Position{Line: 1, Column: 7}, tokens[1].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 1}, tokens[3].Pos)
	assert.Equal(t, token.Position{Line: 2, Column: 7}, tokens[4].Pos)
}

func TestScanKeywordsAndIdents(t *testing.T) {
	tokens, err := Scan("nil true false printer")
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{
		token.Nil, token.True, token.False, token.Identifier, token.EOF,
	}, kinds(tokens))
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := Scan(`print "oops`)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Unterminated string.", serr.Message)
	assert.Equal(t, token.Position{Line: 1, Column: 7}, serr.Pos)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, err := Scan("1 + @")

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, token.Position{Line: 1, Column: 5}, serr.Pos)
	assert.Contains(t, serr.Message, "Unexpected character")
}
