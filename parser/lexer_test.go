package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidoust/cddlparser/ast"
)

func lexAll(t *testing.T, source string) []ast.Token {
	t.Helper()
	l := NewLexer(source)
	var tokens []ast.Token
	for {
		tok, err := l.NextToken()
		require.NoError(t, err)
		tokens = append(tokens, tok)
		if tok.Kind == ast.EOF {
			return tokens
		}
	}
}

func kinds(tokens []ast.Token) []ast.Kind {
	out := make([]ast.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	tokens := lexAll(t, `a => b ^ c // d /= e / f .size 4`)
	assert.Equal(t, []ast.Kind{
		ast.IDENT, ast.ARROWMAP, ast.IDENT, ast.CARET, ast.IDENT,
		ast.GCHOICE, ast.IDENT, ast.TCHOICEALT, ast.IDENT, ast.TCHOICE,
		ast.IDENT, ast.CTLOP, ast.NUMBER, ast.EOF,
	}, kinds(tokens))
}

func TestLexerCommentAndWhitespaceTrivia(t *testing.T) {
	tokens := lexAll(t, "a = tstr ; comment\n; another\nb = uint")
	require.Len(t, tokens, 7) // a = tstr b = uint EOF
	bTok := tokens[3]
	assert.Equal(t, ast.IDENT, bTok.Kind)
	require.Len(t, bTok.Comments, 2)
	assert.Equal(t, "; comment", bTok.Comments[0].Literal)
	assert.Equal(t, "; another", bTok.Comments[1].Literal)
	assert.Equal(t, "\n", bTok.Whitespace)
}

func TestLexerRangeVsFloat(t *testing.T) {
	tokens := lexAll(t, `0..10`)
	assert.Equal(t, []ast.Kind{ast.NUMBER, ast.INCLRANGE, ast.NUMBER, ast.EOF}, kinds(tokens))
	assert.Equal(t, "0", tokens[0].Literal)
	assert.Equal(t, "10", tokens[2].Literal)

	tokens = lexAll(t, `0...10`)
	assert.Equal(t, []ast.Kind{ast.NUMBER, ast.EXCLRANGE, ast.NUMBER, ast.EOF}, kinds(tokens))

	tokens = lexAll(t, `0.5`)
	assert.Equal(t, []ast.Kind{ast.FLOAT, ast.EOF}, kinds(tokens))
	assert.Equal(t, "0.5", tokens[0].Literal)
}

func TestLexerHexAndBinaryNumbers(t *testing.T) {
	tokens := lexAll(t, `0x1A`)
	assert.Equal(t, ast.NUMBER, tokens[0].Kind)
	assert.Equal(t, "0x1A", tokens[0].Literal)

	tokens = lexAll(t, `0b101`)
	assert.Equal(t, ast.NUMBER, tokens[0].Kind)
	assert.Equal(t, "0b101", tokens[0].Literal)

	tokens = lexAll(t, `0x1.8p3`)
	assert.Equal(t, ast.FLOAT, tokens[0].Kind)
	assert.Equal(t, "0x1.8p3", tokens[0].Literal)

	tokens = lexAll(t, `0x1..10`)
	assert.Equal(t, []ast.Kind{ast.NUMBER, ast.INCLRANGE, ast.NUMBER, ast.EOF}, kinds(tokens))
	assert.Equal(t, "0x1", tokens[0].Literal)
}

func TestLexerHexStringVsIdentifier(t *testing.T) {
	tokens := lexAll(t, `h'0123'`)
	assert.Equal(t, ast.HEX, tokens[0].Kind)
	assert.Equal(t, "0123", tokens[0].Literal)

	tokens = lexAll(t, `hello`)
	assert.Equal(t, ast.IDENT, tokens[0].Kind)
	assert.Equal(t, "hello", tokens[0].Literal)
}

func TestLexerBase64StringVsIdentifier(t *testing.T) {
	tokens := lexAll(t, `b64'SGVsbG8h'`)
	assert.Equal(t, ast.BASE64, tokens[0].Kind)
	assert.Equal(t, "SGVsbG8h", tokens[0].Literal)

	tokens = lexAll(t, `b64ident`)
	assert.Equal(t, ast.IDENT, tokens[0].Kind)
	assert.Equal(t, "b64ident", tokens[0].Literal)

	tokens = lexAll(t, `b6`)
	assert.Equal(t, ast.IDENT, tokens[0].Kind)
	assert.Equal(t, "b6", tokens[0].Literal)
}

func TestLexerQuotedStrings(t *testing.T) {
	tokens := lexAll(t, `"a string"`)
	assert.Equal(t, ast.STRING, tokens[0].Kind)
	assert.Equal(t, "a string", tokens[0].Literal)

	tokens = lexAll(t, `'a byte string'`)
	assert.Equal(t, ast.BYTES, tokens[0].Kind)
	assert.Equal(t, "a byte string", tokens[0].Literal)
}

func TestLexerIdentifierCannotEndInDashOrDot(t *testing.T) {
	l := NewLexer(`foo-`)
	_, err := l.NextToken()
	assert.Error(t, err)
}

func TestLexerIllegalCharacter(t *testing.T) {
	tokens := lexAll(t, `!`)
	assert.Equal(t, ast.ILLEGAL, tokens[0].Kind)
}

func TestLexerTagNumbers(t *testing.T) {
	tokens := lexAll(t, `#6.32(tstr)`)
	assert.Equal(t, []ast.Kind{
		ast.HASH, ast.FLOAT, ast.LPAREN, ast.IDENT, ast.RPAREN, ast.EOF,
	}, kinds(tokens))
	assert.Equal(t, "6.32", tokens[1].Literal)
}
