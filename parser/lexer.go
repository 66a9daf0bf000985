package parser

import (
	"strings"

	"github.com/tidoust/cddlparser/ast"
	"github.com/tidoust/cddlparser/reporter"
)

// Lexer turns CDDL source text into a stream of ast.Token values. It
// operates over Unicode code points, not bytes, so multi-byte runes in
// identifiers, strings, and comments count as a single position.
type Lexer struct {
	input        []rune
	position     int
	readPosition int
	ch           rune
}

// NewLexer creates a Lexer positioned at the start of source.
func NewLexer(source string) *Lexer {
	l := &Lexer{input: []rune(source)}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		// Stay at end of input so later slices never run past it.
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		return
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

type location struct {
	line   int // 0-based
	column int
}

func (l *Lexer) getLocation() location {
	position := l.position - 2
	lines := strings.Split(string(l.input), "\n")
	i := 0
	for line, lineText := range lines {
		lineLength := len([]rune(lineText))
		i += lineLength + 1
		lineBegin := i - lineLength
		if i > position {
			return location{line: line, column: position - lineBegin + 1}
		}
	}
	return location{line: 0, column: 0}
}

func (l *Lexer) getLine(lineNumber int) string {
	lines := strings.Split(string(l.input), "\n")
	if lineNumber < 0 || lineNumber >= len(lines) {
		return ""
	}
	return lines[lineNumber]
}

func (l *Lexer) tokenError(message string) *reporter.ParserError {
	loc := l.getLocation()
	line := ""
	if loc.line >= 0 {
		line = l.getLine(loc.line)
	}
	return reporter.TokenError(loc.line+1, loc.column, line, message)
}

// isAlpha reports whether r is a CDDL ALPHA (RFC 5234): an ASCII letter.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isExtendedAlpha reports whether r may start or continue a CDDL
// identifier's alphabetic run: an ALPHA, or one of `@`, `_`, `$`.
func isExtendedAlpha(r rune) bool {
	return isAlpha(r) || r == '@' || r == '_' || r == '$'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'A' && r <= 'F')
}

// NextToken reads and returns the next token from the input, consuming it.
// Leading whitespace and comments are absorbed into the returned token's
// Comments and Whitespace fields rather than returned as tokens of their
// own.
func (l *Lexer) NextToken() (ast.Token, error) {
	comments, whitespace := l.readComments()

	ch := l.ch
	tokenRead := false
	var tok ast.Token

	switch {
	case ch == '=':
		if l.peekChar() == '>' {
			l.readChar()
			tok = ast.Token{Kind: ast.ARROWMAP, Comments: comments, Whitespace: whitespace}
		} else {
			tok = ast.Token{Kind: ast.ASSIGN, Comments: comments, Whitespace: whitespace}
		}
	case ch == '(':
		tok = ast.Token{Kind: ast.LPAREN, Comments: comments, Whitespace: whitespace}
	case ch == ')':
		tok = ast.Token{Kind: ast.RPAREN, Comments: comments, Whitespace: whitespace}
	case ch == '{':
		tok = ast.Token{Kind: ast.LBRACE, Comments: comments, Whitespace: whitespace}
	case ch == '}':
		tok = ast.Token{Kind: ast.RBRACE, Comments: comments, Whitespace: whitespace}
	case ch == '[':
		tok = ast.Token{Kind: ast.LBRACK, Comments: comments, Whitespace: whitespace}
	case ch == ']':
		tok = ast.Token{Kind: ast.RBRACK, Comments: comments, Whitespace: whitespace}
	case ch == '<':
		tok = ast.Token{Kind: ast.LT, Comments: comments, Whitespace: whitespace}
	case ch == '>':
		tok = ast.Token{Kind: ast.GT, Comments: comments, Whitespace: whitespace}
	case ch == '+':
		tok = ast.Token{Kind: ast.PLUS, Comments: comments, Whitespace: whitespace}
	case ch == ',':
		tok = ast.Token{Kind: ast.COMMA, Comments: comments, Whitespace: whitespace}
	case ch == '.':
		switch {
		case l.peekChar() == '.':
			l.readChar()
			tok = ast.Token{Kind: ast.INCLRANGE, Comments: comments, Whitespace: whitespace}
			if l.peekChar() == '.' {
				l.readChar()
				tok = ast.Token{Kind: ast.EXCLRANGE, Comments: comments, Whitespace: whitespace}
			}
		case isExtendedAlpha(l.peekChar()):
			l.readChar()
			ident, err := l.readIdentifier("")
			if err != nil {
				return ast.Token{}, err
			}
			tok = ast.Token{Kind: ast.CTLOP, Literal: ident, Comments: comments, Whitespace: whitespace}
			tokenRead = true
		}
	case ch == ':':
		tok = ast.Token{Kind: ast.COLON, Comments: comments, Whitespace: whitespace}
	case ch == '?':
		tok = ast.Token{Kind: ast.QUEST, Comments: comments, Whitespace: whitespace}
	case ch == '/':
		switch {
		case l.peekChar() == '/':
			l.readChar()
			tok = ast.Token{Kind: ast.GCHOICE, Comments: comments, Whitespace: whitespace}
			if l.peekChar() == '=' {
				l.readChar()
				tok = ast.Token{Kind: ast.GCHOICEALT, Comments: comments, Whitespace: whitespace}
			}
		case l.peekChar() == '=':
			l.readChar()
			tok = ast.Token{Kind: ast.TCHOICEALT, Comments: comments, Whitespace: whitespace}
		default:
			tok = ast.Token{Kind: ast.TCHOICE, Comments: comments, Whitespace: whitespace}
		}
	case ch == '*':
		tok = ast.Token{Kind: ast.ASTERISK, Comments: comments, Whitespace: whitespace}
	case ch == '^':
		tok = ast.Token{Kind: ast.CARET, Comments: comments, Whitespace: whitespace}
	case ch == '#':
		tok = ast.Token{Kind: ast.HASH, Comments: comments, Whitespace: whitespace}
	case ch == '~':
		tok = ast.Token{Kind: ast.TILDE, Comments: comments, Whitespace: whitespace}
	case ch == '"':
		s, err := l.readString()
		if err != nil {
			return ast.Token{}, err
		}
		tok = ast.Token{Kind: ast.STRING, Literal: s, Comments: comments, Whitespace: whitespace}
	case ch == '\'':
		s, err := l.readBytesString()
		if err != nil {
			return ast.Token{}, err
		}
		tok = ast.Token{Kind: ast.BYTES, Literal: s, Comments: comments, Whitespace: whitespace}
	case ch == ';':
		tok = ast.Token{Kind: ast.COMMENT, Literal: l.readComment(), Comments: comments, Whitespace: whitespace}
		tokenRead = true
	case ch == '&':
		tok = ast.Token{Kind: ast.AMPERSAND, Comments: comments, Whitespace: whitespace}
	case ch == 0:
		tok = ast.Token{Kind: ast.EOF, Comments: comments, Whitespace: whitespace}
	case isExtendedAlpha(ch):
		switch {
		case ch == 'b' && l.peekChar() == '6':
			l.readChar()
			l.readChar()
			if l.ch == '4' && l.peekChar() == '\'' {
				l.readChar()
				s, err := l.readBytesString()
				if err != nil {
					return ast.Token{}, err
				}
				tok = ast.Token{Kind: ast.BASE64, Literal: s, Comments: comments, Whitespace: whitespace}
			} else {
				ident, err := l.readIdentifier("b6")
				if err != nil {
					return ast.Token{}, err
				}
				tok = ast.Token{Kind: ast.IDENT, Literal: ident, Comments: comments, Whitespace: whitespace}
				tokenRead = true
			}
		case ch == 'h' && l.peekChar() == '\'':
			l.readChar()
			s, err := l.readBytesString()
			if err != nil {
				return ast.Token{}, err
			}
			tok = ast.Token{Kind: ast.HEX, Literal: s, Comments: comments, Whitespace: whitespace}
		default:
			ident, err := l.readIdentifier("")
			if err != nil {
				return ast.Token{}, err
			}
			tok = ast.Token{Kind: ast.IDENT, Literal: ident, Comments: comments, Whitespace: whitespace}
			tokenRead = true
		}
	case isDigit(ch) || ch == '-':
		lit, err := l.readNumberOrFloat()
		if err != nil {
			return ast.Token{}, err
		}
		kind := ast.NUMBER
		if strings.Contains(lit, ".") {
			kind = ast.FLOAT
		}
		tok = ast.Token{Kind: kind, Literal: lit, Comments: comments, Whitespace: whitespace}
		tokenRead = true
	default:
		tok = ast.Token{Kind: ast.ILLEGAL, Comments: comments, Whitespace: whitespace}
	}

	if !tokenRead {
		l.readChar()
	}
	return tok, nil
}

// readIdentifier reads a CDDL identifier (RFC 8610 §3.1), whose leading
// character has already been matched by the caller and is passed as
// start, unless start is "" in which case the current character itself
// begins the identifier.
func (l *Lexer) readIdentifier(start string) (string, error) {
	position := l.position
	if start == "" && !isExtendedAlpha(l.ch) {
		return "", l.tokenError("identifier expected, found nothing")
	}
	for isExtendedAlpha(l.ch) || isDigit(l.ch) || l.ch == '-' || l.ch == '.' {
		l.readChar()
	}
	identifier := start + string(l.input[position:l.position])
	if len(identifier) > 0 {
		last := identifier[len(identifier)-1]
		if last == '-' || last == '.' {
			return "", l.tokenError("identifier cannot end with \"-\" or \".\", found \"" + identifier + "\"")
		}
	}
	return identifier, nil
}

func (l *Lexer) readComment() string {
	position := l.position
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readString() (string, error) {
	position := l.position
	l.readChar() // eat opening "
	for l.ch != '"' {
		switch {
		case (l.ch >= 0x20 && l.ch <= 0x21) || (l.ch >= 0x23 && l.ch <= 0x5B) ||
			(l.ch >= 0x5D && l.ch <= 0x7E) || (l.ch >= 0x80 && l.ch <= 0x10FFFD):
			l.readChar()
		case l.ch == '\\':
			l.readChar()
			if (l.ch >= 0x20 && l.ch <= 0x7E) || (l.ch >= 0x80 && l.ch <= 0x10FFFD) {
				l.readChar()
			} else {
				return "", l.tokenError("invalid escape character in text string")
			}
		case l.ch == 0x0A:
			l.readChar()
		case l.ch == 0x0D && l.peekChar() == 0x0A:
			l.readChar()
			l.readChar()
		default:
			return "", l.tokenError("invalid text string")
		}
	}
	return string(l.input[position+1 : l.position]), nil
}

func (l *Lexer) readBytesString() (string, error) {
	position := l.position
	l.readChar() // eat opening '
	for l.ch != '\'' {
		switch {
		case (l.ch >= 0x20 && l.ch <= 0x26) || (l.ch >= 0x28 && l.ch <= 0x5B) ||
			(l.ch >= 0x5D && l.ch <= 0x10FFFD):
			l.readChar()
		case l.ch == '\\':
			l.readChar()
			if (l.ch >= 0x20 && l.ch <= 0x7E) || (l.ch >= 0x80 && l.ch <= 0x10FFFD) {
				l.readChar()
			} else {
				return "", l.tokenError("invalid escape character in byte string")
			}
		case l.ch == 0x0A:
			l.readChar()
		case l.ch == 0x0D && l.peekChar() == 0x0A:
			l.readChar()
			l.readChar()
		default:
			return "", l.tokenError("invalid byte string")
		}
	}
	return string(l.input[position+1 : l.position]), nil
}

// readNumberOrFloat reads a NUMBER or FLOAT literal (decimal, hex, or
// binary), stopping one character early when it detects the literal is
// actually immediately followed by a range operator (`..` or `...`), so
// `0..10` lexes as NUMBER("0") INCLRANGE NUMBER("10") rather than
// swallowing the first dot into a malformed float.
func (l *Lexer) readNumberOrFloat() (string, error) {
	position := l.position
	dotFound := false

	if l.ch == '-' {
		l.readChar()
	}

	if l.ch == '0' {
		l.readChar()
		switch {
		case l.ch == 'x':
			l.readChar()
			if !isHexDigit(l.ch) {
				return "", l.tokenError("hex number detected but no hex digit found")
			}
			for isHexDigit(l.ch) {
				l.readChar()
			}
			if l.ch == '.' {
				dotFound = true
				if l.peekChar() == '.' {
					return string(l.input[position:l.position]), nil
				}
				l.readChar()
				for isHexDigit(l.ch) {
					l.readChar()
				}
			}
			if dotFound && l.ch != 'p' {
				return "", l.tokenError("hex number with fraction detected but no exponent found")
			}
			if l.ch == 'p' {
				l.readChar()
				if l.ch == '+' || l.ch == '-' {
					l.readChar()
				}
				if !isDigit(l.ch) {
					return "", l.tokenError("hex number with exponent detected but no digit found for exponent")
				}
				for isDigit(l.ch) {
					l.readChar()
				}
			}
		case l.ch == 'b':
			l.readChar()
			if l.ch != '0' && l.ch != '1' {
				return "", l.tokenError("binary number detected but no binary digit found")
			}
			for l.ch == '0' || l.ch == '1' {
				l.readChar()
			}
		case l.ch == '.':
			if l.peekChar() == '.' {
				return string(l.input[position:l.position]), nil
			}
			l.readChar()
			if !isDigit(l.ch) {
				return "", l.tokenError("number with fraction detected but no digit found in fraction")
			}
			for isDigit(l.ch) {
				l.readChar()
			}
			if l.ch == 'e' {
				l.readChar()
				if l.ch == '+' || l.ch == '-' {
					l.readChar()
				}
				if !isDigit(l.ch) {
					return "", l.tokenError("number with exponent detected but no digit found in exponent")
				}
				for isDigit(l.ch) {
					l.readChar()
				}
			}
		default:
			// Number is zero; the next character belongs to another token.
		}
	} else {
		for isDigit(l.ch) {
			l.readChar()
		}
		if l.ch == '.' {
			if l.peekChar() == '.' {
				return string(l.input[position:l.position]), nil
			}
			l.readChar()
			if !isDigit(l.ch) {
				return "", l.tokenError("number with fraction detected but no digit found in fraction")
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
		if l.ch == 'e' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if !isDigit(l.ch) {
				return "", l.tokenError("number with exponent detected but no digit found in exponent")
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	return string(l.input[position:l.position]), nil
}

func (l *Lexer) readWhitespace() string {
	position := l.position
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

// readComments absorbs every whitespace-run/comment pair preceding the
// next real token. A final whitespace run with no comment after it is
// returned as the token's own leading whitespace rather than appended to
// comments, matching how Token.Serialize reconstructs source text.
func (l *Lexer) readComments() (comments []ast.Token, whitespace string) {
	for {
		ws := l.readWhitespace()
		if l.ch != ';' {
			if ws != "" {
				whitespace = ws
			}
			return comments, whitespace
		}
		comments = append(comments, ast.Token{Kind: ast.COMMENT, Literal: l.readComment(), Whitespace: ws})
	}
}
