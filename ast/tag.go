package ast

import "strings"

// Tag is a Type2 of the form `#`, `#6`, `#6.31`, or `#6.32(tstr)`: a CBOR
// major-type/tag-number annotation, optionally parameterized with the
// type of its content. The lexer produces the numeric part (when present)
// as a single NUMBER or FLOAT token, e.g. "6" or "6.31". Content, when
// present, already carries its own parentheses as its own wrap tokens
// (it is parsed as a full Type2 in its own right). Tag is token-bearing:
// its leading trivia is whatever its own `#` token carried.
type Tag struct {
	base
	trivia

	Number  *Token // nil for a bare "#"
	Content *Type  // nil when there is no "(" type ")" suffix

	Major, Minor int // -1 when absent
}

// NewTag builds a Tag from its `#` token and optional numeric/content
// parts.
func NewTag(hash Token, number *Token, content *Type) *Tag {
	t := &Tag{Number: number, Content: content}
	t.setLeading(hash)
	t.Major, t.Minor = -1, -1
	if number != nil {
		major, minor := splitTagNumber(number.Literal)
		t.Major, t.Minor = major, minor
	}
	return t
}

// splitTagNumber parses a tag's numeric literal ("6" or "6.31") into its
// major and minor components; minor is -1 when absent.
func splitTagNumber(lit string) (major, minor int) {
	major, minor = -1, -1
	dot := strings.IndexByte(lit, '.')
	if dot < 0 {
		major = parseUintLiteral(lit)
		return
	}
	major = parseUintLiteral(lit[:dot])
	minor = parseUintLiteral(lit[dot+1:])
	return
}

// parseUintLiteral parses a decimal digit run as a non-negative int,
// returning -1 if it does not fit.
func parseUintLiteral(lit string) int {
	if lit == "" {
		return -1
	}
	n := 0
	for _, r := range lit {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func (t *Tag) Children() []Node {
	if t.Content == nil {
		return nil
	}
	return []Node{t.Content}
}

func (t *Tag) Serialize(m Marker) string {
	body := t.serializeLeading(t, m)
	body += serializeToken(Token{Kind: HASH}, t, m)
	if t.Number != nil {
		body += serializeToken(*t.Number, t, m)
	}
	if t.Content != nil {
		body += t.Content.Serialize(m)
	}
	body += t.serializeSeparator(t, m)
	return applyMarkup(t, m, body)
}
