package ast

// ValueKind distinguishes the literal forms a Value can take.
type ValueKind int

const (
	// TextValue is a double-quoted string literal.
	TextValue ValueKind = iota
	// NumberValue is an integer literal (decimal, hex, or binary).
	NumberValue
	// FloatValue is a floating-point literal.
	FloatValue
	// BytesValue is a single-quoted byte string literal.
	BytesValue
	// HexValue is a `h'...'` byte string literal, hex-encoded.
	HexValue
	// Base64Value is a `b64'...'` byte string literal, base64url-encoded.
	Base64Value
)

// Value is a literal appearing in a Type2 position: a quoted string,
// a number, a float, or a byte string in one of its three spellings.
// It is a token-bearing, plain node: its entire serialization is its own
// leading trivia plus its literal token plus its trailing separator.
type Value struct {
	base
	trivia

	Kind    ValueKind
	token   Token
}

// NewValue builds a Value from the token the lexer produced for it. The
// token's Kind determines ValueKind.
func NewValue(tok Token) *Value {
	v := &Value{token: tok}
	v.setLeading(tok)
	switch tok.Kind {
	case STRING:
		v.Kind = TextValue
	case NUMBER:
		v.Kind = NumberValue
	case FLOAT:
		v.Kind = FloatValue
	case BYTES:
		v.Kind = BytesValue
	case HEX:
		v.Kind = HexValue
	case BASE64:
		v.Kind = Base64Value
	}
	return v
}

// Literal returns the raw payload of the value token, without its quoting.
func (v *Value) Literal() string { return v.token.Literal }

func (v *Value) Children() []Node { return nil }

func (v *Value) Serialize(m Marker) string {
	body := v.serializeValueToken(m)
	body += v.serializeSeparator(v, m)
	return applyMarkup(v, m, body)
}

func (v *Value) serializeValueToken(m Marker) string {
	if m == nil {
		return v.token.Serialize()
	}
	leading := v.serializeLeading(v, m)
	prefix, suffix := valueQuoting(v.token.Kind)
	return leading + m.SerializeValue(prefix, v.token.Literal, suffix, v)
}

func valueQuoting(k Kind) (prefix, suffix string) {
	switch k {
	case STRING:
		return `"`, `"`
	case BYTES:
		return "'", "'"
	case HEX:
		return "h'", "'"
	case BASE64:
		return "b64'", "'"
	default:
		return "", ""
	}
}
