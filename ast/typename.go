package ast

// Typename is a reference to a rule name, either a prelude type (§4.3's
// closed PreludeTypes set) or a rule defined elsewhere in the tree. As a
// rule's own name (a "definition" typename) it may carry
// GenericParameters; as a reference to a generic rule it may carry
// GenericArguments instead — never both. Either list must abut the name
// with no intervening whitespace or comment (RFC 8610 §3.8). A leading
// `~` (unwrap) token, when present, precedes even the name's own leading
// trivia: it is itself a separate token with its own embedded comments
// and whitespace.
type Typename struct {
	base
	trivia

	unwrapToken *Token
	token       Token

	GenericParameters *GenericParameters
	GenericArguments  *GenericArguments
}

// NewTypename builds a Typename from its name token. unwrap is non-nil
// for the `~ typename` unwrap production.
func NewTypename(unwrap *Token, tok Token) *Typename {
	t := &Typename{unwrapToken: unwrap, token: tok}
	t.setLeading(tok)
	return t
}

// Name returns the bare identifier, without leading trivia or generics.
func (t *Typename) Name() string { return t.token.Literal }

func (t *Typename) Children() []Node {
	if t.GenericParameters != nil {
		return []Node{t.GenericParameters}
	}
	if t.GenericArguments != nil {
		return []Node{t.GenericArguments}
	}
	return nil
}

func (t *Typename) Serialize(m Marker) string {
	var body string
	if t.unwrapToken != nil {
		body += serializeToken(*t.unwrapToken, t, m)
	}
	body += t.serializeLeading(t, m)
	if m == nil {
		body += t.token.Literal
	} else {
		body += m.SerializeName(t.token.Literal, t)
	}
	if t.GenericParameters != nil {
		body += t.GenericParameters.Serialize(m)
	}
	if t.GenericArguments != nil {
		body += t.GenericArguments.Serialize(m)
	}
	body += t.serializeSeparator(t, m)
	return applyMarkup(t, m, body)
}
