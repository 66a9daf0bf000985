package ast

// Memberkey is the `key:` or `key =>` prefix of a GroupEntry. Key is
// whatever Type1-position node preceded the separator: typically a Value
// (for a bareword or quoted-string key) or a Typename, but any Type1 is
// grammatically valid. Memberkey is a Plain node: its leading trivia is
// whatever its Key already carries, and it has no separator of its own
// (the comma after a GroupEntry belongs to the entry, not the key).
type Memberkey struct {
	base

	Key        Node
	Cut        bool
	caretToken *Token
	arrowToken Token // ":" (COLON) or "=>" (ARROWMAP)
}

// NewMemberkey builds a Memberkey. caret is non-nil only when an explicit
// `^` cut indicator preceded the arrow.
func NewMemberkey(key Node, caret *Token, arrow Token) *Memberkey {
	return &Memberkey{
		Key:        key,
		Cut:        caret != nil || arrow.Kind == COLON,
		caretToken: caret,
		arrowToken: arrow,
	}
}

// IsColon reports whether this key uses the `bareword S ":"` / `value S
// ":"` form rather than `type1 ["^"] "=>"`. A colon-form key is always a
// literal label, even when Key happens to be a Typename node (a bareword
// parses the same way a type reference does); only the arrow form lets a
// Typename key designate an actual type.
func (k *Memberkey) IsColon() bool { return k.arrowToken.Kind == COLON }

func (k *Memberkey) Children() []Node {
	if k.Key == nil {
		return nil
	}
	return []Node{k.Key}
}

func (k *Memberkey) Serialize(m Marker) string {
	var body string
	if k.Key != nil {
		body += k.Key.Serialize(m)
	}
	if k.caretToken != nil {
		body += serializeToken(*k.caretToken, k, m)
	}
	body += serializeToken(k.arrowToken, k, m)
	return applyMarkup(k, m, body)
}
