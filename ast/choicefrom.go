package ast

// ChoiceFrom is a Type2 of the form `& groupname` or `& ( group )`: a
// choice constructed from the values of a named group or an inline one.
// It is token-bearing: the leading trivia belongs to its own `&` token,
// and it carries a trailing `/` separator when it is itself one
// alternative of a Type choice.
type ChoiceFrom struct {
	base
	trivia

	Target Node // *Typename or *Group
}

// NewChoiceFrom builds a ChoiceFrom from its `&` token (whose comments and
// whitespace become the node's own leading trivia) and target.
func NewChoiceFrom(amp Token, target Node) *ChoiceFrom {
	c := &ChoiceFrom{Target: target}
	c.setLeading(amp)
	return c
}

func (c *ChoiceFrom) Children() []Node {
	if c.Target == nil {
		return nil
	}
	return []Node{c.Target}
}

func (c *ChoiceFrom) Serialize(m Marker) string {
	body := c.serializeLeading(c, m)
	body += serializeToken(Token{Kind: AMPERSAND}, c, m)
	if c.Target != nil {
		body += c.Target.Serialize(m)
	}
	body += c.serializeSeparator(c, m)
	return applyMarkup(c, m, body)
}
