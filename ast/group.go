package ast

// GroupChoice is one `,`-separated sequence of group entries; a Group is
// one or more GroupChoices separated by `//`. Its entries already carry
// their own leading trivia and trailing comma separators; GroupChoice
// itself adds only its own trailing `//` separator, when another choice
// follows.
type GroupChoice struct {
	base
	trivia

	Entries []*GroupEntry
}

func (c *GroupChoice) Children() []Node {
	out := make([]Node, len(c.Entries))
	for i, e := range c.Entries {
		out[i] = e
	}
	return out
}

func (c *GroupChoice) Serialize(m Marker) string {
	body := c.serializeLeading(c, m)
	for _, e := range c.Entries {
		body += e.Serialize(m)
	}
	body += c.serializeSeparator(c, m)
	return applyMarkup(c, m, body)
}

// Group is a `//`-separated list of GroupChoice alternatives. Bare (used
// as a Type2 via `(` group `)`), it is Wrapped with optional parentheses;
// as the body of a Map or Array those types supply their own `{}`/`[]`
// wrapping instead and leave Group's own wrap empty.
type Group struct {
	base
	wrap
	trivia

	Choices []*GroupChoice
}

func (g *Group) Children() []Node {
	out := make([]Node, len(g.Choices))
	for i, c := range g.Choices {
		out[i] = c
	}
	return out
}

func (g *Group) Serialize(m Marker) string {
	body := g.serializeLeading(g, m)
	body += g.serializeOpen(g, m)
	for _, c := range g.Choices {
		body += c.Serialize(m)
	}
	body += g.serializeClose(g, m)
	body += g.serializeSeparator(g, m)
	return applyMarkup(g, m, body)
}

// Map is `{` group `}`: a group used where a CBOR map's structure is
// described.
type Map struct {
	base
	wrap
	trivia

	Group *Group
}

func (m *Map) Children() []Node {
	if m.Group == nil {
		return nil
	}
	return []Node{m.Group}
}

func (mp *Map) Serialize(m Marker) string {
	body := mp.serializeLeading(mp, m)
	body += mp.serializeOpen(mp, m)
	if mp.Group != nil {
		body += mp.Group.Serialize(m)
	}
	body += mp.serializeClose(mp, m)
	body += mp.serializeSeparator(mp, m)
	return applyMarkup(mp, m, body)
}

// Array is `[` group `]`: a group used where a CBOR array's structure is
// described.
type Array struct {
	base
	wrap
	trivia

	Group *Group
}

func (a *Array) Children() []Node {
	if a.Group == nil {
		return nil
	}
	return []Node{a.Group}
}

func (a *Array) Serialize(m Marker) string {
	body := a.serializeLeading(a, m)
	body += a.serializeOpen(a, m)
	if a.Group != nil {
		body += a.Group.Serialize(m)
	}
	body += a.serializeClose(a, m)
	body += a.serializeSeparator(a, m)
	return applyMarkup(a, m, body)
}
