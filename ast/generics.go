package ast

// GenericParameters is the `<T, U>` parameter list following a rule name in
// a generic rule definition, e.g. `messages<T, U> = [* T => U]`. It is a
// Wrapped node: its open/close angle-bracket tokens carry no trivia of
// their own beyond what wrap.serializeOpen/Close already handles.
type GenericParameters struct {
	base
	wrap

	Parameters []*Typename
}

func (g *GenericParameters) Children() []Node {
	out := make([]Node, len(g.Parameters))
	for i, p := range g.Parameters {
		out[i] = p
	}
	return out
}

func (g *GenericParameters) Serialize(m Marker) string {
	body := g.serializeOpen(g, m)
	for _, p := range g.Parameters {
		body += p.Serialize(m)
	}
	body += g.serializeClose(g, m)
	return applyMarkup(g, m, body)
}

// GenericArguments is the `<uint, tstr>` argument list following a type
// reference to a generic rule, e.g. `messages<uint, tstr>`. Like
// GenericParameters it must directly abut the preceding identifier: the
// parser only reads a `<` as opening the list when that token has no
// leading whitespace or comment.
// Each argument is a bare Type1 (a Typename, Value, Range, Operator,
// parenthesized Type, Map, Array, ChoiceFrom, or Tag), not a full Type
// choice list;
// the comma between arguments is that Type1's own trailing separator.
type GenericArguments struct {
	base
	wrap

	Arguments []Node
}

func (g *GenericArguments) Children() []Node {
	out := make([]Node, len(g.Arguments))
	copy(out, g.Arguments)
	return out
}

func (g *GenericArguments) Serialize(m Marker) string {
	body := g.serializeOpen(g, m)
	for _, a := range g.Arguments {
		body += a.Serialize(m)
	}
	body += g.serializeClose(g, m)
	return applyMarkup(g, m, body)
}
