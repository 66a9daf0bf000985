package ast

// CDDLTree is the root of a parsed CDDL document: an ordered list of
// Rules, plus whatever comments and whitespace trail the final rule
// before end of file.
type CDDLTree struct {
	base

	Rules []*Rule
	eof   Token
}

// NewCDDLTree builds a tree from its rules and the EOF token the lexer
// produced, which carries any trailing comments/whitespace as its leading
// trivia.
func NewCDDLTree(rules []*Rule, eof Token) *CDDLTree {
	t := &CDDLTree{Rules: rules, eof: eof}
	setParents(t)
	return t
}

func (t *CDDLTree) Children() []Node {
	out := make([]Node, len(t.Rules))
	for i, r := range t.Rules {
		out[i] = r
	}
	return out
}

// Serialize reproduces the tree's exact source text. A nil Marker
// reproduces the original input byte for byte (P1); passing a Marker
// lets the output be annotated without perturbing it (P5 when the
// marker is ast.NoopMarker).
func (t *CDDLTree) Serialize(m Marker) string {
	var body string
	for _, r := range t.Rules {
		body += r.Serialize(m)
	}
	body += serializeToken(t.eof, t, m)
	return applyMarkup(t, m, body)
}

// RuleByName returns the first rule named name, or nil if none match.
// Because `/=` and `//=` extend a prior definition rather than replacing
// it, a name may legitimately own more than one Rule.
func (t *CDDLTree) RuleByName(name string) *Rule {
	for _, r := range t.Rules {
		if r.Name.Name() == name {
			return r
		}
	}
	return nil
}

// RulesByName returns every Rule sharing name, in source order.
func (t *CDDLTree) RulesByName(name string) []*Rule {
	var out []*Rule
	for _, r := range t.Rules {
		if r.Name.Name() == name {
			out = append(out, r)
		}
	}
	return out
}
