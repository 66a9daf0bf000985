package ast

// Rule is one top-level definition: `name = value`, `name /= value` (a
// type-choice extension), or `name //= value` (a group-choice extension).
// Name carries any generic parameters itself. Rule's leading trivia is
// whatever Name already carries; it has no separator of its own; rules
// simply follow one another in source order.
type Rule struct {
	base

	Name        *Typename
	assignToken Token
	// IsTypeRule is set by NewRule and updated by SetValue when the
	// classifier converts a rule: true when Value is a *Type, false when
	// Value is a *GroupEntry.
	IsTypeRule bool
	Value      Node
}

// NewRule builds a Rule from its parsed pieces. assign is the ASSIGN,
// TCHOICEALT, or GCHOICEALT token.
func NewRule(name *Typename, assign Token, value Node) *Rule {
	_, isType := value.(*Type)
	return &Rule{Name: name, assignToken: assign, Value: value, IsTypeRule: isType}
}

// IsChoiceAddition reports whether this rule extends a previously defined
// name (`/=` or `//=`) rather than defining it for the first time (`=`).
func (r *Rule) IsChoiceAddition() bool {
	return r.assignToken.Kind == TCHOICEALT || r.assignToken.Kind == GCHOICEALT
}

// IsTypeChoiceAddition reports whether this rule uses `/=`, which always
// signals that Name is a typename.
func (r *Rule) IsTypeChoiceAddition() bool { return r.assignToken.Kind == TCHOICEALT }

// IsGroupChoiceAddition reports whether this rule uses `//=`, which always
// signals that Name is a groupname.
func (r *Rule) IsGroupChoiceAddition() bool { return r.assignToken.Kind == GCHOICEALT }

// IsPlainAssign reports whether this rule uses a plain `=`.
func (r *Rule) IsPlainAssign() bool { return r.assignToken.Kind == ASSIGN }

// SetValue replaces Value, used by the classifier when it determines a
// rule parsed as a GroupEntry is really a type definition and unwraps the
// entry down to its inner Type.
func (r *Rule) SetValue(v Node) {
	r.Value = v
	if v != nil {
		v.setParent(r)
	}
	_, r.IsTypeRule = v.(*Type)
}

func (r *Rule) Children() []Node {
	out := []Node{r.Name}
	if r.Value != nil {
		out = append(out, r.Value)
	}
	return out
}

func (r *Rule) Serialize(m Marker) string {
	body := r.Name.Serialize(m)
	body += serializeToken(r.assignToken, r, m)
	if r.Value != nil {
		body += r.Value.Serialize(m)
	}
	return applyMarkup(r, m, body)
}
