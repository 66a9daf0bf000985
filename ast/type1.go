package ast

// Range is a Type1 of the form `Type2 .. Type2` (Inclusive) or
// `Type2 ... Type2` (exclusive upper bound). It is token-bearing: the
// leading trivia is Min's own, and it carries the trailing `/` separator
// when it is itself one alternative of a Type choice.
type Range struct {
	base
	trivia

	Min, Max  Node
	Inclusive bool
	opToken   Token // INCLRANGE or EXCLRANGE
}

// NewRange builds a Range from its bounds and the `..`/`...` token between
// them.
func NewRange(min Node, op Token, max Node) *Range {
	return &Range{Min: min, Max: max, Inclusive: op.Kind == INCLRANGE, opToken: op}
}

func (r *Range) Children() []Node {
	var out []Node
	if r.Min != nil {
		out = append(out, r.Min)
	}
	if r.Max != nil {
		out = append(out, r.Max)
	}
	return out
}

func (r *Range) Serialize(m Marker) string {
	var body string
	if r.Min != nil {
		body += r.Min.Serialize(m)
	}
	body += serializeToken(r.opToken, r, m)
	if r.Max != nil {
		body += r.Max.Serialize(m)
	}
	body += r.serializeSeparator(r, m)
	return applyMarkup(r, m, body)
}

// Operator is a Type1 of the form `Type2 .name Type2Argument`, e.g.
// `uint .size 4` or `tstr .regexp "[a-z]+"`. Name is validated against
// ControlOperators by the parser before the node is built.
type Operator struct {
	base
	trivia

	Target   Node
	Name     string
	Argument Node
	ctlop    Token
}

// NewOperator builds an Operator from its target, the CTLOP token (whose
// Literal is the operator name), and its argument.
func NewOperator(target Node, ctlop Token, argument Node) *Operator {
	return &Operator{Target: target, Name: ctlop.Literal, Argument: argument, ctlop: ctlop}
}

func (o *Operator) Children() []Node {
	var out []Node
	if o.Target != nil {
		out = append(out, o.Target)
	}
	if o.Argument != nil {
		out = append(out, o.Argument)
	}
	return out
}

func (o *Operator) Serialize(m Marker) string {
	var body string
	if o.Target != nil {
		body += o.Target.Serialize(m)
	}
	body += serializeToken(o.ctlop, o, m)
	if o.Argument != nil {
		body += o.Argument.Serialize(m)
	}
	body += o.serializeSeparator(o, m)
	return applyMarkup(o, m, body)
}
