package ast

import "reflect"

// Node is implemented by every element of the tree. It exposes enough
// structure for a Marker to adapt its output to context (via Parent) and for
// generic tree walkers (Children) without needing a type switch over every
// concrete node.
type Node interface {
	// Serialize renders this node's exact source text. A nil Marker produces
	// byte-for-byte original input.
	Serialize(m Marker) string
	// Children returns this node's direct descendants, in source order.
	Children() []Node
	// Parent returns the node's container, or nil for the tree root or for
	// a node whose parent link has not yet been established.
	Parent() Node

	setParent(Node)
}

// base gives every concrete node type a non-owning back-reference to its
// container. The owning direction is strictly parent to child; this link
// exists purely so a Marker can inspect context.
type base struct {
	parent Node
}

func (b *base) Parent() Node     { return b.parent }
func (b *base) setParent(p Node) { b.parent = p }

// wrap holds the optional open/close bracket tokens of a Wrapped node, e.g.
// the parentheses around a parenthesized type, or the angle brackets of a
// generic parameter/argument list.
type wrap struct {
	openToken  *Token
	closeToken *Token
}

func (w *wrap) serializeOpen(self Node, m Marker) string {
	if w.openToken == nil {
		return ""
	}
	return serializeToken(*w.openToken, self, m)
}

func (w *wrap) serializeClose(self Node, m Marker) string {
	if w.closeToken == nil {
		return ""
	}
	return serializeToken(*w.closeToken, self, m)
}

// SetOpen records tok as this node's opening bracket token. The parser
// consumes the open token first and calls this once the body that
// follows has been parsed and the node built (e.g. after parsing the
// type inside `(`).
func (w *wrap) SetOpen(tok Token) { w.openToken = &tok }

// SetClose records tok as this node's closing bracket token.
func (w *wrap) SetClose(tok Token) { w.closeToken = &tok }

// IsWrapped reports whether this node carries its own open bracket token,
// as opposed to appearing bare (e.g. a Type of more than one choice with
// no surrounding parentheses, or a Group nested directly inside a Map's
// braces rather than its own parentheses).
func (w *wrap) IsWrapped() bool { return w.openToken != nil }

// trivia holds the bookkeeping shared by token-bearing nodes: the
// comments/whitespace that precede the node, and the optional separator
// token (a list comma, a "/" between type alternatives, a "//" between
// group choices) that follows it.
type trivia struct {
	comments   []Token
	whitespace string
	separator  *Token
}

// setLeading copies the comments and whitespace carried by tok, which is
// normally the first token consumed while parsing this node.
func (t *trivia) setLeading(tok Token) {
	t.comments = tok.Comments
	t.whitespace = tok.Whitespace
}

func (t *trivia) serializeLeading(self Node, m Marker) string {
	var out string
	for _, c := range t.comments {
		out += serializeToken(c, self, m)
	}
	out += t.whitespace
	return out
}

func (t *trivia) serializeSeparator(self Node, m Marker) string {
	if t.separator == nil {
		return ""
	}
	return serializeToken(*t.separator, self, m)
}

// SetSeparator records tok as the token that follows this node in its
// containing list: a comma between group entries, or a `/`/`//` between
// type/group choices. The parser calls this after building the node,
// once it has peeked the token that follows it.
func (t *trivia) SetSeparator(tok Token) { t.separator = &tok }

// serializeToken routes a token through the marker, if any, else falls back
// to the token's own canonical serialization.
func serializeToken(tok Token, node Node, m Marker) string {
	if m == nil {
		return tok.Serialize()
	}
	return m.SerializeToken(tok, node)
}

// setParents walks the tree rooted at n, assigning every child's parent
// pointer to its container. It must run once after parsing (or after any
// manual tree surgery) and before relying on Node.Parent.
func setParents(n Node) {
	for _, c := range n.Children() {
		if c == nil {
			continue
		}
		c.setParent(n)
		setParents(c)
	}
}

// IsNil reports whether a Node interface value holds a typed nil pointer, a
// condition Children() can otherwise turn into a non-nil-looking interface.
// Generic over every concrete node type, so a node kind added later is
// covered without needing a new case here.
func IsNil(n Node) bool {
	return n == nil || reflect.ValueOf(n).IsNil()
}
