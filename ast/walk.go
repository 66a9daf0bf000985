package ast

// Visitor is called once for every node Walk visits, pre-order. Returning
// false skips that node's children; Walk still continues with the node's
// siblings.
type Visitor func(n Node) bool

// Walk traverses the tree rooted at n in source order, depth-first,
// calling v for every node including n itself.
func Walk(n Node, v Visitor) {
	if n == nil || IsNil(n) {
		return
	}
	if !v(n) {
		return
	}
	for _, c := range n.Children() {
		Walk(c, v)
	}
}

// Find returns the first node in the tree rooted at n for which match
// returns true, pre-order, or nil if none does.
func Find(n Node, match func(Node) bool) Node {
	var found Node
	Walk(n, func(cur Node) bool {
		if found != nil {
			return false
		}
		if match(cur) {
			found = cur
			return false
		}
		return true
	})
	return found
}

// LookForKeys walks n looking for Typename references that occur in a
// Memberkey position using the arrow form, e.g. the `foo` in `foo => bar`
// where foo may name a rule rather than a literal value (RFC 8610
// §2.1.2). A colon-form key (`foo: bar`) never counts, even when Key is
// syntactically a Typename, since a bareword colon key is always a
// literal label. The classifier uses this to mark the rules those
// typenames name as type definitions.
func LookForKeys(n Node, onKeyTypename func(*Typename)) {
	Walk(n, func(cur Node) bool {
		entry, ok := cur.(*GroupEntry)
		if !ok || entry.Memberkey == nil || entry.Memberkey.IsColon() {
			return true
		}
		if tn, ok := entry.Memberkey.Key.(*Typename); ok {
			onKeyTypename(tn)
		}
		return true
	})
}
