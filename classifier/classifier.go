// Package classifier resolves the one ambiguity the grammar leaves in a
// parsed CDDL document: a rule written `name = ...` could define either a
// type or a group, and nothing at the rule itself settles the question.
// Classify looks at the whole tree at once, the way a reader would, and
// decides.
package classifier

import (
	"fmt"
	"strings"

	"github.com/tidoust/cddlparser/ast"
	"github.com/tidoust/cddlparser/reporter"
)

// Classify partitions tree's rule names into disjoint typenames and
// groupnames sets and converts every rule's GroupEntry value to a bare
// Type once it is known to define a type. It mutates tree in place and
// must run exactly once, after the whole document has been parsed: a
// rule's classification can depend on rules defined anywhere else in the
// tree, including ones that appear later in the source.
func Classify(tree *ast.CDDLTree) error {
	rulenames := map[string]bool{}
	typenames := map[string]bool{}
	groupnames := map[string]bool{}

	// checkUnderlyingType reports whether a Type1 node signals a type or a
	// group rule when it appears as an alternative of a plain "=" rule that
	// is not yet classified. A
	// Value, Map, Array, ChoiceFrom, or Tag can only ever be a type. A
	// Typename defers to whichever set its name already belongs to.
	var checkUnderlyingType func(n ast.Node) string
	checkUnderlyingType = func(n ast.Node) string {
		switch v := n.(type) {
		case *ast.Value, *ast.Map, *ast.Array, *ast.ChoiceFrom, *ast.Tag:
			return "type"
		case *ast.Range:
			return checkUnderlyingType(v.Min)
		case *ast.Operator:
			return checkUnderlyingType(v.Target)
		case *ast.Typename:
			name := v.Name()
			if typenames[name] || ast.PreludeTypes[name] {
				return "type"
			}
			if groupnames[name] {
				return "group"
			}
		}
		return "unknown"
	}

	// First pass: rules that obviously must be a type or group definition
	// on their own, without looking at what any other rule resolves to.
	for _, rule := range tree.Rules {
		name := rule.Name.Name()
		rulenames[name] = true

		// The first rule in a document is always a type definition (RFC
		// 8610 §2.2.4); later checks in this function may still reject the
		// tree if that rule is also unambiguously written as a group.
		if len(typenames) == 0 {
			typenames[name] = true
		}

		// The parser already produced a Type when "/=" was used.
		if _, ok := rule.Value.(*ast.Type); ok {
			typenames[name] = true
			continue
		}
		entry, ok := rule.Value.(*ast.GroupEntry)
		if !ok {
			return reporter.ClassifyError(fmt.Sprintf("rule %q has neither a type nor a group entry value", name))
		}

		if rule.IsTypeChoiceAddition() {
			typenames[name] = true
		}
		if rule.IsGroupChoiceAddition() {
			groupnames[name] = true
		}

		// Unparenthesized alternate choices can only be a type choice list.
		if len(entry.Value.Choices) > 1 && !entry.Value.IsWrapped() {
			typenames[name] = true
		}

		// An occurrence or a member key can only belong to a group entry.
		if entry.Occurrence != nil {
			groupnames[name] = true
		}
		if entry.Memberkey != nil {
			groupnames[name] = true
		}
	}

	// A typename used as an arrow-form member key (RFC 8610 §2.1.2) names a
	// type, regardless of how its own rule would otherwise classify.
	ast.LookForKeys(tree, func(tn *ast.Typename) {
		if rulenames[tn.Name()] {
			typenames[tn.Name()] = true
		}
	})

	// Propagate classification along references until a full pass makes no
	// further progress: a rule referencing a known type (resp. group) rule
	// is itself a type (resp. group) rule, and so is a rule whose sole "="
	// alternative resolves, transitively, to one kind only. A rule whose
	// alternatives resolve to both kinds is invalid.
	updateFound := true
	for updateFound {
		updateFound = false
		for _, rule := range tree.Rules {
			name := rule.Name.Name()

			if typ, ok := rule.Value.(*ast.Type); ok {
				for _, c := range typ.Choices {
					if tn, ok := c.(*ast.Typename); ok && rulenames[tn.Name()] && !typenames[tn.Name()] {
						typenames[tn.Name()] = true
						updateFound = true
					}
				}
				continue
			}

			entry := rule.Value.(*ast.GroupEntry)

			if typenames[name] {
				for _, c := range entry.Value.Choices {
					if tn, ok := c.(*ast.Typename); ok && rulenames[tn.Name()] && !typenames[tn.Name()] {
						typenames[tn.Name()] = true
						updateFound = true
					}
				}
			}
			if groupnames[name] {
				// There should be one and only one choice here in practice.
				for _, c := range entry.Value.Choices {
					if tn, ok := c.(*ast.Typename); ok && rulenames[tn.Name()] && !groupnames[tn.Name()] {
						groupnames[tn.Name()] = true
						updateFound = true
					}
				}
			}

			if rule.IsPlainAssign() && !typenames[name] && !groupnames[name] {
				sawType, sawGroup := false, false
				for _, c := range entry.Value.Choices {
					switch checkUnderlyingType(c) {
					case "type":
						sawType = true
					case "group":
						sawGroup = true
					}
				}
				if sawType && sawGroup {
					return reporter.ClassifyError(fmt.Sprintf("rule %q targets a mix of type and group rules", name))
				}
				if sawType && !typenames[name] {
					typenames[name] = true
					updateFound = true
				} else if sawGroup && !groupnames[name] {
					groupnames[name] = true
					updateFound = true
				}
			}
		}
	}

	var overlap []string
	for n := range typenames {
		if groupnames[n] {
			overlap = append(overlap, n)
		}
	}
	if len(overlap) > 0 {
		return reporter.ClassifyError(fmt.Sprintf("mix of type and group definitions for %s", strings.Join(overlap, ", ")))
	}

	// Convert GroupEntry to Type for rules now known to define a type.
	for _, rule := range tree.Rules {
		if _, ok := rule.Value.(*ast.Type); ok {
			continue
		}
		entry := rule.Value.(*ast.GroupEntry)
		name := rule.Name.Name()
		if !typenames[name] {
			continue
		}
		if !entry.IsConvertibleToType() {
			return reporter.ClassifyError(fmt.Sprintf("rule %q is a type definition but uses a group entry", name))
		}
		rule.SetValue(entry.Value)
	}

	return nil
}
