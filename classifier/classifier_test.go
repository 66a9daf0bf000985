package classifier_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidoust/cddlparser/classifier"
	"github.com/tidoust/cddlparser/parser"
)

// ruleShape is a trivia-free, exported projection of a classified tree: just
// enough to compare two trees structurally without tripping over the AST's
// unexported bookkeeping fields (parent links, trivia, bracket tokens).
type ruleShape struct {
	Name string
	Kind string
}

func classifiedShape(t *testing.T, source string) []ruleShape {
	t.Helper()
	p, err := parser.NewParser(source)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	shapes := make([]ruleShape, len(tree.Rules))
	for i, rule := range tree.Rules {
		kind := "group"
		if rule.IsTypeRule {
			kind = "type"
		}
		shapes[i] = ruleShape{Name: rule.Name.Name(), Kind: kind}
	}
	return shapes
}

func TestClassifyFirstRuleIsAlwaysAType(t *testing.T) {
	p, err := parser.NewParser(`lonegroup = (a: tstr)`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	rule := tree.RuleByName("lonegroup")
	require.NotNil(t, rule)
	assert.True(t, rule.IsTypeRule)
}

func TestClassifyGroupOnlyDefinition(t *testing.T) {
	p, err := parser.NewParser(`
		person = { identity, employer: tstr }
		identity = (name: tstr)
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	assert.True(t, tree.RuleByName("person").IsTypeRule)
	assert.False(t, tree.RuleByName("identity").IsTypeRule)
}

func TestClassifyExplicitGroupChoiceAddition(t *testing.T) {
	p, err := parser.NewParser("root = tstr\ngroupbase = (a: tstr)\ngroupbase //= (b: uint)\n")
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	assert.False(t, tree.RuleByName("groupbase").IsTypeRule)
}

func TestClassifyExplicitTypeChoiceAddition(t *testing.T) {
	p, err := parser.NewParser("choiceadd = tstr\nchoiceadd /= uint\n")
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	for _, rule := range tree.RulesByName("choiceadd") {
		assert.True(t, rule.IsTypeRule)
	}
}

func TestClassifyUnparenthesizedChoicesImplyType(t *testing.T) {
	p, err := parser.NewParser(`
		root = wrapper
		wrapper = tstr / uint
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	assert.True(t, tree.RuleByName("wrapper").IsTypeRule)
}

func TestClassifyOccurrenceImpliesGroup(t *testing.T) {
	p, err := parser.NewParser(`
		root = tstr
		repeated = * tstr
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	assert.False(t, tree.RuleByName("repeated").IsTypeRule)
}

func TestClassifyArrowKeyImpliesType(t *testing.T) {
	// "target" is forced into groupnames by its bare "a: tstr" form (a
	// member key with no enclosing group). Using it as an arrow-form key
	// elsewhere claims it as a type too, so the two must conflict.
	p, err := parser.NewParser(`
		root = { target => tstr }
		target = a: tstr
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)

	err = classifier.Classify(tree)
	require.Error(t, err)
}

func TestClassifyColonKeyDoesNotImplyType(t *testing.T) {
	// "label" is forced into groupnames by its bare "a: tstr" form. Using
	// it as a colon-form (bareword) key elsewhere must NOT also claim it
	// as a type, since a colon key is always a literal label.
	p, err := parser.NewParser(`
		root = { label: tstr }
		label = a: tstr
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	assert.False(t, tree.RuleByName("label").IsTypeRule)
}

func TestClassifyPropagatesThroughReferences(t *testing.T) {
	p, err := parser.NewParser(`
		root = wrapper
		wrapper = inner
		inner = tstr
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)
	require.NoError(t, classifier.Classify(tree))

	assert.True(t, tree.RuleByName("wrapper").IsTypeRule)
	assert.True(t, tree.RuleByName("inner").IsTypeRule)
}

func TestClassifyShapeIsIndependentOfFormatting(t *testing.T) {
	// Same rules, same references between them, but different comments and
	// whitespace throughout. Classification must resolve to the same
	// type/group shape regardless, since it reasons about the parsed tree,
	// not the source bytes.
	compact := `
		person = { identity, employer: tstr }
		identity = (name: tstr)
		title = identity / tstr
	`
	spaced := `
		; a record describing a person
		person   =   { identity ,   employer:   tstr }

		; identity, inlined into person above
		identity = ( name:   tstr )

		title    =   identity   /   tstr   ; identity used directly, or a bare string
	`

	diff := cmp.Diff(classifiedShape(t, compact), classifiedShape(t, spaced))
	assert.Empty(t, diff, "classified shape differs between formattings:\n%s", diff)
}

func TestClassifyRejectsMixedTypeAndGroupTargets(t *testing.T) {
	p, err := parser.NewParser(`
		person = { identity, employer: tstr }
		identity = (name: tstr)
		mixed = identity / tstr
	`)
	require.NoError(t, err)
	tree, err := p.Parse()
	require.NoError(t, err)

	err = classifier.Classify(tree)
	require.Error(t, err)
}
