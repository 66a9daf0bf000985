package cddlparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cddlparser "github.com/tidoust/cddlparser"
	"github.com/tidoust/cddlparser/ast"
)

// roundtrips are CDDL snippets that must serialize back to themselves
// exactly, byte for byte, once parsed (invariant P1).
var roundtrips = []string{
	`message = tstr`,
	`message = { name: tstr, age: uint }`,
	"message = { name: tstr, age: uint }\n",
	`numbers = [* uint]`,
	`pair = [a: tstr, b: tstr]`,
	"root = tstr\nbounded = 1*10 tstr",
	"root = tstr\nopt = ? tstr",
	"root = tstr\nmany = + tstr",
	"root = tstr\ncapped = *5 tstr",
	`choice = tstr / uint / bstr`,
	`range1 = 0..10`,
	`range2 = 0...10`,
	`ctl = uint .size 4`,
	`tagged = #6.32(tstr)`,
	`bare-tag = #`,
	`major = #3`,
	`generic<T> = [* T]`,
	`use = generic<uint>`,
	`unwrapped = ~other`,
	`fromgroup = &othergroup`,
	`frominline = &(a: tstr, b: tstr)`,
	"; a leading comment\nmessage = tstr ; trailing comment\n",
	"spaced   =    tstr   ; note the spacing\n",
	`hexval = h'0123456789abcdef'`,
	`b64val = b64'SGVsbG8h'`,
	`neg = -12`,
	`flt = 1.5`,
	`hexflt = 0x1.8p3`,
	`choiceadd = tstr`,
	"choiceadd /= uint\n",
	"root = tstr\ngroupbase = (a: tstr)\ngroupbase //= (b: uint)\n",
	`map-choice = { (a: tstr) // (b: uint) }`,
	`wrapped = (tstr)`,
	`group-entry = [* (a: tstr, b: uint)]`,
}

func TestParseRoundtrip(t *testing.T) {
	t.Parallel()
	for _, source := range roundtrips {
		source := source
		t.Run(source, func(t *testing.T) {
			t.Parallel()
			tree, err := cddlparser.Parse(source)
			require.NoError(t, err)
			assert.Equal(t, source, tree.Serialize(nil))
		})
	}
}

// TestParseSerializeWithNoopMarkerMatchesNilMarker exercises P5 (markup
// transparency): a Marker that adds no markup of its own must be
// indistinguishable from passing no Marker at all.
func TestParseSerializeWithNoopMarkerMatchesNilMarker(t *testing.T) {
	t.Parallel()
	for _, source := range roundtrips {
		source := source
		t.Run(source, func(t *testing.T) {
			t.Parallel()
			tree, err := cddlparser.Parse(source)
			require.NoError(t, err)
			assert.Equal(t, tree.Serialize(nil), tree.Serialize(ast.NoopMarker{}))
		})
	}
}

func TestParseClassifiesFirstRuleAsType(t *testing.T) {
	tree, err := cddlparser.Parse(`person = { name: tstr }`)
	require.NoError(t, err)
	rule := tree.RuleByName("person")
	require.NotNil(t, rule)
	assert.True(t, rule.IsTypeRule)
}

func TestParseClassifiesGroupOnlyDefinition(t *testing.T) {
	tree, err := cddlparser.Parse(`
		person = { identity, employer: tstr }
		identity = (name: tstr)
	`)
	require.NoError(t, err)
	identity := tree.RuleByName("identity")
	require.NotNil(t, identity)
	assert.False(t, identity.IsTypeRule)
}

func TestParseRejectsMixedTypeAndGroupTargets(t *testing.T) {
	_, err := cddlparser.Parse(`
		person = { identity, employer: tstr }
		identity = (name: tstr)
		mixed = identity / tstr
	`)
	require.Error(t, err)
}

func TestParseReportsSyntaxError(t *testing.T) {
	_, err := cddlparser.Parse(`message = `)
	require.Error(t, err)
}

func TestParseUnknownControlOperator(t *testing.T) {
	_, err := cddlparser.Parse(`message = uint .bogus 4`)
	require.Error(t, err)
}

func TestParseRulesByName(t *testing.T) {
	tree, err := cddlparser.Parse("label = tstr\nlabel /= uint\n")
	require.NoError(t, err)
	rules := tree.RulesByName("label")
	assert.Len(t, rules, 2)
}
