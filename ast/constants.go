package ast

// ControlOperators is the closed set of control-operator names the parser
// accepts after a `.`. It combines the operators from the main CDDL
// specification, RFC 9165, and the pcre extension proposed in the CDDL
// freezer draft.
var ControlOperators = map[string]bool{
	// RFC 8610.
	"and":     true,
	"bits":    true,
	"cbor":    true,
	"cborseq": true,
	"default": true,
	"eq":      true,
	"ge":      true,
	"gt":      true,
	"le":      true,
	"lt":      true,
	"ne":      true,
	"regexp":  true,
	"size":    true,
	"within":  true,
	// RFC 9165.
	"plus":    true,
	"cat":     true,
	"det":     true,
	"abnf":    true,
	"abnfb":   true,
	"feature": true,
	// CDDL freezer draft.
	"pcre": true,
}

// PreludeTypes is the closed set of type names RFC 8610 Appendix D
// predeclares. A rule whose right-hand side references one of these is
// always a type definition.
var PreludeTypes = map[string]bool{
	"any":          true,
	"uint":         true,
	"nint":         true,
	"int":          true,
	"bstr":         true,
	"bytes":        true,
	"tstr":         true,
	"text":         true,
	"tdate":        true,
	"time":         true,
	"number":       true,
	"biguint":      true,
	"bignint":      true,
	"bigint":       true,
	"integer":      true,
	"unsigned":     true,
	"decfrac":      true,
	"bigfloat":     true,
	"eb64url":      true,
	"eb64legacy":   true,
	"eb16":         true,
	"encoded-cbor": true,
	"uri":          true,
	"b64url":       true,
	"b64legacy":    true,
	"regexp":       true,
	"mime-message": true,
	"cbor-any":     true,
	"float16":      true,
	"float32":      true,
	"float64":      true,
	"float16-32":   true,
	"float32-64":   true,
	"float":        true,
	"false":        true,
	"true":         true,
	"bool":         true,
	"nil":          true,
	"null":         true,
	"undefined":    true,
}
