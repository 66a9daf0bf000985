package parser

import (
	"fmt"
	"strings"

	"github.com/tidoust/cddlparser/ast"
	"github.com/tidoust/cddlparser/reporter"
)

// Parser turns a token stream into an ast.CDDLTree by recursive descent,
// with two tokens of lookahead. It does not decide which rules are type
// definitions versus group definitions; that happens in a later pass (see
// the classifier package) once the whole tree is available.
type Parser struct {
	lexer *Lexer

	curToken  ast.Token
	peekToken ast.Token
}

// NewParser creates a Parser over source and primes its two-token
// lookahead.
func NewParser(source string) (*Parser, error) {
	p := &Parser{lexer: NewLexer(source)}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance returns the current token and shifts the lookahead window
// forward by one.
func (p *Parser) advance() (ast.Token, error) {
	cur := p.curToken
	p.curToken = p.peekToken
	next, err := p.lexer.NextToken()
	if err != nil {
		return ast.Token{}, err
	}
	p.peekToken = next
	return cur, nil
}

func (p *Parser) parseError(message string) error {
	loc := p.lexer.getLocation()
	line := p.lexer.getLine(loc.line)
	return reporter.ParseError(loc.line+1, loc.column, line, message)
}

// Parse consumes every rule up to end of file and returns the tree. The
// final token, carrying any trailing comments and whitespace, is attached
// to the tree so serialization reproduces them.
func (p *Parser) Parse() (*ast.CDDLTree, error) {
	var rules []*ast.Rule
	for p.curToken.Kind != ast.EOF {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	eof, err := p.advance()
	if err != nil {
		return nil, err
	}
	return ast.NewCDDLTree(rules, eof), nil
}

// parseRule parses:
//
//	rule = typename [genericparm] S assignt S type
//	     / groupname [genericparm] S asssigng S grpent
//
// Both constructs look identical up to the assignment token; which one
// this is is decided here by the assignment token alone, without checking
// that the right-hand side actually matches. The classifier resolves the
// ambiguous "=" case afterward.
func (p *Parser) parseRule() (*ast.Rule, error) {
	name, err := p.parseTypename(true, nil)
	if err != nil {
		return nil, err
	}
	assign, err := p.advance()
	if err != nil {
		return nil, err
	}
	switch assign.Kind {
	case ast.ASSIGN, ast.GCHOICEALT:
		entry, err := p.parseGroupEntry()
		if err != nil {
			return nil, err
		}
		return ast.NewRule(name, assign, entry), nil
	case ast.TCHOICEALT:
		value, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		return ast.NewRule(name, assign, value), nil
	default:
		return nil, p.parseError(fmt.Sprintf("assignment expected, received %q", assign.Serialize()))
	}
}

// parseGroupEntry parses:
//
//	grpent = [occur S] [memberkey S] type
//	       / [occur S] groupname [genericarg]  ; preempted by above
//	       / [occur S] "(" S group S ")"
//
// The type production is parsed "loose" first so that a trailing ":" or
// "=>" can be recognized as a Memberkey rather than misparsed as a type.
func (p *Parser) parseGroupEntry() (*ast.GroupEntry, error) {
	occurrence, err := p.parseOccurrence()
	if err != nil {
		return nil, err
	}
	loose, err := p.parseType(true)
	if err != nil {
		return nil, err
	}
	if key, ok := loose.(*ast.Memberkey); ok {
		value, err := p.parseType(false)
		if err != nil {
			return nil, err
		}
		typ, ok := value.(*ast.Type)
		if !ok {
			return nil, p.parseError("expected type after member key")
		}
		return &ast.GroupEntry{Occurrence: occurrence, Memberkey: key, Value: typ}, nil
	}
	typ, ok := loose.(*ast.Type)
	if !ok {
		return nil, p.parseError(fmt.Sprintf("expected type in group entry, received %q", p.curToken.Serialize()))
	}
	return &ast.GroupEntry{Occurrence: occurrence, Value: typ}, nil
}

// parseType parses:
//
//	type = type1 *(S "/" S type1)
//
// When loose is set, it also recognizes the memberkey forms
// (`type1 ["^"] "=>"`, `type1 ":"`) used inside a group entry, returning
// an *ast.Memberkey instead of a *ast.Type when one is found.
func (p *Parser) parseType(loose bool) (ast.Node, error) {
	type1, err := p.parseType1(loose)
	if err != nil {
		return nil, err
	}
	choices := []ast.Node{type1}

	if loose && p.curToken.Kind == ast.CARET {
		caret, err := p.advance()
		if err != nil {
			return nil, err
		}
		if p.curToken.Kind != ast.ARROWMAP {
			return nil, p.parseError(fmt.Sprintf("expected arrow map, received %q%q", p.curToken.Serialize(), p.peekToken.Serialize()))
		}
		arrow, err := p.advance()
		if err != nil {
			return nil, err
		}
		return ast.NewMemberkey(type1, &caret, arrow), nil
	}
	if loose && p.curToken.Kind == ast.ARROWMAP {
		arrow, err := p.advance()
		if err != nil {
			return nil, err
		}
		return ast.NewMemberkey(type1, nil, arrow), nil
	}
	if loose && p.curToken.Kind == ast.COLON {
		colon, err := p.advance()
		if err != nil {
			return nil, err
		}
		return ast.NewMemberkey(type1, nil, colon), nil
	}

	for p.curToken.Kind == ast.TCHOICE {
		sep, err := p.advance()
		if err != nil {
			return nil, err
		}
		setSeparator(type1, sep)
		type1, err = p.parseType1(false)
		if err != nil {
			return nil, err
		}
		choices = append(choices, type1)
	}

	return &ast.Type{Choices: choices}, nil
}

// parseType1 parses:
//
//	type1 = type2 [S (rangeop / ctlop) S type2]
func (p *Parser) parseType1(loose bool) (ast.Node, error) {
	type2, err := p.parseType2(loose)
	if err != nil {
		return nil, err
	}

	switch p.curToken.Kind {
	case ast.INCLRANGE, ast.EXCLRANGE:
		op, err := p.advance()
		if err != nil {
			return nil, err
		}
		maxType, err := p.parseType2(false)
		if err != nil {
			return nil, err
		}
		if !isRangeBound(type2) {
			return nil, p.parseError(fmt.Sprintf("range detected but min is neither a value nor a typename. Got: %s", type2.Serialize(nil)))
		}
		if !isRangeBound(maxType) {
			return nil, p.parseError(fmt.Sprintf("range detected but max is neither a value nor a typename. Got: %s", maxType.Serialize(nil)))
		}
		return ast.NewRange(type2, op, maxType), nil

	case ast.CTLOP:
		if !ast.ControlOperators[p.curToken.Literal] {
			return nil, p.parseError(fmt.Sprintf("unknown control operator %q", p.curToken.Literal))
		}
		ctlop, err := p.advance()
		if err != nil {
			return nil, err
		}
		argument, err := p.parseType2(false)
		if err != nil {
			return nil, err
		}
		return ast.NewOperator(type2, ctlop, argument), nil

	default:
		return type2, nil
	}
}

func isRangeBound(n ast.Node) bool {
	switch n.(type) {
	case *ast.Value, *ast.Typename:
		return true
	default:
		return false
	}
}

// parseType2 parses:
//
//	type2 = value
//	      / typename [genericarg]
//	      / "(" S type S ")"
//	      / "{" S group S "}"
//	      / "[" S group S "]"
//	      / "~" S typename [genericarg]
//	      / "&" S "(" S group S ")"
//	      / "&" S groupname [genericarg]
//	      / "#" "6" ["." uint] "(" S type S ")"
//	      / "#" DIGIT ["." uint]                ; major/ai
//	      / "#"                                 ; any
//
// When loose is set, it also recognizes the bare `"(" S group S ")"`
// alternative used in a group entry.
func (p *Parser) parseType2(loose bool) (ast.Node, error) {
	switch p.curToken.Kind {
	case ast.LPAREN:
		open, err := p.advance()
		if err != nil {
			return nil, err
		}
		var node ast.Node
		if loose {
			choices, err := p.parseGroupChoices()
			if err != nil {
				return nil, err
			}
			node = &ast.Group{Choices: choices}
		} else {
			inner, err := p.parseType(false)
			if err != nil {
				return nil, err
			}
			typ, ok := inner.(*ast.Type)
			if !ok {
				return nil, p.parseError("expected type inside parentheses")
			}
			node = typ
		}
		w := node.(wrappable)
		w.SetOpen(open)
		if p.curToken.Kind != ast.RPAREN {
			return nil, p.parseError(fmt.Sprintf("expected right parenthesis, received %q", p.curToken.Serialize()))
		}
		closeTok, err := p.advance()
		if err != nil {
			return nil, err
		}
		w.SetClose(closeTok)
		return node, nil

	case ast.LBRACE:
		open, err := p.advance()
		if err != nil {
			return nil, err
		}
		choices, err := p.parseGroupChoices()
		if err != nil {
			return nil, err
		}
		m := &ast.Map{Group: &ast.Group{Choices: choices}}
		m.SetOpen(open)
		if p.curToken.Kind != ast.RBRACE {
			return nil, p.parseError(fmt.Sprintf("expected right brace, received %q", p.curToken.Serialize()))
		}
		closeTok, err := p.advance()
		if err != nil {
			return nil, err
		}
		m.SetClose(closeTok)
		return m, nil

	case ast.LBRACK:
		open, err := p.advance()
		if err != nil {
			return nil, err
		}
		choices, err := p.parseGroupChoices()
		if err != nil {
			return nil, err
		}
		arr := &ast.Array{Group: &ast.Group{Choices: choices}}
		arr.SetOpen(open)
		if p.curToken.Kind != ast.RBRACK {
			return nil, p.parseError(fmt.Sprintf("expected right bracket, received %q", p.curToken.Serialize()))
		}
		closeTok, err := p.advance()
		if err != nil {
			return nil, err
		}
		arr.SetClose(closeTok)
		return arr, nil

	case ast.TILDE:
		unwrap, err := p.advance()
		if err != nil {
			return nil, err
		}
		return p.parseTypename(false, &unwrap)

	case ast.AMPERSAND:
		ref, err := p.advance()
		if err != nil {
			return nil, err
		}
		var target ast.Node
		if p.curToken.Kind == ast.LPAREN {
			open, err := p.advance()
			if err != nil {
				return nil, err
			}
			choices, err := p.parseGroupChoices()
			if err != nil {
				return nil, err
			}
			group := &ast.Group{Choices: choices}
			group.SetOpen(open)
			if p.curToken.Kind != ast.RPAREN {
				return nil, p.parseError(fmt.Sprintf("expected right parenthesis, received %q", p.curToken.Serialize()))
			}
			closeTok, err := p.advance()
			if err != nil {
				return nil, err
			}
			group.SetClose(closeTok)
			target = group
		} else {
			tn, err := p.parseTypename(false, nil)
			if err != nil {
				return nil, err
			}
			target = tn
		}
		return ast.NewChoiceFrom(ref, target), nil

	case ast.HASH:
		hash, err := p.advance()
		if err != nil {
			return nil, err
		}
		if (p.curToken.Kind == ast.NUMBER || p.curToken.Kind == ast.FLOAT) && !p.curToken.HasLeadingTrivia() {
			number, err := p.advance()
			if err != nil {
				return nil, err
			}
			if len(number.Literal) > 1 && (number.Literal[1] != '.' || strings.Contains(number.Literal, "e")) {
				return nil, p.parseError(fmt.Sprintf("data item after \"#\" must match DIGIT [\".\" uint], got %q", number.Serialize()))
			}
			if number.Literal[0] == '6' && p.curToken.Kind == ast.LPAREN && !p.curToken.HasLeadingTrivia() {
				content, err := p.parseType2(false)
				if err != nil {
					return nil, err
				}
				typ, ok := content.(*ast.Type)
				if !ok {
					return nil, p.parseError("expected type after tag number")
				}
				return ast.NewTag(hash, &number, typ), nil
			}
			return ast.NewTag(hash, &number, nil), nil
		}
		return ast.NewTag(hash, nil, nil), nil

	case ast.IDENT:
		return p.parseTypename(false, nil)

	case ast.STRING, ast.BYTES, ast.HEX, ast.BASE64, ast.NUMBER, ast.FLOAT:
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		return ast.NewValue(tok), nil

	default:
		return nil, p.parseError(fmt.Sprintf("invalid type2 production, received %q", p.curToken.Serialize()))
	}
}

// parseGroupChoices parses:
//
//	group = grpchoice *(S "//" S grpchoice)
//	grpchoice = *(grpent optcom)
//	optcom = S ["," S]
//
// A group is only ever parsed enclosed in parentheses, braces, or
// brackets, so the caller's closing token tells this loop when to stop.
func (p *Parser) parseGroupChoices() ([]*ast.GroupChoice, error) {
	var choices []*ast.GroupChoice
	for {
		if isGroupEnd(p.curToken.Kind) {
			break
		}
		var entries []*ast.GroupEntry
		for p.curToken.Kind != ast.GCHOICE {
			entry, err := p.parseGroupEntry()
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
			if p.curToken.Kind == ast.COMMA {
				comma, err := p.advance()
				if err != nil {
					return nil, err
				}
				entry.SetSeparator(comma)
			}
			if isGroupEnd(p.curToken.Kind) {
				break
			}
		}
		choice := &ast.GroupChoice{Entries: entries}
		choices = append(choices, choice)
		if isGroupEnd(p.curToken.Kind) {
			break
		}
		gchoice, err := p.advance()
		if err != nil {
			return nil, err
		}
		choice.SetSeparator(gchoice)
	}
	return choices, nil
}

func isGroupEnd(k ast.Kind) bool {
	return k == ast.RPAREN || k == ast.RBRACE || k == ast.RBRACK
}

// parseOccurrence parses the optional `?`, `*`, `+`, `n*`, or `n*m` prefix
// of a group entry. A numbered bound must directly abut the asterisk, on
// either side, or it is left for whatever production follows to consume
// as an identifier or value instead.
func (p *Parser) parseOccurrence() (*ast.Occurrence, error) {
	switch p.curToken.Kind {
	case ast.QUEST, ast.ASTERISK, ast.PLUS:
		if p.curToken.Kind == ast.ASTERISK && p.peekToken.Kind == ast.NUMBER &&
			isUint(p.peekToken.Literal) && !p.peekToken.HasLeadingTrivia() {
			asterisk, err := p.advance()
			if err != nil {
				return nil, err
			}
			max := parseUint(p.curToken.Literal)
			maxTok, err := p.advance()
			if err != nil {
				return nil, err
			}
			return ast.NewBoundedOccurrence(nil, asterisk, &maxTok, 0, max), nil
		}
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		return ast.NewSimpleOccurrence(tok), nil

	case ast.NUMBER:
		if isUint(p.curToken.Literal) && p.peekToken.Kind == ast.ASTERISK && !p.peekToken.HasLeadingTrivia() {
			min := parseUint(p.curToken.Literal)
			minTok, err := p.advance()
			if err != nil {
				return nil, err
			}
			asterisk, err := p.advance()
			if err != nil {
				return nil, err
			}
			max := -1
			var maxTokPtr *ast.Token
			if p.curToken.Kind == ast.NUMBER && isUint(p.curToken.Literal) && !p.curToken.HasLeadingTrivia() {
				max = parseUint(p.curToken.Literal)
				maxTok, err := p.advance()
				if err != nil {
					return nil, err
				}
				maxTokPtr = &maxTok
			}
			return ast.NewBoundedOccurrence(&minTok, asterisk, maxTokPtr, min, max), nil
		}
		return nil, nil

	default:
		return nil, nil
	}
}

func isUint(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseUint(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// parseTypename parses a bare identifier into a Typename. definition is
// true when this is a rule's own name (so any following "<...>" is
// GenericParameters); otherwise a following "<...>" is GenericArguments.
// unwrap is non-nil for the `~ typename` production.
func (p *Parser) parseTypename(definition bool, unwrap *ast.Token) (*ast.Typename, error) {
	if p.curToken.Kind != ast.IDENT {
		return nil, p.parseError(fmt.Sprintf("group identifier expected, received %q", p.curToken.Serialize()))
	}
	ident, err := p.advance()
	if err != nil {
		return nil, err
	}
	typename := ast.NewTypename(unwrap, ident)
	if definition {
		params, err := p.parseGenericParameters()
		if err != nil {
			return nil, err
		}
		typename.GenericParameters = params
	} else {
		args, err := p.parseGenericArguments()
		if err != nil {
			return nil, err
		}
		typename.GenericArguments = args
	}
	return typename, nil
}

// parseGenericParameters parses `"<" id *("," id) ">"`, the parameter
// list following a generic rule's own name. The "<" must directly abut
// the name, with no intervening whitespace or comment, or there is no
// generic production here at all.
func (p *Parser) parseGenericParameters() (*ast.GenericParameters, error) {
	if p.curToken.Kind != ast.LT || p.curToken.HasLeadingTrivia() {
		return nil, nil
	}
	open, err := p.advance()
	if err != nil {
		return nil, err
	}

	var params []*ast.Typename
	name, err := p.parseTypename(false, nil)
	if err != nil {
		return nil, err
	}
	params = append(params, name)
	for p.curToken.Kind == ast.COMMA {
		comma, err := p.advance()
		if err != nil {
			return nil, err
		}
		name.SetSeparator(comma)
		name, err = p.parseTypename(false, nil)
		if err != nil {
			return nil, err
		}
		params = append(params, name)
	}

	node := &ast.GenericParameters{Parameters: params}
	node.SetOpen(open)
	if p.curToken.Kind != ast.GT {
		return nil, p.parseError(fmt.Sprintf("\">\" character expected to end generic production, received %q", p.curToken.Serialize()))
	}
	closeTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	node.SetClose(closeTok)
	return node, nil
}

// parseGenericArguments parses `"<" type1 *("," type1) ">"`, the argument
// list following a reference to a generic rule.
func (p *Parser) parseGenericArguments() (*ast.GenericArguments, error) {
	if p.curToken.Kind != ast.LT || p.curToken.HasLeadingTrivia() {
		return nil, nil
	}
	open, err := p.advance()
	if err != nil {
		return nil, err
	}

	var args []ast.Node
	type1, err := p.parseType1(false)
	if err != nil {
		return nil, err
	}
	args = append(args, type1)
	for p.curToken.Kind == ast.COMMA {
		comma, err := p.advance()
		if err != nil {
			return nil, err
		}
		setSeparator(type1, comma)
		type1, err = p.parseType1(false)
		if err != nil {
			return nil, err
		}
		args = append(args, type1)
	}

	node := &ast.GenericArguments{Arguments: args}
	node.SetOpen(open)
	if p.curToken.Kind != ast.GT {
		return nil, p.parseError(fmt.Sprintf("\">\" character expected to end generic production, received %q", p.curToken.Serialize()))
	}
	closeTok, err := p.advance()
	if err != nil {
		return nil, err
	}
	node.SetClose(closeTok)
	return node, nil
}

// wrappable is satisfied by every Type2 production that can carry a pair
// of surrounding bracket tokens.
type wrappable interface {
	SetOpen(ast.Token)
	SetClose(ast.Token)
}

// separable is satisfied by every Type1 production that can carry a
// trailing separator token (a list comma, or the "/" between type
// choices).
type separable interface {
	SetSeparator(ast.Token)
}

func setSeparator(n ast.Node, tok ast.Token) {
	if s, ok := n.(separable); ok {
		s.SetSeparator(tok)
	}
}
