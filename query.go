package wordhord

import (
	"strings"
	"unicode"
)

// Occur describes how a clause takes part in a boolean query.
type Occur int

// Occur constants.
const (
	Should Occur = iota
	Must
	MustNot
)

// Query is a parsed free-text query. A query matches if all Must clauses
// match (or, without Must clauses, any Should clause matches) and no
// MustNot clause matches.
type Query struct {
	Clauses []Clause
}

// Empty reports whether the query has nothing to match on.
func (q *Query) Empty() bool {
	return q == nil || len(q.Clauses) == 0
}

// Clause is one operand of a Query. Exactly one of Term and Sub is set.
type Clause struct {
	Occur Occur

	// Field restricts the clause to one entry field. Empty means all
	// fields the query is evaluated against.
	Field string

	Term *Term
	Sub  *Query
}

// Term is a single word or quoted phrase.
type Term struct {
	Text   string
	Phrase bool

	// Prefix matches any token starting with Text.
	Prefix bool
}

// Fields lists the entry fields a query may name explicitly.
var Fields = []string{FieldWord, FieldDefinition}

// ParseQuery parses s using the free-text query grammar:
//
//	ac            term; terms are combined with OR
//	"to summon"   phrase
//	+ac -and      required and excluded terms
//	a AND b       conjunction, binds tighter than OR
//	a OR b, NOT a explicit operators
//	(a b)         grouping
//	word:ac       field restriction (word, definition)
//	ab*           prefix
//
// Terms without letters or digits are ignored. Returns EINVALID for
// unbalanced quotes or parentheses, unknown fields, dangling operators and
// groups that only exclude terms.
func ParseQuery(s string) (*Query, error) {
	q, err := parseQuery(s)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid query %q: %s", s, ErrorMessage(err))
	}
	return q, nil
}

func parseQuery(s string) (*Query, error) {
	tokens, err := lexQuery(s)
	if err != nil {
		return nil, err
	}

	p := &queryParser{tokens: tokens}
	q, err := p.parseSequence()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, Errorf(EINVALID, "unbalanced parenthesis")
	}

	q = pruneQuery(q)
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	return q, nil
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokPhrase
	tokField
	tokPlus
	tokMinus
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func lexQuery(s string) ([]token, error) {
	var tokens []token
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokLParen})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokRParen})
			i++
		case r == '"':
			end := i + 1
			for end < len(runes) && runes[end] != '"' {
				end++
			}
			if end == len(runes) {
				return nil, Errorf(EINVALID, "unbalanced quotation mark")
			}
			tokens = append(tokens, token{kind: tokPhrase, text: string(runes[i+1 : end])})
			i = end + 1
		case (r == '+' || r == '-') && startsOperand(runes, i):
			if r == '+' {
				tokens = append(tokens, token{kind: tokPlus})
			} else {
				tokens = append(tokens, token{kind: tokMinus})
			}
			i++
		default:
			end := i
			for end < len(runes) && !isQueryDelimiter(runes[end]) {
				end++
			}
			word := string(runes[i:end])
			i = end
			if field, rest, ok := strings.Cut(word, ":"); ok {
				tokens = append(tokens, token{kind: tokField, text: field})
				if rest != "" {
					tokens = append(tokens, token{kind: tokWord, text: rest})
				}
				continue
			}
			tokens = append(tokens, token{kind: tokWord, text: word})
		}
	}
	return tokens, nil
}

// startsOperand reports whether the sign at runes[i] prefixes an operand:
// it must start a token and be directly followed by one.
func startsOperand(runes []rune, i int) bool {
	if i > 0 && !unicode.IsSpace(runes[i-1]) && runes[i-1] != '(' {
		return false
	}
	return i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) && runes[i+1] != ')'
}

func isQueryDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == '"'
}

type queryParser struct {
	tokens []token
	pos    int
}

func (p *queryParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *queryParser) peek() token {
	return p.tokens[p.pos]
}

func (p *queryParser) peekKeyword(kw string) bool {
	if p.done() {
		return false
	}
	t := p.peek()
	return t.kind == tokWord && t.text == kw
}

// parseSequence parses groups separated by OR or juxtaposition until the
// end of input or a closing parenthesis.
func (p *queryParser) parseSequence() (*Query, error) {
	q := &Query{}
	expectOperand := false
	for !p.done() && p.peek().kind != tokRParen {
		if p.peekKeyword("OR") {
			if len(q.Clauses) == 0 || expectOperand {
				return nil, Errorf(EINVALID, "OR without left operand")
			}
			p.pos++
			expectOperand = true
			continue
		}

		c, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		q.Clauses = append(q.Clauses, c)
		expectOperand = false
	}
	if expectOperand {
		return nil, Errorf(EINVALID, "OR without right operand")
	}
	return q, nil
}

// parseGroup parses unary clauses joined by AND.
func (p *queryParser) parseGroup() (Clause, error) {
	first, err := p.parseUnary()
	if err != nil {
		return Clause{}, err
	}
	if !p.peekKeyword("AND") {
		return first, nil
	}

	group := &Query{Clauses: []Clause{first}}
	for p.peekKeyword("AND") {
		p.pos++
		if p.done() {
			return Clause{}, Errorf(EINVALID, "AND without right operand")
		}
		c, err := p.parseUnary()
		if err != nil {
			return Clause{}, err
		}
		group.Clauses = append(group.Clauses, c)
	}
	for i := range group.Clauses {
		if group.Clauses[i].Occur == Should {
			group.Clauses[i].Occur = Must
		}
	}
	return Clause{Occur: Should, Sub: group}, nil
}

func (p *queryParser) parseUnary() (Clause, error) {
	occur := Should
	switch {
	case p.peek().kind == tokPlus:
		occur = Must
		p.pos++
	case p.peek().kind == tokMinus, p.peekKeyword("NOT"):
		occur = MustNot
		p.pos++
	}
	if p.done() {
		return Clause{}, Errorf(EINVALID, "operator without operand")
	}

	c, err := p.parsePrimary()
	if err != nil {
		return Clause{}, err
	}
	c.Occur = occur
	return c, nil
}

func (p *queryParser) parsePrimary() (Clause, error) {
	var c Clause
	if t := p.peek(); t.kind == tokField {
		if !isField(t.text) {
			return Clause{}, Errorf(EINVALID, "unknown field %q", t.text)
		}
		c.Field = t.text
		p.pos++
		if p.done() {
			return Clause{}, Errorf(EINVALID, "missing term after field %q", c.Field)
		}
	}

	t := p.peek()
	switch t.kind {
	case tokWord:
		if t.text == "AND" || t.text == "OR" || t.text == "NOT" {
			return Clause{}, Errorf(EINVALID, "unexpected operator %s", t.text)
		}
		p.pos++
		text, prefix := strings.CutSuffix(t.text, "*")
		c.Term = &Term{Text: text, Prefix: prefix}
	case tokPhrase:
		p.pos++
		c.Term = &Term{Text: t.text, Phrase: true}
	case tokLParen:
		p.pos++
		sub, err := p.parseSequence()
		if err != nil {
			return Clause{}, err
		}
		if p.done() {
			return Clause{}, Errorf(EINVALID, "unbalanced parenthesis")
		}
		p.pos++
		c.Sub = sub
	default:
		return Clause{}, Errorf(EINVALID, "unexpected token")
	}
	return c, nil
}

func isField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// pruneQuery drops terms without searchable characters and groups left
// empty by that.
func pruneQuery(q *Query) *Query {
	out := &Query{}
	for _, c := range q.Clauses {
		switch {
		case c.Term != nil:
			if !hasSearchableRune(c.Term.Text) {
				continue
			}
		case c.Sub != nil:
			c.Sub = pruneQuery(c.Sub)
			if c.Sub.Empty() {
				continue
			}
		}
		out.Clauses = append(out.Clauses, c)
	}
	return out
}

// validateQuery rejects groups made only of excluded clauses.
func validateQuery(q *Query) error {
	if q.Empty() {
		return nil
	}
	positive := false
	for _, c := range q.Clauses {
		if c.Occur != MustNot {
			positive = true
		}
		if c.Sub != nil {
			if err := validateQuery(c.Sub); err != nil {
				return err
			}
		}
	}
	if !positive {
		return Errorf(EINVALID, "query only excludes terms")
	}
	return nil
}

func hasSearchableRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
