package sqlite

import (
	"strings"

	"github.com/fwojciec/wordhord"
)

// matchExpression renders q as an FTS5 MATCH expression. If column is set
// the whole expression is restricted to that column; q must then have been
// passed through restrict. Every term is emitted as a quoted FTS5 string so
// query text never reaches the FTS5 grammar.
func matchExpression(q *wordhord.Query, column string) string {
	expr := lowerQuery(q)
	if column != "" {
		expr = columnFilter(column, expr)
	}
	return expr
}

func lowerQuery(q *wordhord.Query) string {
	var must, should, mustNot []string
	for _, c := range q.Clauses {
		expr := lowerClause(c)
		switch c.Occur {
		case wordhord.Must:
			must = append(must, expr)
		case wordhord.MustNot:
			mustNot = append(mustNot, expr)
		default:
			should = append(should, expr)
		}
	}

	// With required clauses present, optional ones cannot change which
	// rows match.
	var b strings.Builder
	b.WriteByte('(')
	if len(must) > 0 {
		b.WriteString(strings.Join(must, " AND "))
	} else {
		b.WriteString(strings.Join(should, " OR "))
	}
	b.WriteByte(')')
	for _, expr := range mustNot {
		b.WriteString(" NOT ")
		b.WriteString(expr)
	}
	return "(" + b.String() + ")"
}

func lowerClause(c wordhord.Clause) string {
	var expr string
	if c.Sub != nil {
		expr = lowerQuery(c.Sub)
	} else {
		expr = lowerTerm(c.Term)
	}
	if c.Field != "" {
		expr = columnFilter(c.Field, expr)
	}
	return expr
}

// lowerTerm quotes a term. FTS5 tokenizes quoted strings, so a phrase and a
// hyphenated word both become phrase queries.
func lowerTerm(t *wordhord.Term) string {
	s := `"` + strings.ReplaceAll(t.Text, `"`, `""`) + `"`
	if t.Prefix {
		s += "*"
	}
	return s
}

func columnFilter(column, expr string) string {
	return "{" + column + "} : (" + expr + ")"
}

// restrict narrows q to column and clears field restrictions that column
// already satisfies. Clauses bound to another field can never match: optional
// and excluded ones are dropped, a required one makes q unsatisfiable.
// Returns false if nothing in q can match within column.
func restrict(q *wordhord.Query, column string) (*wordhord.Query, bool) {
	out := &wordhord.Query{}
	for _, c := range q.Clauses {
		satisfiable := c.Field == "" || c.Field == column
		if satisfiable && c.Sub != nil {
			var sub *wordhord.Query
			sub, satisfiable = restrict(c.Sub, column)
			c.Sub = sub
		}
		if !satisfiable {
			if c.Occur == wordhord.Must {
				return nil, false
			}
			continue
		}
		c.Field = ""
		out.Clauses = append(out.Clauses, c)
	}

	for _, c := range out.Clauses {
		if c.Occur != wordhord.MustNot {
			return out, true
		}
	}
	return nil, false
}
