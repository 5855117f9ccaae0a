package querykit

import (
	"fmt"
	"strings"
)

// pred is one WHERE predicate with its bind args
// exprs use ? markers which render renumbers to $N
type pred struct {
	expr string
	args []any
}

// Composed is a fully assembled ready to execute query
// it is an immutable value: every mutator returns a fresh copy so a composed
// query handed to a repository is never shared or mutated afterwards
type Composed struct {
	entityType string
	from       string
	columns    []string
	joins      []string
	preds      []pred
	order      []string
	countExpr  string
	offset     int
	limit      int
}

// NewComposed starts a query for entityType selecting columns from the given
// FROM clause (table plus alias)
func NewComposed(entityType, from string, columns ...string) Composed {
	return Composed{
		entityType: entityType,
		from:       from,
		columns:    columns,
		countExpr:  "COUNT(*)",
	}
}

// EntityType reports which entity type the query targets
func (c Composed) EntityType() string { return c.entityType }

// clone deep copies slice fields so append on a copy never bleeds into the original
func (c Composed) clone() Composed {
	c.columns = append([]string(nil), c.columns...)
	c.joins = append([]string(nil), c.joins...)
	c.preds = append([]pred(nil), c.preds...)
	c.order = append([]string(nil), c.order...)
	return c
}

// Where returns a copy with an ANDed predicate appended
// use ? for bind markers
func (c Composed) Where(expr string, args ...any) Composed {
	n := c.clone()
	n.preds = append(n.preds, pred{expr: expr, args: args})
	return n
}

// Join returns a copy with a join clause appended
func (c Composed) Join(expr string) Composed {
	n := c.clone()
	n.joins = append(n.joins, expr)
	return n
}

// OrderBy returns a copy with the ORDER BY expressions replaced
func (c Composed) OrderBy(exprs ...string) Composed {
	n := c.clone()
	n.order = append([]string(nil), exprs...)
	return n
}

// Page returns a copy with OFFSET and LIMIT set
// limit <= 0 means no LIMIT clause
func (c Composed) Page(offset, limit int) Composed {
	n := c.clone()
	n.offset = offset
	n.limit = limit
	return n
}

// CountOver returns a copy counting the given expression instead of *
// needed when joins can fan out rows, eg COUNT(DISTINCT s.submission_id)
func (c Composed) CountOver(expr string) Composed {
	n := c.clone()
	n.countExpr = "COUNT(" + expr + ")"
	return n
}

// Predicates reports how many WHERE predicates the query carries
func (c Composed) Predicates() int { return len(c.preds) }

// Offset reports the pagination offset
func (c Composed) Offset() int { return c.offset }

// Limit reports the page size, 0 meaning unlimited
func (c Composed) Limit() int { return c.limit }

// SelectSQL renders the page query with positional $N args
func (c Composed) SelectSQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(c.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(c.from)
	args := c.writeJoinsAndWhere(&b)
	if len(c.order) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(c.order, ", "))
	}
	if c.limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", c.limit)
	}
	if c.offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", c.offset)
	}
	return renumber(b.String()), args
}

// CountSQL renders the matching total count query
// same filters, no ordering and no pagination, so the total is independent
// of the requested page
func (c Composed) CountSQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(c.countExpr)
	b.WriteString(" FROM ")
	b.WriteString(c.from)
	args := c.writeJoinsAndWhere(&b)
	return renumber(b.String()), args
}

func (c Composed) writeJoinsAndWhere(b *strings.Builder) []any {
	for _, j := range c.joins {
		b.WriteString(" ")
		b.WriteString(j)
	}
	var args []any
	if len(c.preds) > 0 {
		b.WriteString(" WHERE ")
		for i, p := range c.preds {
			if i > 0 {
				b.WriteString(" AND ")
			}
			b.WriteString("(")
			b.WriteString(p.expr)
			b.WriteString(")")
			args = append(args, p.args...)
		}
	}
	return args
}

// renumber rewrites ? markers to $1..$N for the pg driver
func renumber(sql string) string {
	var b strings.Builder
	n := 0
	for _, r := range sql {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
