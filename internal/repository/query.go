package repository

import (
	"fmt"
	"strings"
)

// selectBuilder assembles a SELECT whose optional predicates are only
// known at run time.
//
// Predicates are written with "?" markers. Adding a predicate appends
// its values to args and rewrites each marker to the matching $n in the
// same step, so placeholder numbers always equal argument positions.
type selectBuilder struct {
	base    string
	where   []string
	groupBy string
	having  []string
	orderBy string
	limit   string
	args    []any
	errs    []error
}

func newSelectBuilder(base string) *selectBuilder {
	return &selectBuilder{base: base}
}

// bind appends args and numbers the "?" markers in fragment.
func (b *selectBuilder) bind(fragment string, args ...any) string {
	var sb strings.Builder
	used := 0

	for _, r := range fragment {
		if r != '?' {
			sb.WriteRune(r)
			continue
		}
		if used == len(args) {
			break
		}
		b.args = append(b.args, args[used])
		used++
		fmt.Fprintf(&sb, "$%d", len(b.args))
	}

	if markers := strings.Count(fragment, "?"); markers != len(args) {
		b.errs = append(b.errs, fmt.Errorf("query fragment %q has %d placeholders for %d values", fragment, markers, len(args)))
	}

	return sb.String()
}

// Where adds a condition; conditions are joined with AND.
func (b *selectBuilder) Where(fragment string, args ...any) *selectBuilder {
	b.where = append(b.where, b.bind(fragment, args...))
	return b
}

// Having adds a post-aggregation condition.
func (b *selectBuilder) Having(fragment string, args ...any) *selectBuilder {
	b.having = append(b.having, b.bind(fragment, args...))
	return b
}

func (b *selectBuilder) GroupBy(columns string) *selectBuilder {
	b.groupBy = columns
	return b
}

func (b *selectBuilder) OrderBy(columns string) *selectBuilder {
	b.orderBy = columns
	return b
}

// Limit binds n as a parameter. Call it last so the limit is the final
// positional parameter.
func (b *selectBuilder) Limit(n int) *selectBuilder {
	b.limit = b.bind("?", n)
	return b
}

// Conditions counts the WHERE and HAVING predicates added so far.
func (b *selectBuilder) Conditions() int {
	return len(b.where) + len(b.having)
}

// Build renders the statement and its arguments.
func (b *selectBuilder) Build() (string, []any, error) {
	if len(b.errs) > 0 {
		return "", nil, b.errs[0]
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(b.base))

	if len(b.where) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(b.where, " AND "))
	}
	if b.groupBy != "" {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(b.groupBy)
	}
	if len(b.having) > 0 {
		sb.WriteString("\nHAVING ")
		sb.WriteString(strings.Join(b.having, " AND "))
	}
	if b.orderBy != "" {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(b.orderBy)
	}
	if b.limit != "" {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(b.limit)
	}

	return sb.String(), b.args, nil
}
