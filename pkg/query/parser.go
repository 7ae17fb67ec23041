// Package query parses and runs the shell's read-only statements over int64
// containers.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"ordmap/pkg/common"
	"ordmap/pkg/core"
)

// SelectStmt represents a parsed SELECT * FROM container statement.
type SelectStmt struct {
	Container string
	Where     *WhereClause
	Desc      bool
	Limit     int
}

type WhereClause struct {
	Field string // key or value
	Op    string
	Value int64
}

var selectRe = regexp.MustCompile(`(?i)^SELECT\s+\*\s+FROM\s+([a-zA-Z_][a-zA-Z0-9_]*)(?:\s+WHERE\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(=|!=|>=|<=|>|<)\s*(-?\d+))?(?:\s+ORDER\s+BY\s+KEY(?:\s+(ASC|DESC))?)?(?:\s+LIMIT\s+(\d+))?\s*$`)

// Parse parses statements of the form
//
//	SELECT * FROM name [WHERE key|value <op> <int>] [ORDER BY key [ASC|DESC]] [LIMIT <n>]
func Parse(s string) (*SelectStmt, error) {
	orig := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ";"))
	if orig == "" {
		return nil, errors.New("empty query")
	}

	matches := selectRe.FindStringSubmatch(orig)
	if matches == nil {
		return nil, errors.New("syntax: expected SELECT * FROM <name> [WHERE key|value <op> <int>] [ORDER BY key [ASC|DESC]] [LIMIT <n>]")
	}

	stmt := &SelectStmt{
		Container: matches[1],
		Desc:      strings.EqualFold(matches[5], "desc"),
		Limit:     -1,
	}

	if matches[2] != "" {
		field := strings.ToLower(matches[2])
		if field != "key" && field != "value" {
			return nil, errors.Errorf("unknown field %q: only key and value are supported", matches[2])
		}
		v, err := strconv.ParseInt(matches[4], 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid WHERE value")
		}
		stmt.Where = &WhereClause{
			Field: field,
			Op:    matches[3],
			Value: v,
		}
	}

	if matches[6] != "" {
		n, err := strconv.Atoi(matches[6])
		if err != nil {
			return nil, errors.Wrap(err, "invalid LIMIT value")
		}
		stmt.Limit = n
	}

	return stmt, nil
}

func (stmt *SelectStmt) Match(e common.Entry[int64]) bool {
	if stmt.Where == nil {
		return true
	}
	x := e.Key
	if stmt.Where.Field == "value" {
		x = e.Value
	}
	v := stmt.Where.Value
	switch stmt.Where.Op {
	case "=":
		return x == v
	case "!=":
		return x != v
	case ">":
		return x > v
	case "<":
		return x < v
	case ">=":
		return x >= v
	case "<=":
		return x <= v
	default:
		return false
	}
}

// Run walks c in key order, or backwards from End when Desc is set, and
// returns the matching entries up to Limit.
func (stmt *SelectStmt) Run(c core.Container[int64]) []common.Entry[int64] {
	var out []common.Entry[int64]
	full := func() bool {
		return stmt.Limit >= 0 && len(out) >= stmt.Limit
	}
	begin, end := c.ReadBegin(), c.ReadEnd()
	defer begin.Release()
	defer end.Release()

	if stmt.Desc {
		for it := end; !it.Equal(begin) && !full(); {
			if e := it.Prev().Entry(); stmt.Match(e) {
				out = append(out, e)
			}
		}
		return out
	}
	for it := begin; !it.Equal(end) && !full(); it.Next() {
		if e := it.Entry(); stmt.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
