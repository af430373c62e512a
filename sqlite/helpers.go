package sqlite

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// conditions accumulates the WHERE clauses of a filtered query.
type conditions struct {
	clauses []string
	args    []any
}

// eq adds "column = ?" if v is set.
func (c *conditions) eq(column string, v *string) {
	if v == nil {
		return
	}
	c.clauses = append(c.clauses, column+" = ?")
	c.args = append(c.args, *v)
}

// where renders the clauses joined with AND, or "" when there are none.
func (c *conditions) where() string {
	if len(c.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.clauses, " AND ")
}

// page renders LIMIT and OFFSET for positive values. SQLite only accepts
// OFFSET after a LIMIT, so an offset alone is paired with LIMIT -1.
func page(limit, offset int) string {
	switch {
	case limit > 0 && offset > 0:
		return " LIMIT " + strconv.Itoa(limit) + " OFFSET " + strconv.Itoa(offset)
	case limit > 0:
		return " LIMIT " + strconv.Itoa(limit)
	case offset > 0:
		return " LIMIT -1 OFFSET " + strconv.Itoa(offset)
	default:
		return ""
	}
}

// parseTimestamp parses a stored RFC3339 timestamp of the named column.
func parseTimestamp(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}
