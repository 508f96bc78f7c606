// Package sqlstore provides database/sql implementations of the repository
// interfaces. The queries run unchanged on SQLite (mattn/go-sqlite3) and
// PostgreSQL (pgx stdlib): placeholders are numbered ($1, $2, ...) and always
// appear for the first time in increasing order.
package sqlstore

import (
	"fmt"
	"strings"

	"brewlog/internal/common/pagination"
)

// whereBuilder collects WHERE conditions and their arguments.
type whereBuilder struct {
	conditions []string
	args       []any
}

// next returns the placeholder for the next argument.
func (b *whereBuilder) next() string {
	return fmt.Sprintf("$%d", len(b.args)+1)
}

// equal adds "col = $n".
func (b *whereBuilder) equal(col string, v any) {
	b.conditions = append(b.conditions, fmt.Sprintf("%s = %s", col, b.next()))
	b.args = append(b.args, v)
}

// search adds a case-insensitive substring match over cols, sharing one
// placeholder. A blank term adds nothing.
func (b *whereBuilder) search(term string, cols ...string) {
	if term == "" || len(cols) == 0 {
		return
	}
	ph := b.next()
	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, fmt.Sprintf(`LOWER(%s) LIKE %s ESCAPE '\'`, col, ph))
	}
	b.conditions = append(b.conditions, "("+strings.Join(parts, " OR ")+")")
	b.args = append(b.args, "%"+escapeLike(strings.ToLower(term))+"%")
}

// clause returns the WHERE clause including the keyword, or "".
func (b *whereBuilder) clause() string {
	if len(b.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conditions, " AND ")
}

// limitClause returns LIMIT/OFFSET for a limited request, "" for AllItems.
// The returned args extend b.args.
func limitClause[K pagination.SortKey[K]](b *whereBuilder, req pagination.ListRequest[K]) (string, []any) {
	args := append([]any(nil), b.args...)
	limit, ok := req.PageSize().Limit()
	if !ok {
		return "", args
	}
	clause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return clause, append(args, int64(limit), int64(req.Offset()))
}

// orderClause orders by expr in dir, breaking ties on idCol in the same direction.
func orderClause(expr, idCol string, dir pagination.SortDirection) string {
	return fmt.Sprintf("ORDER BY %s %s, %s %s", expr, dir.SQL(), idCol, dir.SQL())
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
