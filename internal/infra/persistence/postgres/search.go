package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching query as a literal substring.
// An empty query yields "%%", which matches every row.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// normalizePaging clamps limit/offset to values PostgreSQL accepts.
func normalizePaging(limit, offset int) (int, int) {
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
