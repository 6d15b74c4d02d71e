package app

import (
	"net/url"
	"regexp"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes unless the URL
// already takes a position on it. pq's binary result mode breaks otelsql's
// query instrumentation.
func normalizeDBURL(raw string, disablePreparedBinary bool) string {
	if !disablePreparedBinary {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	q := u.Query()
	if q.Has("disable_prepared_binary_result") {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// dbNameFromURL extracts the database name for span attribution, handling
// both the URL form and the space-separated DSN form pq accepts.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		if name := strings.Trim(u.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(field, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}

	return ""
}

const tracedQueryLimit = 512

var sqlWhitespace = regexp.MustCompile(`\s+`)

// formatDBQueryForTrace collapses whitespace and truncates long statements so
// query spans stay readable.
func formatDBQueryForTrace(query string) string {
	q := sqlWhitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	if len(q) > tracedQueryLimit {
		return q[:tracedQueryLimit] + "..."
	}
	return q
}
