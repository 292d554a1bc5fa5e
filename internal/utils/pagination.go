// Package utils holds small helpers shared by the query and handler
// layers. Nothing here knows about articles or comments.
package utils

import (
	"math"
	"strconv"
	"strings"
)

// Offset returns the row offset of a 1-based page. Pages below 1 are
// treated as the first page; an offset past math.MaxInt saturates.
func Offset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// ParseID parses a path identifier as a positive int64. Leading and trailing
// whitespace is not accepted.
func ParseID(s string) (int64, bool) {
	if s == "" || strings.TrimSpace(s) != s {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
