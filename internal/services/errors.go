// Package services implements the news use-cases on top of the repo layer:
// listing, creating, voting on and deleting topics, users, articles and
// comments. Validation failures are returned as domain errors so handlers can
// map them to HTTP results consistently; store failures are passed through
// untouched for the error translator.
package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/nc-news/internal/domain"
)

// Field limits. Text columns are unbounded; identifiers and titles map to
// varchar(255).
const (
	maxIdentRunes = 255
	maxBodyRunes  = 20000
)

// cleanText applies Unicode NFC normalization, strips control characters
// (keeping newlines and tabs) and trims surrounding whitespace.
func cleanText(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// required cleans v and fails with InvalidFormat naming field when the
// result is empty or longer than max runes.
func required(field, v string, max int) (string, error) {
	v = cleanText(v)
	if v == "" {
		return "", domain.InvalidFormat(fmt.Sprintf("%s is required.", field))
	}
	if max > 0 && utf8.RuneCountInString(v) > max {
		return "", domain.InvalidFormat(fmt.Sprintf("%s must be at most %d characters.", field, max))
	}
	return v, nil
}

// Limits configures page sizes for listing operations.
type Limits struct {
	Default int
	Max     int
}
