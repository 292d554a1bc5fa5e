package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

// Scrub patterns. UUIDs are replaced before phone numbers so the looser phone
// pattern never eats the digit groups of an id.
var (
	uuidRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	emailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	phoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// LogOptions configures what Logger scrubs before writing the access log.
//
// MaskHeaders names extra request headers whose values are replaced with
// "[REDACTED]". Matching is case-insensitive and merged with Authorization,
// Cookie and Set-Cookie.
type LogOptions struct {
	MaskHeaders []string
	// LogHeaders adds the scrubbed request headers to each access log line.
	LogHeaders bool
}

type redactor struct {
	masked map[string]struct{}
}

func newRedactor(extra []string) redactor {
	m := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range extra {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			m[h] = struct{}{}
		}
	}
	return redactor{masked: m}
}

// text replaces ids, emails and phone numbers in s.
func (redactor) text(s string) string {
	if s == "" {
		return s
	}
	s = uuidRE.ReplaceAllString(s, "[REDACTED:id]")
	s = emailRE.ReplaceAllString(s, "[REDACTED:email]")
	return phoneRE.ReplaceAllString(s, "[REDACTED:phone]")
}

// headers flattens h, masking sensitive names and scrubbing the rest.
func (r redactor) headers(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vv := range h {
		if _, ok := r.masked[strings.ToLower(k)]; ok {
			out[k] = "[REDACTED]"
			continue
		}
		out[k] = r.text(strings.Join(vv, ", "))
	}
	return out
}
