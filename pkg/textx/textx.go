// Package textx provides small text utilities used across the project.
package textx

import (
	"regexp"
	"strings"
)

var (
	reURL        = regexp.MustCompile(`https?://\S+|www\.\S+`)
	reEmail      = regexp.MustCompile(`\S+@\S+`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	// strip control chars outside tab/newline/carriage return
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanText prepares free-form resume/job text for extraction: control
// characters, URLs and e-mail addresses are removed and whitespace collapsed.
// Word characters and tech punctuation (+ # . / -) survive so terms like
// "c++", "c#" and "node.js" stay intact.
func CleanText(s string) string {
	s = SanitizeText(s)
	s = reURL.ReplaceAllString(s, " ")
	s = reEmail.ReplaceAllString(s, " ")
	s = reWhitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsBlank reports whether s contains no non-whitespace characters.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }
