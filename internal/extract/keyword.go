// Package extract turns validated text into ordered skill mention candidates.
// Two strategies implement domain.SkillExtractor: an NLP-backed extractor and
// a keyword-only gazetteer scan used as the degraded mode. Both are stateless
// per call and safe for concurrent use.
package extract

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/taxonomy"
)

// Keyword scans text against the taxonomy gazetteer with case-insensitive,
// word-boundary matching. It is the fallback strategy when the NLP model is
// unavailable and must produce a result rather than fail the pipeline.
type Keyword struct {
	tax *taxonomy.Taxonomy
}

// NewKeyword constructs the gazetteer scanner over the given vocabulary.
func NewKeyword(tax *taxonomy.Taxonomy) *Keyword {
	return &Keyword{tax: tax}
}

// Name implements domain.SkillExtractor.
func (k *Keyword) Name() string { return "keyword" }

// Extract implements domain.SkillExtractor. Longer gazetteer variants claim
// their spans first so "machine learning" is never reported as "machine",
// and "javascript" never also yields "java".
func (k *Keyword) Extract(_ domain.Context, text string) ([]domain.Mention, error) {
	lower := strings.ToLower(text)
	var mentions []domain.Mention
	var claimed spans
	for _, term := range k.tax.Terms() {
		from := 0
		for {
			idx := strings.Index(lower[from:], term)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(term)
			from = start + 1
			if !wordBoundary(lower, start, end) || claimed.overlaps(start, end) {
				continue
			}
			claimed = append(claimed, span{start, end})
			mentions = append(mentions, domain.Mention{Raw: text[start:end], Start: start, End: end})
		}
	}
	sort.Slice(mentions, func(i, j int) bool { return mentions[i].Start < mentions[j].Start })
	return mentions, nil
}

type span struct{ start, end int }

type spans []span

func (s spans) overlaps(start, end int) bool {
	for _, sp := range s {
		if start < sp.end && end > sp.start {
			return true
		}
	}
	return false
}

// wordBoundary reports whether [start,end) is delimited by non-word runes.
// Word runes are letters and digits; tech punctuation inside a term (+ # .)
// does not extend the word on either side.
func wordBoundary(s string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(prev) {
			return false
		}
	}
	if end < len(s) {
		next, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
