package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
	"github.com/DevikaReddi/skill-sync-pro/internal/taxonomy"
)

// Patterns for out-of-vocabulary terms that still look like technologies:
// dotted names (react.js), symbol suffixes (c++, c#), and short acronyms.
var plausibleTermPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:\.[A-Za-z][A-Za-z0-9]*)+$`),
	regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]*(?:\+\+|#)$`),
	regexp.MustCompile(`^[A-Z]{2,6}(?:/[A-Z]{2,6})*$`),
}

// Generic resume/job vocabulary that POS tagging often marks as proper nouns
// but which never denotes a skill.
var extractStopWords = map[string]bool{
	"experience": true, "experienced": true, "work": true, "working": true,
	"develop": true, "developed": true, "developing": true, "build": true,
	"built": true, "building": true, "create": true, "created": true,
	"creating": true, "year": true, "years": true, "month": true,
	"months": true, "responsible": true, "responsibility": true,
	"responsibilities": true, "required": true, "requirement": true,
	"requirements": true, "skill": true, "skills": true, "etc": true,
	"team": true, "role": true, "position": true, "company": true,
	"job": true, "candidate": true, "engineer": true, "developer": true,
	"resume": true, "cv": true,
}

// NLP extracts skill mentions by running a part-of-speech tagger over the
// text, keeping noun tokens that either hit the taxonomy gazetteer or match a
// plausible-term pattern, on top of a full gazetteer span scan for multi-word
// skills. Unknown but plausible terms deliberately pass through; the accepted
// tradeoff is occasional noise in exchange for out-of-vocabulary discovery.
type NLP struct {
	tax     *taxonomy.Taxonomy
	gazScan *Keyword
}

// NewNLP constructs the NLP-backed extractor and probes the model once so that
// an unloadable model surfaces at startup, where the caller selects the
// keyword-only strategy instead.
func NewNLP(tax *taxonomy.Taxonomy) (*NLP, error) {
	if _, err := prose.NewDocument("startup probe", prose.WithExtraction(false)); err != nil {
		return nil, fmt.Errorf("%w: nlp model unavailable: %v", domain.ErrExtraction, err)
	}
	return &NLP{tax: tax, gazScan: NewKeyword(tax)}, nil
}

// Name implements domain.SkillExtractor.
func (n *NLP) Name() string { return "nlp" }

// Extract implements domain.SkillExtractor.
func (n *NLP) Extract(ctx domain.Context, text string) ([]domain.Mention, error) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	// Gazetteer spans first; they anchor multi-word and symbol-heavy terms
	// the tokenizer may split apart.
	mentions, _ := n.gazScan.Extract(ctx, text)
	claimed := make(spans, 0, len(mentions))
	for _, m := range mentions {
		claimed = append(claimed, span{m.Start, m.End})
	}

	cursor := 0
	for _, tok := range doc.Tokens() {
		idx := strings.Index(text[cursor:], tok.Text)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		end := start + len(tok.Text)
		cursor = end

		if !n.candidate(tok) || claimed.overlaps(start, end) {
			continue
		}
		claimed = append(claimed, span{start, end})
		mentions = append(mentions, domain.Mention{Raw: tok.Text, Start: start, End: end})
	}

	sort.Slice(mentions, func(i, j int) bool { return mentions[i].Start < mentions[j].Start })
	return mentions, nil
}

// candidate filters tagged tokens down to likely skill terms.
func (n *NLP) candidate(tok prose.Token) bool {
	raw := strings.TrimSpace(tok.Text)
	if len(raw) < 2 || !hasWordRune(raw) {
		return false
	}
	lower := strings.ToLower(raw)
	if extractStopWords[lower] {
		return false
	}
	if !nounTag(tok.Tag) {
		return false
	}
	if n.tax.Known(lower) {
		return true
	}
	// Proper nouns are frequently product or technology names.
	if tok.Tag == "NNP" || tok.Tag == "NNPS" {
		if len(raw) > 2 && raw[0] >= 'A' && raw[0] <= 'Z' {
			return true
		}
	}
	for _, p := range plausibleTermPatterns {
		if p.MatchString(raw) {
			return true
		}
	}
	return false
}

func nounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN") || tag == "FW"
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
