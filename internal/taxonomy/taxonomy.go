// Package taxonomy holds the canonical skill vocabulary: the alias table that
// de-aliases raw mentions into canonical skill ids, the display casing per id,
// and the fixed category each id belongs to.
//
// The table is parsed once at process start and never mutated afterwards, so a
// single *Taxonomy may be shared by any number of concurrent analyses without
// locking. Callers inject it explicitly; there is no package-level singleton.
package taxonomy

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/DevikaReddi/skill-sync-pro/internal/domain"
)

//go:embed data.yaml
var rawTable []byte

type entry struct {
	ID       string   `yaml:"id"`
	Display  string   `yaml:"display"`
	Category string   `yaml:"category"`
	Aliases  []string `yaml:"aliases"`
}

type document struct {
	Skills []entry `yaml:"skills"`
}

var validCategories = map[domain.Category]bool{
	domain.CategoryProgramming: true,
	domain.CategoryFrontend:    true,
	domain.CategoryBackend:     true,
	domain.CategoryDatabase:    true,
	domain.CategoryCloudDevOps: true,
	domain.CategorySoftSkills:  true,
	domain.CategoryOther:       true,
}

// Taxonomy is the immutable alias/category lookup table.
type Taxonomy struct {
	aliases  map[string]string // lowercased variant -> canonical id
	display  map[string]string // canonical id -> display name
	category map[string]domain.Category
	terms    []string // every variant, longest first, for gazetteer scans
}

// New parses the embedded vocabulary. It is meant to run once at startup;
// a parse failure is fatal for the process.
func New() (*Taxonomy, error) {
	return Parse(rawTable)
}

// Parse builds a Taxonomy from a YAML document. Exposed so tests can swap in
// reduced or synthetic vocabularies.
func Parse(data []byte) (*Taxonomy, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("op=taxonomy.Parse: %w", err)
	}
	if len(doc.Skills) == 0 {
		return nil, fmt.Errorf("op=taxonomy.Parse: empty skill table")
	}
	t := &Taxonomy{
		aliases:  make(map[string]string, len(doc.Skills)*2),
		display:  make(map[string]string, len(doc.Skills)),
		category: make(map[string]domain.Category, len(doc.Skills)),
	}
	for _, e := range doc.Skills {
		id := strings.ToLower(strings.TrimSpace(e.ID))
		if id == "" {
			return nil, fmt.Errorf("op=taxonomy.Parse: entry with empty id")
		}
		if _, dup := t.display[id]; dup {
			return nil, fmt.Errorf("op=taxonomy.Parse: duplicate id %q", id)
		}
		cat := domain.Category(e.Category)
		if !validCategories[cat] {
			return nil, fmt.Errorf("op=taxonomy.Parse: id %q has unknown category %q", id, e.Category)
		}
		disp := strings.TrimSpace(e.Display)
		if disp == "" {
			disp = titleCase(id)
		}
		t.display[id] = disp
		t.category[id] = cat
		if err := t.addVariant(id, id); err != nil {
			return nil, err
		}
		for _, a := range e.Aliases {
			if err := t.addVariant(a, id); err != nil {
				return nil, err
			}
		}
	}
	t.terms = make([]string, 0, len(t.aliases))
	for v := range t.aliases {
		t.terms = append(t.terms, v)
	}
	// Longest variants first so multi-word terms win over their substrings
	// ("machine learning" before "machine"); ties broken alphabetically for
	// deterministic scan order.
	sort.Slice(t.terms, func(i, j int) bool {
		if len(t.terms[i]) != len(t.terms[j]) {
			return len(t.terms[i]) > len(t.terms[j])
		}
		return t.terms[i] < t.terms[j]
	})
	return t, nil
}

func (t *Taxonomy) addVariant(variant, id string) error {
	v := strings.ToLower(strings.TrimSpace(variant))
	if v == "" {
		return fmt.Errorf("op=taxonomy.Parse: id %q has empty alias", id)
	}
	if prev, dup := t.aliases[v]; dup && prev != id {
		return fmt.Errorf("op=taxonomy.Parse: alias %q maps to both %q and %q", v, prev, id)
	}
	t.aliases[v] = id
	return nil
}

// Canonical maps a raw term to its canonical skill id. Known variants are
// de-aliased; unrecognized terms pass through lowercased/trimmed as their own
// id with ok=false, which lets plausible out-of-vocabulary skills surface.
func (t *Taxonomy) Canonical(raw string) (id string, ok bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	v = strings.TrimRight(v, ".,;:")
	if v == "" {
		return "", false
	}
	if id, ok := t.aliases[v]; ok {
		return id, true
	}
	return v, false
}

// CategoryOf returns the category for a canonical id; unknown ids are Other.
func (t *Taxonomy) CategoryOf(id string) domain.Category {
	if c, ok := t.category[strings.ToLower(id)]; ok {
		return c
	}
	return domain.CategoryOther
}

// Display returns canonical display casing for an id. Ids outside the fixed
// vocabulary get simple title casing; source-text casing is never used.
func (t *Taxonomy) Display(id string) string {
	if d, ok := t.display[strings.ToLower(id)]; ok {
		return d
	}
	return titleCase(id)
}

// Known reports whether term (any casing) is a vocabulary variant.
func (t *Taxonomy) Known(term string) bool {
	_, ok := t.aliases[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

// Terms returns all vocabulary variants, longest first. The returned slice is
// shared and must not be modified.
func (t *Taxonomy) Terms() []string { return t.terms }

// Len reports the number of canonical skills in the vocabulary.
func (t *Taxonomy) Len() int { return len(t.display) }

func titleCase(s string) string {
	words := strings.Fields(strings.TrimSpace(s))
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
