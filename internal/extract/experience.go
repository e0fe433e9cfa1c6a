package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var reYears = regexp.MustCompile(`(\d+)\+?\s*(?:years?|yrs?)`)

// levelIndicators is ordered: stronger titles win when several appear.
var levelIndicators = []struct {
	needle string
	level  string
}{
	{"senior", "Senior"},
	{"lead", "Lead"},
	{"principal", "Principal"},
	{"staff", "Staff"},
	{"junior", "Junior"},
	{"entry", "Entry-level"},
	{"intern", "Intern"},
	{"mid-level", "Mid-level"},
	{"experienced", "Mid-level"},
}

// ExperienceLevel infers a seniority label from year-of-experience phrases,
// falling back to title keywords. Returns "Not specified" when neither is
// present.
func ExperienceLevel(text string) string {
	lower := strings.ToLower(text)

	years := 0
	for _, m := range reYears.FindAllStringSubmatch(lower, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil && y > years {
			years = y
		}
	}
	switch {
	case years >= 10:
		return "Senior/Lead"
	case years >= 5:
		return "Senior"
	case years >= 3:
		return "Mid-level"
	case years >= 1:
		return "Junior"
	}

	for _, ind := range levelIndicators {
		if strings.Contains(lower, ind.needle) {
			return ind.level
		}
	}
	return "Not specified"
}
