// Package match computes the three comparison buckets from two normalized
// skill sets. Membership is binary per canonical id, so there are no ties to
// break; the buckets are disjoint by construction.
package match

import "sort"

// Sets holds canonical skill ids per bucket, each sorted ascending for
// deterministic downstream ordering.
type Sets struct {
	Matching []string // resume ∩ job
	Gaps     []string // job \ resume
	Unique   []string // resume \ job
}

// Compute partitions the resume and job skill sets.
func Compute(resume, job map[string]struct{}) Sets {
	var s Sets
	for id := range resume {
		if _, ok := job[id]; ok {
			s.Matching = append(s.Matching, id)
		} else {
			s.Unique = append(s.Unique, id)
		}
	}
	for id := range job {
		if _, ok := resume[id]; !ok {
			s.Gaps = append(s.Gaps, id)
		}
	}
	sort.Strings(s.Matching)
	sort.Strings(s.Gaps)
	sort.Strings(s.Unique)
	return s
}
