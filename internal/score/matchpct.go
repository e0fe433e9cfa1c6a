package score

import "math"

// Blend of raw coverage and relevance-weighted coverage. Equal halves keep
// the score monotonic: moving a job skill into the matching set grows both
// numerators while both denominators stay fixed for a given job description.
const (
	coverageWeight = 0.5
	weightedWeight = 0.5
)

// MatchResult is the combined coverage score.
type MatchResult struct {
	// Percentage in [0,100], rounded to one decimal.
	Percentage float64
	// EmptyJobSet flags that no skills were recognized in the job
	// description; Percentage is 0 by definition rather than by division.
	EmptyJobSet bool
}

// MatchPercentage combines raw and relevance-weighted coverage of the job
// skill set. relevance must rate every id in job; matching must be a subset
// of job.
func MatchPercentage(matching, job []string, relevance map[string]float64) MatchResult {
	if len(job) == 0 {
		return MatchResult{Percentage: 0, EmptyJobSet: true}
	}

	coverage := float64(len(matching)) / float64(len(job))

	var matchedRel, totalRel float64
	for _, id := range job {
		totalRel += relevance[id]
	}
	for _, id := range matching {
		matchedRel += relevance[id]
	}
	weighted := coverage
	if totalRel > 0 {
		weighted = matchedRel / totalRel
	}

	pct := 100 * (coverageWeight*coverage + weightedWeight*weighted)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return MatchResult{Percentage: math.Round(pct*10) / 10}
}
