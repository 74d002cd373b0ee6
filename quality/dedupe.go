package quality

import (
	"strings"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

// SimilarityThreshold is the shared-token ratio at or above which two
// candidates are considered detections of the same physical table.
const SimilarityThreshold = 0.7

// sampleRows is how many leading rows participate in the similarity
// fingerprint. Three rows are enough to separate distinct tables while
// tolerating backend disagreement further down.
const sampleRows = 3

// Similarity returns the shared-token ratio between the first few rows
// of two candidates: |tokens(a) ∩ tokens(b)| / max(|tokens(a)|, |tokens(b)|).
// Both empty yields 1, exactly one empty yields 0.
func Similarity(a, b *model.CandidateTable) float64 {
	ta := fingerprint(a)
	tb := fingerprint(b)
	if len(ta) == 0 && len(tb) == 0 {
		return 1
	}
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	shared := 0
	for tok := range ta {
		if tb[tok] {
			shared++
		}
	}
	larger := len(ta)
	if len(tb) > larger {
		larger = len(tb)
	}
	return float64(shared) / float64(larger)
}

// Dedupe removes near-duplicate candidates, keeping the first occurrence
// in slice order. Callers sort by descending score beforehand so the
// best detection of each physical table survives.
func Dedupe(candidates []*model.CandidateTable) []*model.CandidateTable {
	var kept []*model.CandidateTable
	for _, c := range candidates {
		duplicate := false
		for _, k := range kept {
			if Similarity(c, k) >= SimilarityThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, c)
		}
	}
	return kept
}

func fingerprint(c *model.CandidateTable) map[string]bool {
	tokens := make(map[string]bool)
	if c == nil {
		return tokens
	}
	for i, row := range c.Rows {
		if i >= sampleRows {
			break
		}
		for _, cell := range row {
			for _, tok := range strings.Fields(classify.Normalize(cell)) {
				tokens[tok] = true
			}
		}
	}
	return tokens
}
