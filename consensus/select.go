package consensus

import (
	"sort"

	"github.com/tsawler/tablature/model"
	"github.com/tsawler/tablature/quality"
)

// Strategy names with built-in confidence bonuses. Strategies that see
// document structure directly earn a head start over purely positional
// reconstruction.
const (
	StrategyModel           = "model"
	StrategyLayout          = "layout"
	StrategyLayoutPreserved = "layout-preserving"
	StrategyPositional      = "positional"
	StrategyOCR             = "ocr"
)

// DefaultBonuses returns the standard per-strategy score bonuses.
func DefaultBonuses() map[string]float64 {
	return map[string]float64{
		StrategyModel:           30,
		StrategyLayout:          25,
		StrategyLayoutPreserved: 20,
	}
}

// SelectionMargin keeps every candidate whose adjusted score is within
// this fraction of the best adjusted score.
const SelectionMargin = 0.10

// Selector ranks candidates from all strategies and picks the winners
// for a page.
type Selector struct {
	scorer  *quality.Scorer
	Bonuses map[string]float64
	Margin  float64
}

// NewSelector creates a selector with default bonuses and margin.
func NewSelector(scorer *quality.Scorer) *Selector {
	return &Selector{
		scorer:  scorer,
		Bonuses: DefaultBonuses(),
		Margin:  SelectionMargin,
	}
}

// adjusted returns the candidate's quality score plus its strategy
// bonus, computing and caching the quality score on first use.
func (s *Selector) adjusted(c *model.CandidateTable) float64 {
	score, ok := c.Score()
	if !ok {
		score = s.scorer.Score(c)
		c.SetScore(score)
	}
	return score + s.Bonuses[c.Strategy]
}

// Select ranks all candidates for one page and returns the distinct
// tables worth keeping: candidates within the margin of the best
// adjusted score, near-duplicates suppressed in favor of the higher
// scorer. Each surviving candidate is kept verbatim; rows are never
// dropped or rewritten during selection.
func (s *Selector) Select(candidates []*model.CandidateTable) []*model.CandidateTable {
	var viable []*model.CandidateTable
	for _, c := range candidates {
		if c != nil && !c.IsEmpty() {
			viable = append(viable, c)
		}
	}
	if len(viable) == 0 {
		return nil
	}

	// Descending adjusted score; stable so input order breaks ties,
	// keeping selection deterministic across runs.
	sort.SliceStable(viable, func(a, b int) bool {
		return s.adjusted(viable[a]) > s.adjusted(viable[b])
	})

	best := s.adjusted(viable[0])
	cutoff := best * (1 - s.Margin)

	var selected []*model.CandidateTable
	for _, c := range viable {
		if s.adjusted(c) >= cutoff {
			selected = append(selected, c)
		}
	}

	return quality.Dedupe(selected)
}
