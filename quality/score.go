// Package quality assigns comparable structural-confidence scores to
// candidate tables and suppresses near-duplicate detections of the same
// physical table by different backends.
package quality

import (
	"strings"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

// Weights controls the scoring formula. The defaults reproduce the
// established ranking behavior; implementations may retune the values
// but must keep the score monotonic in structural confidence.
type Weights struct {
	RowWeight         float64 // points per row
	MaxRowScore       float64 // cap on points from rows
	ConsistencyWeight float64 // scale for column-count consistency
	HeaderMatchWeight float64 // points per matched header-semantic group
	MaxHeaderScore    float64 // cap on points from header matches
	NumericWeight     float64 // points per numeric-looking cell
	MaxNumericScore   float64 // cap on points from numeric cells
	StructureBonus    float64 // bonus for well-structured tables
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		RowWeight:         2,
		MaxRowScore:       50,
		ConsistencyWeight: 30,
		HeaderMatchWeight: 5,
		MaxHeaderScore:    50,
		NumericWeight:     1,
		MaxNumericScore:   30,
		StructureBonus:    10,
	}
}

// Scorer computes quality scores for candidate tables. Score is a pure
// function of the candidate's rows: rescoring an unchanged candidate
// yields the identical value.
type Scorer struct {
	weights Weights
	vocab   classify.Vocabulary
}

// NewScorer creates a scorer with the given vocabulary and weights.
func NewScorer(vocab classify.Vocabulary, weights Weights) *Scorer {
	return &Scorer{weights: weights, vocab: vocab}
}

// Score rates a candidate's structural confidence. Contributions:
// row count, column-count consistency, header-semantic matches on the
// first row, numeric cell density, and a bonus for tables with at least
// two rows, three columns, and perfectly uniform width.
func (s *Scorer) Score(c *model.CandidateTable) float64 {
	if c.IsEmpty() {
		return 0
	}

	score := capped(float64(len(c.Rows))*s.weights.RowWeight, s.weights.MaxRowScore)

	counts := c.ColumnCounts()
	minCols, maxCols := minMax(counts)
	if len(counts) > 1 && maxCols > 0 {
		consistency := 1 - float64(maxCols-minCols)/float64(maxCols)
		score += consistency * s.weights.ConsistencyWeight
	} else if len(counts) == 1 {
		score += s.weights.ConsistencyWeight
	}

	score += capped(float64(s.headerGroupMatches(c.Rows[0]))*s.weights.HeaderMatchWeight, s.weights.MaxHeaderScore)

	numeric := 0
	for _, row := range c.Rows {
		for _, cell := range row {
			if strings.IndexFunc(cell, isDigit) >= 0 {
				numeric++
			}
		}
	}
	score += capped(float64(numeric)*s.weights.NumericWeight, s.weights.MaxNumericScore)

	if len(c.Rows) >= 2 && minCols >= 3 && minCols == maxCols {
		score += s.weights.StructureBonus
	}

	return score
}

// headerGroupMatches counts the distinct semantic groups with at least
// one variant appearing in the joined first-row text.
func (s *Scorer) headerGroupMatches(firstRow []string) int {
	text := classify.Normalize(strings.Join(firstRow, " "))
	if text == "" {
		return 0
	}
	matches := 0
	for _, variants := range s.vocab.Variants {
		for _, variant := range variants {
			if strings.Contains(text, variant) {
				matches++
				break
			}
		}
	}
	return matches
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func capped(v, max float64) float64 {
	if v > max {
		return max
	}
	return v
}

func minMax(values []int) (min, max int) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
