package quality

import (
	"testing"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/model"
)

func newTestScorer() *Scorer {
	return NewScorer(classify.DefaultVocabulary(), DefaultWeights())
}

func headerTable() *model.CandidateTable {
	return &model.CandidateTable{
		Rows: [][]string{
			{"Sl.No", "Description", "Qty", "Rate", "Amount"},
			{"1", "Office Desk", "2", "450", "900"},
			{"2", "Office Chair", "4", "150", "600"},
		},
	}
}

func TestScoreIdempotent(t *testing.T) {
	s := newTestScorer()
	c := headerTable()

	first := s.Score(c)
	second := s.Score(c)
	if first != second {
		t.Errorf("rescoring changed the score: %v then %v", first, second)
	}
	if first <= 0 {
		t.Errorf("score = %v, want positive", first)
	}
}

func TestScoreEmpty(t *testing.T) {
	s := newTestScorer()
	if got := s.Score(&model.CandidateTable{}); got != 0 {
		t.Errorf("empty candidate score = %v, want 0", got)
	}
}

func TestScoreOrdering(t *testing.T) {
	s := newTestScorer()

	ragged := &model.CandidateTable{
		Rows: [][]string{
			{"Sl.No", "Description", "Qty", "Rate", "Amount"},
			{"1", "Office Desk", "2", "450", "900"},
			{"2"},
		},
	}

	if s.Score(headerTable()) <= s.Score(ragged) {
		t.Error("uniform table should outscore ragged table")
	}
}

func TestScoreStructureBonus(t *testing.T) {
	s := newTestScorer()

	uniform := &model.CandidateTable{
		Rows: [][]string{
			{"a", "b", "c"},
			{"d", "e", "f"},
		},
	}
	narrow := &model.CandidateTable{
		Rows: [][]string{
			{"a", "b"},
			{"d", "e"},
		},
	}
	// Same rows, same (absent) header matches, same numeric count; only
	// the three-column structure bonus separates them.
	if s.Score(uniform)-s.Score(narrow) != s.weights.StructureBonus {
		t.Errorf("structure bonus not applied: %v vs %v", s.Score(uniform), s.Score(narrow))
	}
}

func TestScoreRowCap(t *testing.T) {
	s := newTestScorer()

	big := &model.CandidateTable{}
	for i := 0; i < 100; i++ {
		big.Rows = append(big.Rows, []string{"a", "b", "c"})
	}
	bigger := big.Clone()
	for i := 0; i < 100; i++ {
		bigger.Rows = append(bigger.Rows, []string{"a", "b", "c"})
	}
	if s.Score(big) != s.Score(bigger) {
		t.Errorf("row contribution should cap: %v vs %v", s.Score(big), s.Score(bigger))
	}
}

func TestSimilarity(t *testing.T) {
	a := &model.CandidateTable{Rows: [][]string{
		{"1", "Office Desk", "2", "450"},
		{"2", "Office Chair", "4", "150"},
	}}
	b := a.Clone()
	if got := Similarity(a, b); got != 1 {
		t.Errorf("identical tables similarity = %v, want 1", got)
	}

	c := &model.CandidateTable{Rows: [][]string{
		{"widget", "gadget", "gizmo"},
	}}
	if got := Similarity(a, c); got != 0 {
		t.Errorf("disjoint tables similarity = %v, want 0", got)
	}

	if got := Similarity(&model.CandidateTable{}, &model.CandidateTable{}); got != 1 {
		t.Errorf("two empty tables similarity = %v, want 1", got)
	}
	if got := Similarity(a, &model.CandidateTable{}); got != 0 {
		t.Errorf("one empty table similarity = %v, want 0", got)
	}
}

func TestDedupe(t *testing.T) {
	a := headerTable()
	duplicate := a.Clone()
	distinct := &model.CandidateTable{Rows: [][]string{
		{"Room", "Zone", "Supplier"},
		{"Lobby", "North", "Acme"},
	}}

	kept := Dedupe([]*model.CandidateTable{a, duplicate, distinct})
	if len(kept) != 2 {
		t.Fatalf("kept %d candidates, want 2", len(kept))
	}
	if kept[0] != a || kept[1] != distinct {
		t.Error("dedupe should keep first occurrence of each distinct table")
	}
}
