package strategies

import (
	"context"

	"github.com/tsawler/tablature/columns"
	"github.com/tsawler/tablature/consensus"
	"github.com/tsawler/tablature/model"
)

// Positional reconstructs table structure from positioned text tokens
// by clustering X coordinates into column positions.
type Positional struct {
	detector *columns.Detector
}

// NewPositional creates a positional strategy with a default column
// detector.
func NewPositional() *Positional {
	return &Positional{detector: columns.NewDetector()}
}

// Name returns the strategy name.
func (p *Positional) Name() string {
	return consensus.StrategyPositional
}

// Extract clusters the page's tokens into a candidate grid. When
// unassisted clustering finds too few columns it retries seeded on the
// topmost row, which usually holds the header.
func (p *Positional) Extract(_ context.Context, page *model.PageData) ([]*model.CandidateTable, error) {
	if page == nil || len(page.Tokens) == 0 {
		return nil, nil
	}

	rows := columns.GroupRows(page.Tokens)
	if len(rows) == 0 {
		return nil, nil
	}

	positions := p.detector.DetectPositions(rows)
	if len(positions) < 2 {
		positions = p.detector.DetectPositionsSeeded(rows, rows[0].Y)
	}
	if len(positions) < 2 {
		return nil, nil
	}

	candidate := p.detector.BuildCandidate(rows, positions, page.Page, p.Name())
	if candidate == nil || candidate.IsEmpty() {
		return nil, nil
	}
	return []*model.CandidateTable{candidate}, nil
}

func init() {
	consensus.RegisterStrategy(NewPositional())
	consensus.RegisterStrategy(NewGrid(consensus.StrategyLayout))
	consensus.RegisterStrategy(NewHTML(consensus.StrategyLayoutPreserved))
}
