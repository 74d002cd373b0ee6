package strategies

import (
	"context"

	"github.com/tsawler/tablature/model"
)

// Grid passes through candidate grids a named backend already
// extracted for the page. It exists so backend output competes in
// consensus selection under the same scoring as everything else.
type Grid struct {
	name string
}

// NewGrid creates a pass-through strategy for the named backend.
func NewGrid(name string) *Grid {
	return &Grid{name: name}
}

// Name returns the backend name this strategy passes through.
func (g *Grid) Name() string {
	return g.name
}

// Extract returns clones of the backend's grids, stamped with this
// strategy's name. Clones keep selection from mutating source data.
func (g *Grid) Extract(_ context.Context, page *model.PageData) ([]*model.CandidateTable, error) {
	if page == nil || len(page.Grids[g.name]) == 0 {
		return nil, nil
	}
	out := make([]*model.CandidateTable, 0, len(page.Grids[g.name]))
	for _, c := range page.Grids[g.name] {
		if c == nil || c.IsEmpty() {
			continue
		}
		clone := c.Clone()
		clone.Strategy = g.name
		clone.Page = page.Page
		out = append(out, clone)
	}
	return out, nil
}
