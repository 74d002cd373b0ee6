// Package columns recovers column structure from positioned tokens when
// no backend grid is trustworthy, as happens with borderless tables.
//
// Detection clusters token x-positions into column bands: tokens in the
// same column align at similar left edges or centers across rows. An
// explicit header row, when known, seeds the clusters with authoritative
// positions that data rows then refine.
package columns

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/tablature/model"
)

// Detector clusters token positions into table columns.
type Detector struct {
	// ClusterTolerance is the maximum distance from a value to the
	// running cluster mean for the value to join the cluster (units).
	ClusterTolerance float64

	// MinClusterSize is the support a cluster needs to become a column.
	MinClusterSize int

	// MinSeededClusterSize is the (lower) support required when the
	// clusters were seeded from an explicit header row.
	MinSeededClusterSize int

	// SeparatorGap is the minimum gap between cluster centers for them
	// to count as distinct columns.
	SeparatorGap float64

	// MinAssignTolerance is the floor of the adaptive tolerance used
	// when assigning a token to its nearest column.
	MinAssignTolerance float64

	// MinRowCells is the minimum number of non-empty cells for a built
	// row to be kept.
	MinRowCells int
}

// NewDetector creates a detector with default settings.
func NewDetector() *Detector {
	return &Detector{
		ClusterTolerance:     15.0,
		MinClusterSize:       3,
		MinSeededClusterSize: 2,
		SeparatorGap:         30.0,
		MinAssignTolerance:   30.0,
		MinRowCells:          2,
	}
}

// TokenRow is a group of tokens sharing (approximately) one baseline.
type TokenRow struct {
	Y      float64
	Tokens []model.PositionedToken
}

// GroupRows buckets tokens into rows by rounded top coordinate and
// returns the rows in reading order, each row's tokens sorted
// left-to-right.
func GroupRows(tokens []model.PositionedToken) []TokenRow {
	if len(tokens) == 0 {
		return nil
	}

	buckets := make(map[float64][]model.PositionedToken)
	for _, tok := range tokens {
		y := math.Round(tok.BBox.Y0*10) / 10
		buckets[y] = append(buckets[y], tok)
	}

	rows := make([]TokenRow, 0, len(buckets))
	for y, toks := range buckets {
		sort.Slice(toks, func(i, j int) bool {
			return toks[i].BBox.X0 < toks[j].BBox.X0
		})
		rows = append(rows, TokenRow{Y: y, Tokens: toks})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Y < rows[j].Y
	})
	return rows
}

// DetectPositions returns sorted column center positions derived from
// the left edges and centers of every token.
func (d *Detector) DetectPositions(rows []TokenRow) []float64 {
	values := make([]float64, 0, len(rows)*4)
	for _, row := range rows {
		for _, tok := range row.Tokens {
			values = append(values, tok.BBox.X0, tok.BBox.CenterX())
		}
	}
	clusters := d.cluster(values, d.MinClusterSize)
	return d.consolidate(clusters)
}

// DetectPositionsSeeded derives column positions with the header row's
// token positions as seed clusters. Header positions define the column
// bands; data tokens refine them and may add columns with the lower
// seeded support threshold.
func (d *Detector) DetectPositionsSeeded(rows []TokenRow, headerY float64) []float64 {
	var values []float64
	for _, row := range rows {
		// Tokens between the header baseline and the first data row are
		// ambiguous; skip the in-between zone.
		if math.Abs(row.Y-headerY) >= 2 && math.Abs(row.Y-headerY) < 5 {
			continue
		}
		for _, tok := range row.Tokens {
			values = append(values, tok.BBox.X0, tok.BBox.CenterX())
		}
	}
	clusters := d.cluster(values, d.MinSeededClusterSize)
	return d.consolidate(clusters)
}

// cluster greedily groups sorted values whose distance to the running
// cluster mean is within tolerance. A cluster becomes a column position
// only with at least minSize supporting values.
func (d *Detector) cluster(values []float64, minSize int) []float64 {
	if len(values) == 0 {
		return nil
	}
	sort.Float64s(values)

	var positions []float64
	current := []float64{values[0]}

	flush := func() {
		if len(current) >= minSize {
			positions = append(positions, mean(current))
		}
	}

	for _, v := range values[1:] {
		if v-mean(current) < d.ClusterTolerance {
			current = append(current, v)
		} else {
			flush()
			current = []float64{v}
		}
	}
	flush()

	return positions
}

// consolidate folds clusters separated by less than SeparatorGap into
// one column, keeping the leftmost representative.
func (d *Detector) consolidate(positions []float64) []float64 {
	if len(positions) < 2 {
		return positions
	}
	sort.Float64s(positions)

	out := []float64{positions[0]}
	for i := 0; i < len(positions)-1; i++ {
		if positions[i+1]-positions[i] > d.SeparatorGap {
			out = append(out, positions[i+1])
		}
	}
	return out
}

// assignTolerance is adaptive: 30% of the average inter-column spacing,
// never below the configured floor.
func (d *Detector) assignTolerance(positions []float64) float64 {
	if len(positions) < 2 {
		return 50.0
	}
	avgSpacing := (positions[len(positions)-1] - positions[0]) / float64(len(positions)-1)
	return math.Max(avgSpacing*0.3, d.MinAssignTolerance)
}

// ColumnFor returns the index of the column nearest to x, or false when
// no column lies within the adaptive tolerance. A token with no column
// within tolerance is dropped; detection never invents a new column
// mid-table.
func (d *Detector) ColumnFor(x float64, positions []float64) (int, bool) {
	if len(positions) == 0 {
		return 0, false
	}
	best := 0
	bestDist := math.Inf(1)
	for i, pos := range positions {
		if dist := math.Abs(x - pos); dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	if bestDist >= d.assignTolerance(positions) {
		return 0, false
	}
	return best, true
}

// BuildCandidate assembles a candidate grid by assigning every token of
// every row to its nearest column. Tokens in the same cell are
// space-joined; rows with fewer than MinRowCells non-empty cells are
// discarded. Row bands record each kept row's vertical extent for image
// matching.
func (d *Detector) BuildCandidate(rows []TokenRow, positions []float64, page int, strategy string) *model.CandidateTable {
	if len(positions) < 2 {
		return nil
	}

	candidate := &model.CandidateTable{
		Strategy: strategy,
		Page:     page,
	}

	for _, row := range rows {
		cells := make([]string, len(positions))
		top := math.Inf(1)
		bottom := math.Inf(-1)

		for _, tok := range row.Tokens {
			col, ok := d.ColumnFor(tok.BBox.X0, positions)
			if !ok {
				continue
			}
			if cells[col] != "" {
				cells[col] += " " + tok.Text
			} else {
				cells[col] = tok.Text
			}
			top = math.Min(top, tok.BBox.Y0)
			bottom = math.Max(bottom, tok.BBox.Y1)
		}

		nonEmpty := 0
		for _, cell := range cells {
			if strings.TrimSpace(cell) != "" {
				nonEmpty++
			}
		}
		if nonEmpty < d.MinRowCells {
			continue
		}

		candidate.Rows = append(candidate.Rows, cells)
		candidate.RowBands = append(candidate.RowBands, model.Band{Top: top, Bottom: bottom})
	}

	if len(candidate.Rows) == 0 {
		return nil
	}
	return candidate
}

// Detect is the convenience entry point: group tokens into rows, detect
// positions, and build the candidate grid. Returns nil when the page
// has no discoverable column structure.
func (d *Detector) Detect(tokens []model.PositionedToken, page int, strategy string) *model.CandidateTable {
	rows := GroupRows(tokens)
	if len(rows) < 2 {
		return nil
	}
	positions := d.DetectPositions(rows)
	if len(positions) < 2 {
		return nil
	}
	return d.BuildCandidate(rows, positions, page, strategy)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
