package tablature

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/consensus"
	"github.com/tsawler/tablature/images"
	"github.com/tsawler/tablature/model"
	"github.com/tsawler/tablature/multipage"
	"github.com/tsawler/tablature/quality"
	"github.com/tsawler/tablature/rows"

	// Registers the built-in extraction strategies.
	_ "github.com/tsawler/tablature/strategies"
)

// Result is the outcome of reconstructing one document.
type Result struct {
	// Tables are the logical tables in reading order.
	Tables []*model.LogicalTable `json:"tables"`

	// Images are the image records after matching, sorted placement
	// and slot assignment.
	Images []model.ImageRecord `json:"images,omitempty"`

	// Placements maps table ID to that table's (row, image column)
	// slot assignments.
	Placements map[int]images.Placement `json:"placements,omitempty"`

	// Warnings are the non-fatal issues encountered on the way.
	Warnings []Warning `json:"warnings,omitempty"`
}

// Engine runs the reconstruction pipeline over a document source.
type Engine struct {
	opts        Options
	log         *slog.Logger
	classifier  *classify.Classifier
	selector    *consensus.Selector
	reassembler *rows.Reassembler
	rowMerger   *rows.Merger
	matcher     *images.Matcher
	pageMerger  *multipage.Merger
}

// New creates an engine from options. Zero-value option fields fall
// back to their defaults.
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Workers <= 0 {
		opts.Workers = def.Workers
	}
	if len(opts.Strategies) == 0 && len(opts.ExtraStrategies) == 0 {
		opts.Strategies = def.Strategies
	}
	if opts.Vocabulary.Variants == nil {
		opts.Vocabulary = def.Vocabulary
	}
	if opts.Weights == (quality.Weights{}) {
		opts.Weights = def.Weights
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	classifier := classify.NewClassifier(opts.Vocabulary)
	selector := consensus.NewSelector(quality.NewScorer(opts.Vocabulary, opts.Weights))
	if opts.Bonuses != nil {
		selector.Bonuses = opts.Bonuses
	}

	return &Engine{
		opts:        opts,
		log:         logger,
		classifier:  classifier,
		selector:    selector,
		reassembler: rows.NewReassembler(),
		rowMerger:   rows.NewMerger(classifier),
		matcher:     images.NewMatcher(),
		pageMerger:  multipage.NewMerger(),
	}
}

type pageResult struct {
	tables   []multipage.PageTable
	warnings []Warning
}

// Reconstruct runs the full pipeline: per-page candidate extraction
// and selection fan out across a bounded worker pool, then a
// single-threaded reduce merges continuation pages, sorts rows into
// serial order, and matches and places images.
//
// Nothing per page is fatal: pages that yield nothing are skipped with
// a warning and a document with no tables returns an empty result.
func (e *Engine) Reconstruct(ctx context.Context, src DocumentSource) (*Result, error) {
	pageCount, err := src.PageCount()
	if err != nil {
		return nil, fmt.Errorf("reading page count: %w", err)
	}

	results := make([]pageResult, pageCount)
	sem := make(chan struct{}, e.opts.Workers)
	var wg sync.WaitGroup
	for page := 0; page < pageCount; page++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(page int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[page] = e.processPage(ctx, src, page)
		}(page)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Reduce consumes pages strictly in order.
	result := &Result{Placements: make(map[int]images.Placement)}
	var pageTables []multipage.PageTable
	for page := range results {
		pageTables = append(pageTables, results[page].tables...)
		result.Warnings = append(result.Warnings, results[page].warnings...)
	}

	result.Tables = e.pageMerger.Merge(pageTables)
	for _, table := range result.Tables {
		table.Normalize()
	}
	assigned := e.assignImages(src, result)
	for _, table := range result.Tables {
		e.finishTable(table, assigned[table.ID], result)
	}

	e.log.Info("reconstruction complete",
		"pages", pageCount,
		"tables", len(result.Tables),
		"warnings", len(result.Warnings))
	return result, nil
}

// processPage collects raw material, runs every strategy, selects the
// winning candidates and turns each into a page table.
func (e *Engine) processPage(ctx context.Context, src DocumentSource, page int) pageResult {
	var res pageResult
	warnf := func(code, format string, args ...any) {
		res.warnings = append(res.warnings, Warning{Code: code, Page: page, Message: fmt.Sprintf(format, args...)})
	}

	data := &model.PageData{Page: page, Grids: make(map[string][]*model.CandidateTable)}

	tokens, err := src.Tokens(page)
	if err != nil {
		warnf(WarnStrategyFailed, "reading tokens: %v", err)
	}
	data.Tokens = tokens

	for _, name := range e.opts.Strategies {
		grids, err := src.Grids(page, name)
		if err != nil {
			warnf(WarnStrategyFailed, "reading %s grids: %v", name, err)
			continue
		}
		if len(grids) > 0 {
			data.Grids[name] = grids
		}
	}
	if hp, ok := src.(HTMLProvider); ok {
		if markup, err := hp.HTML(page); err == nil {
			data.HTML = markup
		} else {
			warnf(WarnStrategyFailed, "rendering HTML: %v", err)
		}
	}
	if rp, ok := src.(RasterProvider); ok {
		if raster, err := rp.Render(page); err == nil {
			data.Image = raster
		} else {
			warnf(WarnStrategyFailed, "rendering raster: %v", err)
		}
	}

	var candidates []*model.CandidateTable
	for _, s := range e.strategies() {
		var extracted []*model.CandidateTable
		var err error
		if s.Name() == consensus.StrategyModel {
			extracted, err = consensus.RunWithTimeout(ctx, s, data, e.opts.ModelTimeout)
		} else {
			extracted, err = s.Extract(ctx, data)
		}
		switch {
		case err == nil:
			candidates = append(candidates, extracted...)
		case ctx.Err() != nil:
			return res
		default:
			code := WarnStrategyFailed
			if errors.Is(err, consensus.ErrDeadline) {
				code = WarnStrategyTimeout
			}
			warnf(code, "strategy %s: %v", s.Name(), err)
		}
	}

	selected := e.selector.Select(candidates)
	if len(selected) == 0 {
		warnf(WarnPageEmpty, "no table candidates survived selection")
		return res
	}

	for _, candidate := range selected {
		if table, ok := e.buildPageTable(candidate); ok {
			res.tables = append(res.tables, table)
		}
	}
	e.log.Debug("page processed",
		"page", page,
		"candidates", len(candidates),
		"selected", len(selected),
		"tables", len(res.tables))
	return res
}

// buildPageTable normalizes one selected candidate into a page table:
// noise filtering, header detection and cleaning, split-text repair,
// continuation-row merging and width normalization.
func (e *Engine) buildPageTable(candidate *model.CandidateTable) (multipage.PageTable, bool) {
	grid := e.classifier.FilterNoise(candidate.Rows)
	if len(grid) == 0 {
		return multipage.PageTable{}, false
	}

	headers, headerRow := e.classifier.DetectHeaders(grid)
	cleaned, mapping := classify.CleanHeaders(headers)
	aligned := classify.AlignRows(grid, cleaned, mapping, headerRow)
	repaired := e.reassembler.Repair(aligned, cleaned, headerRow)

	dataRows := repaired
	if headerRow != classify.HeaderRowNone && headerRow < len(repaired) {
		dataRows = repaired[headerRow+1:]
	}

	semantics := e.classifier.Semantics(cleaned)
	merged := e.rowMerger.Merge(dataRows, semantics)
	if len(merged) == 0 {
		return multipage.PageTable{}, false
	}
	filled := rows.FillEmpty(merged, len(cleaned))

	return multipage.PageTable{
		Headers: cleaned,
		Rows:    filled,
		Page:    candidate.Page,
		Bands:   e.dataBands(candidate, headerRow, len(filled)),
	}, true
}

// dataBands returns the candidate's per-row bands for the data rows,
// but only when one band still corresponds to one final row. Merging
// that changed the row count invalidates the geometry; image matching
// then falls back to sequential pairing.
func (e *Engine) dataBands(candidate *model.CandidateTable, headerRow, finalRows int) []model.Band {
	bands := candidate.RowBands
	if headerRow != classify.HeaderRowNone && headerRow+1 <= len(bands) {
		bands = bands[headerRow+1:]
	}
	if len(bands) != finalRows {
		return nil
	}
	return bands
}

// assignImages fetches each page's images once and assigns every image
// to exactly one table, so one physical image yields exactly one record
// even when several tables share its page. Among the tables spanning
// the page, the image goes to the table whose row bands on that page
// overlap it most; vertical distance decides when nothing overlaps.
// The result maps table ID to that table's images per page.
func (e *Engine) assignImages(src DocumentSource, result *Result) map[int]map[int][]model.ImageRecord {
	pageTables := make(map[int][]*model.LogicalTable)
	for _, table := range result.Tables {
		for _, page := range table.Pages {
			pageTables[page] = append(pageTables[page], table)
		}
	}
	pages := make([]int, 0, len(pageTables))
	for page := range pageTables {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	assigned := make(map[int]map[int][]model.ImageRecord)
	for _, page := range pages {
		sourceImages, err := src.Images(page)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Code: WarnImageMatch, Page: page,
				Message: fmt.Sprintf("reading images: %v", err),
			})
			continue
		}
		for _, si := range sourceImages {
			owner := imageOwner(pageTables[page], page, si.BBox)
			if assigned[owner.ID] == nil {
				assigned[owner.ID] = make(map[int][]model.ImageRecord)
			}
			assigned[owner.ID][page] = append(assigned[owner.ID][page],
				model.ImageRecord{Ref: si.Ref, BBox: si.BBox, Page: page})
		}
	}
	return assigned
}

// imageOwner picks the one table an image belongs to: maximal band
// overlap on the image's page, nearest band when nothing overlaps, the
// first table in reading order when no table has geometry there.
func imageOwner(tables []*model.LogicalTable, page int, box model.BBox) *model.LogicalTable {
	if len(tables) == 1 {
		return tables[0]
	}
	band := model.Band{Top: box.Y0, Bottom: box.Y1}
	best := tables[0]
	bestOverlap, bestDist := 0.0, math.Inf(1)
	for _, t := range tables {
		overlap, dist := 0.0, math.Inf(1)
		for _, rb := range t.RowBands[page] {
			if ov := band.Overlap(rb); ov > overlap {
				overlap = ov
			}
			if d := rb.DistanceTo(box); d < dist {
				dist = d
			}
		}
		if overlap > bestOverlap || (bestOverlap == 0 && dist < bestDist) {
			best, bestOverlap, bestDist = t, overlap, dist
		}
	}
	return best
}

// finishTable runs the per-table reduce steps: image matching against
// pre-sort row geometry, serial-order sorting, record remapping and
// slot placement. assigned holds the table's images per page, as
// produced by assignImages.
func (e *Engine) finishTable(table *model.LogicalTable, assigned map[int][]model.ImageRecord, result *Result) {
	var records []model.ImageRecord
	for _, page := range table.Pages {
		pageRecords := assigned[page]
		if len(pageRecords) == 0 {
			continue
		}
		matched, matchWarnings := e.matcher.Match(table, page, pageRecords)
		records = append(records, matched...)
		for _, msg := range matchWarnings {
			result.Warnings = append(result.Warnings, Warning{Code: WarnImageMatch, Page: page, Message: msg})
		}
	}

	serialCol := -1
	for idx, sem := range e.classifier.Semantics(table.Headers) {
		if sem == model.SemanticSerial {
			serialCol = idx
			break
		}
	}
	mapping := rows.SortBySerial(table, serialCol)
	if mapping != nil {
		recordPtrs := make([]*model.ImageRecord, len(records))
		for i := range records {
			recordPtrs[i] = &records[i]
		}
		if unmapped := rows.RemapImages(recordPtrs, table.ID, mapping); unmapped > 0 {
			result.Warnings = append(result.Warnings, Warning{
				Code: WarnSequence, Page: table.FirstPage(),
				Message: fmt.Sprintf("table %d: %d image records left unmapped after serial sort", table.ID, unmapped),
			})
		}
	}

	placement, placeWarnings := images.Place(table, records)
	if placement != nil {
		result.Placements[table.ID] = placement
	}
	for _, msg := range placeWarnings {
		result.Warnings = append(result.Warnings, Warning{Code: WarnImagePlacement, Page: table.FirstPage(), Message: msg})
	}
	result.Images = append(result.Images, records...)
}

// strategies resolves the configured strategy set: registry names
// first, explicit instances after.
func (e *Engine) strategies() []consensus.Strategy {
	var out []consensus.Strategy
	for _, name := range e.opts.Strategies {
		if s := consensus.GetStrategy(name); s != nil {
			out = append(out, s)
		} else {
			e.log.Warn("unknown strategy", "name", name)
		}
	}
	return append(out, e.opts.ExtraStrategies...)
}
