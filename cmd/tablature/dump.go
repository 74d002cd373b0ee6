package main

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/tsawler/tablature"
	"github.com/tsawler/tablature/model"
)

// DocumentDump is the on-disk input format: one entry per page with
// whatever raw material the producing pipeline captured.
type DocumentDump struct {
	Pages []PageDump `json:"pages"`
}

// PageDump holds the captured material for one page. Absent fields
// simply disable the strategies that would consume them.
type PageDump struct {
	Tokens []model.PositionedToken `json:"tokens,omitempty"`

	// Grids maps a backend name to the cell grids it extracted.
	Grids map[string][][][]string `json:"grids,omitempty"`

	HTML   string      `json:"html,omitempty"`
	Image  []byte      `json:"image,omitempty"`
	Images []ImageDump `json:"images,omitempty"`
}

// ImageDump is one embedded image reference with its bounding box.
type ImageDump struct {
	Ref  string     `json:"ref"`
	BBox model.BBox `json:"bbox"`
}

// LoadDump reads and decodes a document dump file.
func LoadDump(path string) (*DocumentDump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}
	return DecodeDump(data)
}

// DecodeDump decodes document dump bytes.
func DecodeDump(data []byte) (*DocumentDump, error) {
	var dump DocumentDump
	if err := sonic.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("decoding dump: %w", err)
	}
	return &dump, nil
}

// dumpSource adapts a DocumentDump to the engine's source interface.
type dumpSource struct {
	dump *DocumentDump
}

var (
	_ tablature.DocumentSource = (*dumpSource)(nil)
	_ tablature.HTMLProvider   = (*dumpSource)(nil)
	_ tablature.RasterProvider = (*dumpSource)(nil)
)

func (d *dumpSource) PageCount() (int, error) {
	return len(d.dump.Pages), nil
}

func (d *dumpSource) page(n int) (*PageDump, error) {
	if n < 0 || n >= len(d.dump.Pages) {
		return nil, fmt.Errorf("page %d out of range", n)
	}
	return &d.dump.Pages[n], nil
}

func (d *dumpSource) Tokens(page int) ([]model.PositionedToken, error) {
	p, err := d.page(page)
	if err != nil {
		return nil, err
	}
	return p.Tokens, nil
}

func (d *dumpSource) Grids(page int, strategy string) ([]*model.CandidateTable, error) {
	p, err := d.page(page)
	if err != nil {
		return nil, err
	}
	var out []*model.CandidateTable
	for _, grid := range p.Grids[strategy] {
		out = append(out, &model.CandidateTable{
			Rows:     grid,
			Strategy: strategy,
			Page:     page,
		})
	}
	return out, nil
}

func (d *dumpSource) Images(page int) ([]tablature.SourceImage, error) {
	p, err := d.page(page)
	if err != nil {
		return nil, err
	}
	out := make([]tablature.SourceImage, 0, len(p.Images))
	for _, img := range p.Images {
		out = append(out, tablature.SourceImage{Ref: img.Ref, BBox: img.BBox})
	}
	return out, nil
}

func (d *dumpSource) HTML(page int) ([]byte, error) {
	p, err := d.page(page)
	if err != nil {
		return nil, err
	}
	return []byte(p.HTML), nil
}

func (d *dumpSource) Render(page int) ([]byte, error) {
	p, err := d.page(page)
	if err != nil {
		return nil, err
	}
	return p.Image, nil
}
