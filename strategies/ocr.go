package strategies

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"strings"

	"github.com/gen2brain/heic"
	"github.com/otiai10/gosseract/v2"
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	"github.com/tsawler/tablature/columns"
	"github.com/tsawler/tablature/consensus"
	"github.com/tsawler/tablature/model"
)

// OCR reconstructs tables from a raster page rendition. Tesseract
// supplies word-level bounding boxes, which feed the same positional
// column detector as native text tokens.
//
// Requires Tesseract installed on the system, so this strategy is not
// registered globally; construct it explicitly and close it when done.
type OCR struct {
	client   *gosseract.Client
	detector *columns.Detector
}

// NewOCR creates an OCR strategy for the given language ("" means
// English).
func NewOCR(lang string) (*OCR, error) {
	client := gosseract.NewClient()
	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}
	return &OCR{
		client:   client,
		detector: columns.NewDetector(),
	}, nil
}

// Close releases the Tesseract client.
func (o *OCR) Close() error {
	if o.client != nil {
		return o.client.Close()
	}
	return nil
}

// Name returns the strategy name.
func (o *OCR) Name() string {
	return consensus.StrategyOCR
}

// Extract OCRs the page image, converts word boxes to positioned
// tokens and clusters them into a candidate grid.
func (o *OCR) Extract(ctx context.Context, page *model.PageData) ([]*model.CandidateTable, error) {
	if page == nil || len(page.Image) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized, err := NormalizeImage(page.Image)
	if err != nil {
		return nil, fmt.Errorf("normalizing page image: %w", err)
	}
	if err := o.client.SetImageFromBytes(normalized); err != nil {
		return nil, fmt.Errorf("setting OCR image: %w", err)
	}

	boxes, err := o.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	tokens := make([]model.PositionedToken, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		tokens = append(tokens, model.PositionedToken{
			Text: word,
			Page: page.Page,
			BBox: model.BBox{
				X0: float64(box.Box.Min.X),
				Y0: float64(box.Box.Min.Y),
				X1: float64(box.Box.Max.X),
				Y1: float64(box.Box.Max.Y),
			},
		})
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	candidate := o.detector.Detect(tokens, page.Page, o.Name())
	if candidate == nil || candidate.IsEmpty() {
		return nil, nil
	}
	return []*model.CandidateTable{candidate}, nil
}

// NormalizeImage converts any supported image format (PNG, JPEG, GIF,
// TIFF, WebP, HEIC) to PNG bytes. PNG input is returned unchanged.
func NormalizeImage(data []byte) ([]byte, error) {
	if isPNG(data) {
		return data, nil
	}

	var img image.Image
	var err error
	if isHEIC(data) {
		img, err = heic.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC image: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func isPNG(data []byte) bool {
	return len(data) >= 8 && bytes.Equal(data[:8], []byte("\x89PNG\r\n\x1a\n"))
}

// isHEIC sniffs the ftyp box brands HEIC containers use; the stdlib
// image registry cannot decode them.
func isHEIC(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}
