package strategies

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/tsawler/tablature/consensus"
	"github.com/tsawler/tablature/model"
)

// tableExtractionPrompt asks the model for machine-parseable table
// markup rather than prose.
const tableExtractionPrompt = `You are analyzing one page of a document that may contain tables.

Find every table on the page and output each one as an HTML <table> element:
- one <tr> per visual row, one <td> per cell, in reading order
- keep cell text exactly as printed, including numbers and units
- use empty <td></td> for blank cells so columns stay aligned
- do not merge, summarize or reorder rows
- output only the <table> elements, no prose, no markdown code fences

If the page contains no tables, output nothing.`

// Model extracts tables by sending the page image to Gemini and
// parsing the returned table markup. Always run it under a deadline:
// it is the one strategy that leaves the process.
type Model struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewModel creates a model-backed strategy. modelName defaults to
// gemini-2.5-flash when empty.
func NewModel(ctx context.Context, apiKey, modelName string) (*Model, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("model strategy api key is required")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating model client: %w", err)
	}

	return &Model{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close closes the underlying client.
func (m *Model) Close() error {
	return m.client.Close()
}

// Name returns the strategy name.
func (m *Model) Name() string {
	return consensus.StrategyModel
}

// Extract sends the page image to the model and parses the table
// markup it returns.
func (m *Model) Extract(ctx context.Context, page *model.PageData) ([]*model.CandidateTable, error) {
	if page == nil || len(page.Image) == 0 {
		return nil, nil
	}

	imageData, err := NormalizeImage(page.Image)
	if err != nil {
		return nil, fmt.Errorf("normalizing page image: %w", err)
	}

	parts := []genai.Part{
		genai.ImageData("png", imageData),
		genai.Text(tableExtractionPrompt),
	}
	resp, err := m.model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("generating content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, nil
	}

	var markup strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			markup.WriteString(string(text))
		}
	}

	text := strings.TrimSpace(markup.String())
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	if text == "" {
		return nil, nil
	}

	grids, err := ParseTables([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("parsing model table markup: %w", err)
	}

	var out []*model.CandidateTable
	for _, rows := range grids {
		if len(rows) == 0 {
			continue
		}
		out = append(out, &model.CandidateTable{
			Rows:     rows,
			Strategy: m.Name(),
			Page:     page.Page,
		})
	}
	return out, nil
}
