package tablature

import (
	"fmt"
	"strings"
)

// Warning codes.
const (
	WarnStrategyFailed  = "strategy_failed"
	WarnStrategyTimeout = "strategy_timeout"
	WarnPageEmpty       = "page_empty"
	WarnImageMatch      = "image_match"
	WarnImagePlacement  = "image_placement"
	WarnSequence        = "sequence"
)

// Warning describes a non-fatal issue encountered during
// reconstruction. Warnings never abort a document; they record where
// the pipeline fell back or dropped something.
type Warning struct {
	// Code classifies the warning.
	Code string `json:"code"`

	// Page is the page the warning arose on, or -1 for document-level
	// warnings.
	Page int `json:"page"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

func (w Warning) String() string {
	if w.Page >= 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Code, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
