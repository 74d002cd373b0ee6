package tablature

import (
	"log/slog"
	"time"

	"github.com/tsawler/tablature/classify"
	"github.com/tsawler/tablature/consensus"
	"github.com/tsawler/tablature/quality"
)

// Options holds engine configuration.
type Options struct {
	// Workers bounds how many pages are processed concurrently.
	Workers int

	// Strategies names the extraction strategies to run per page, in
	// order. Names resolve against the global strategy registry unless
	// ExtraStrategies supplies an instance directly.
	Strategies []string

	// ExtraStrategies are strategy instances that need explicit
	// construction (OCR, model backends). They run in addition to the
	// named ones.
	ExtraStrategies []consensus.Strategy

	// ModelTimeout bounds the model strategy call; it is the one
	// strategy that leaves the process. Zero disables the deadline.
	ModelTimeout time.Duration

	// Vocabulary drives header detection and row classification.
	Vocabulary classify.Vocabulary

	// Weights configures the candidate quality scorer.
	Weights quality.Weights

	// Bonuses are per-strategy score bonuses for consensus selection.
	// Nil means defaults.
	Bonuses map[string]float64

	// Logger receives structured progress and fallback logs. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the standard engine configuration.
func DefaultOptions() Options {
	return Options{
		Workers: 4,
		Strategies: []string{
			consensus.StrategyPositional,
			consensus.StrategyLayout,
			consensus.StrategyLayoutPreserved,
		},
		ModelTimeout: 45 * time.Second,
		Vocabulary:   classify.DefaultVocabulary(),
		Weights:      quality.DefaultWeights(),
	}
}
