// Package consensus runs competing extraction strategies over a page
// and selects the best candidate tables from their combined output.
package consensus

import (
	"context"

	"github.com/tsawler/tablature/model"
)

// Strategy is the interface for table extraction strategies.
type Strategy interface {
	// Extract produces candidate tables for a page.
	Extract(ctx context.Context, page *model.PageData) ([]*model.CandidateTable, error)

	// Name returns the strategy name.
	Name() string
}

// StrategyRegistry holds registered strategies.
type StrategyRegistry struct {
	strategies map[string]Strategy
}

// NewRegistry creates a new strategy registry.
func NewRegistry() *StrategyRegistry {
	return &StrategyRegistry{
		strategies: make(map[string]Strategy),
	}
}

// Register registers a strategy.
func (r *StrategyRegistry) Register(s Strategy) {
	r.strategies[s.Name()] = s
}

// Get retrieves a strategy by name.
func (r *StrategyRegistry) Get(name string) Strategy {
	return r.strategies[name]
}

// List returns all registered strategy names.
func (r *StrategyRegistry) List() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	return names
}

// Global registry
var globalRegistry = NewRegistry()

// RegisterStrategy registers a strategy globally.
func RegisterStrategy(s Strategy) {
	globalRegistry.Register(s)
}

// GetStrategy retrieves a globally registered strategy by name.
func GetStrategy(name string) Strategy {
	return globalRegistry.Get(name)
}

// ListStrategies returns all globally registered strategy names.
func ListStrategies() []string {
	return globalRegistry.List()
}
