package domain

import (
	"fmt"
	"sync"
)

// PriceCategory is a stateless pricing strategy shared by every movie
// assigned to it. Both functions are total: non-positive day counts
// yield zero, never an error.
type PriceCategory interface {
	// Charge returns the rental charge for the given number of days.
	Charge(days int) float64
	// FrequentRenterPoints returns the loyalty points awarded for a
	// rental of the given number of days.
	FrequentRenterPoints(days int) int
	fmt.Stringer
}

// Category identifiers as they appear in seed data and API payloads.
const (
	CategoryRegular    = "Regular"
	CategoryNewRelease = "New Release"
)

type regularCategory struct{}

func (regularCategory) Charge(days int) float64 {
	switch {
	case days <= 0:
		return 0
	case days <= 2:
		return 2.0
	default:
		return 2.0 + 1.5*float64(days-2)
	}
}

func (regularCategory) FrequentRenterPoints(days int) int {
	if days >= 1 {
		return 1
	}
	return 0
}

func (regularCategory) String() string { return CategoryRegular }

type newReleaseCategory struct{}

func (newReleaseCategory) Charge(days int) float64 {
	if days <= 0 {
		return 0
	}
	return 3.0 * float64(days)
}

func (newReleaseCategory) FrequentRenterPoints(days int) int {
	switch {
	case days <= 0:
		return 0
	case days == 1:
		return 1
	default:
		// capped regardless of rental length
		return 2
	}
}

func (newReleaseCategory) String() string { return CategoryNewRelease }

// Shared category instances. Never re-constructed per lookup.
var (
	Regular    PriceCategory = regularCategory{}
	NewRelease PriceCategory = newReleaseCategory{}
)

// CategoryRegistry maps category identifiers to their shared instances.
// It replaces the original system's reflection-over-config-file loader:
// the set of categories is statically known and registered once at
// process start.
type CategoryRegistry struct {
	mu   sync.RWMutex
	byID map[string]PriceCategory
}

func NewCategoryRegistry() *CategoryRegistry {
	return &CategoryRegistry{byID: make(map[string]PriceCategory)}
}

// DefaultCategoryRegistry returns a registry populated with the two
// built-in categories.
func DefaultCategoryRegistry() *CategoryRegistry {
	r := NewCategoryRegistry()
	r.Register(Regular)
	r.Register(NewRelease)
	return r
}

// Register adds a category under its display name. Registering the
// same identifier twice overwrites the previous entry.
func (r *CategoryRegistry) Register(pc PriceCategory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[pc.String()] = pc
}

// Lookup resolves a category identifier. Unknown identifiers fail with
// ErrUnknownCategory so that movie creation rejects them up front.
func (r *CategoryRegistry) Lookup(id string) (PriceCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pc, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return pc, nil
}
