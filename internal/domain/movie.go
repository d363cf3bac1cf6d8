package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxTitleLength bounds movie titles.
const MaxTitleLength = 100

// Movie is a single rentable copy of a film. Its identity is assigned
// exactly once; the rented flag is true iff exactly one active rental
// references it.
type Movie struct {
	id          uuid.UUID
	title       string
	releaseDate time.Time
	category    PriceCategory
	ageRating   int

	mu     sync.Mutex
	rented bool
}

// NewMovie validates and builds a movie without an identity. The id is
// assigned by the creating service via SetID.
func NewMovie(title string, releaseDate time.Time, category PriceCategory, ageRating int) (*Movie, error) {
	if err := checkTitle(title); err != nil {
		return nil, err
	}
	if category == nil {
		return nil, validationErr("priceCategory", "missing price category")
	}
	if ageRating < 0 {
		return nil, validationErr("ageRating", "must not be negative")
	}
	return &Movie{
		title:       title,
		releaseDate: releaseDate,
		category:    category,
		ageRating:   ageRating,
	}, nil
}

// RehydrateMovie rebuilds a movie from persisted state, including its
// already-assigned identity and rented flag.
func RehydrateMovie(id uuid.UUID, title string, releaseDate time.Time, category PriceCategory, ageRating int, rented bool) (*Movie, error) {
	m, err := NewMovie(title, releaseDate, category, ageRating)
	if err != nil {
		return nil, err
	}
	m.SetID(id)
	m.rented = rented
	return m, nil
}

func checkTitle(title string) error {
	if title == "" {
		return validationErr("title", "must not be empty")
	}
	if len(title) > MaxTitleLength {
		return validationErr("title", "too long")
	}
	return nil
}

// ID returns the movie's identity, uuid.Nil before assignment.
func (m *Movie) ID() uuid.UUID { return m.id }

// SetID assigns the identity exactly once. Reassigning is a programmer
// error and panics.
func (m *Movie) SetID(id uuid.UUID) {
	if m.id != uuid.Nil {
		panic("movie: id cannot be changed")
	}
	m.id = id
}

func (m *Movie) Title() string           { return m.title }
func (m *Movie) ReleaseDate() time.Time  { return m.releaseDate }
func (m *Movie) Category() PriceCategory { return m.category }
func (m *Movie) AgeRating() int          { return m.ageRating }

// Rented reports whether the movie is currently rented.
func (m *Movie) Rented() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rented
}

// MarkRented atomically flips the movie from available to rented.
// It returns false when the movie was already rented, so concurrent
// callers racing for the same copy see exactly one success.
func (m *Movie) MarkRented() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rented {
		return false
	}
	m.rented = true
	return true
}

// MarkAvailable flips the movie back to available.
func (m *Movie) MarkAvailable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rented = false
}
