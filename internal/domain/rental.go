package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rental is the immutable fact that a user rented a movie on a date.
// It is created only through the rental service and never mutated
// except by being deleted.
type Rental struct {
	id         uuid.UUID
	user       *User
	movie      *Movie
	rentalDate time.Time
}

// NewRental validates and builds a rental without an identity. The
// movie's availability transition is owned by the rental service, not
// the constructor.
func NewRental(user *User, movie *Movie, rentalDate time.Time) (*Rental, error) {
	if user == nil {
		return nil, validationErr("user", "missing user")
	}
	if movie == nil {
		return nil, validationErr("movie", "missing movie")
	}
	if rentalDate.IsZero() {
		return nil, validationErr("rentalDate", "missing rental date")
	}
	return &Rental{user: user, movie: movie, rentalDate: rentalDate}, nil
}

// RehydrateRental rebuilds a rental from persisted state.
func RehydrateRental(id uuid.UUID, user *User, movie *Movie, rentalDate time.Time) (*Rental, error) {
	r, err := NewRental(user, movie, rentalDate)
	if err != nil {
		return nil, err
	}
	r.SetID(id)
	return r, nil
}

// ID returns the rental's identity, uuid.Nil before assignment.
func (r *Rental) ID() uuid.UUID { return r.id }

// SetID assigns the identity exactly once. Reassigning panics.
func (r *Rental) SetID(id uuid.UUID) {
	if r.id != uuid.Nil {
		panic("rental: id cannot be changed")
	}
	r.id = id
}

func (r *Rental) User() *User           { return r.user }
func (r *Rental) Movie() *Movie         { return r.movie }
func (r *Rental) RentalDate() time.Time { return r.rentalDate }

// Days is the number of whole days elapsed since the rental date.
// A rental created today has 0 elapsed days until the next day
// boundary; the count is never negative.
func (r *Rental) Days() int {
	days := daysBetween(r.rentalDate, time.Now())
	if days < 0 {
		return 0
	}
	return days
}

// Charge prices the rental with the movie's category.
func (r *Rental) Charge() float64 {
	return r.movie.Category().Charge(r.Days())
}

// FrequentRenterPoints is the loyalty score awarded for this rental.
func (r *Rental) FrequentRenterPoints() int {
	return r.movie.Category().FrequentRenterPoints(r.Days())
}

// daysBetween counts whole calendar days from a to b, ignoring the
// time of day on either side.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start) / (24 * time.Hour))
}
