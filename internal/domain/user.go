package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxUserAge bounds how far in the past a birth date may lie.
	MaxUserAge = 120
	// MaxRentableMovies is the number of movies a user may have rented
	// at the same time. The original system declared this limit but
	// never enforced it; enforcement here is a configurable policy of
	// the rental service.
	MaxRentableMovies = 3
	// MaxNameLength bounds family and first names.
	MaxNameLength = 40
)

// User is a client of the rental shop.
type User struct {
	id        uuid.UUID
	name      string
	firstName string
	birthdate time.Time

	rentals []*Rental
}

// NewUser validates and builds a user without an identity.
func NewUser(name, firstName string, birthdate time.Time) (*User, error) {
	u := &User{}
	if err := u.SetName(name); err != nil {
		return nil, err
	}
	if err := u.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := u.SetBirthdate(birthdate); err != nil {
		return nil, err
	}
	return u, nil
}

// RehydrateUser rebuilds a user from persisted state. The birth date
// bounds are re-checked, matching the original system which validated
// on every mutation.
func RehydrateUser(id uuid.UUID, name, firstName string, birthdate time.Time) (*User, error) {
	u, err := NewUser(name, firstName, birthdate)
	if err != nil {
		return nil, err
	}
	u.SetID(id)
	return u, nil
}

// ID returns the user's identity, uuid.Nil before assignment.
func (u *User) ID() uuid.UUID { return u.id }

// SetID assigns the identity exactly once. Reassigning panics.
func (u *User) SetID(id uuid.UUID) {
	if u.id != uuid.Nil {
		panic("user: id cannot be changed")
	}
	u.id = id
}

func (u *User) Name() string         { return u.name }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) Birthdate() time.Time { return u.birthdate }

// SetName replaces the family name after validating it.
func (u *User) SetName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	u.name = name
	return nil
}

// SetFirstName replaces the first name after validating it.
func (u *User) SetFirstName(firstName string) error {
	if err := checkName(firstName); err != nil {
		return err
	}
	u.firstName = firstName
	return nil
}

// SetBirthdate replaces the birth date. The date must not lie in the
// future nor more than MaxUserAge years in the past, checked against
// the clock at mutation time.
func (u *User) SetBirthdate(birthdate time.Time) error {
	now := time.Now()
	if birthdate.After(now) {
		return validationErr("birthdate", "must not be in the future")
	}
	if birthdate.Before(now.AddDate(-MaxUserAge, 0, 0)) {
		return validationErr("birthdate", "too far in the past")
	}
	u.birthdate = birthdate
	return nil
}

func checkName(name string) error {
	if name == "" {
		return validationErr("name", "must not be empty")
	}
	if len(name) > MaxNameLength {
		return validationErr("name", "too long")
	}
	return nil
}

// Rentals returns the user's rentals in the order they were added.
func (u *User) Rentals() []*Rental { return u.rentals }

// HasRentals reports whether the user holds any rentals.
func (u *User) HasRentals() bool { return len(u.rentals) > 0 }

// AddRental appends a rental and returns the new rental count.
func (u *User) AddRental(r *Rental) int {
	u.rentals = append(u.rentals, r)
	return len(u.rentals)
}

// RemoveRental drops a rental by identity.
func (u *User) RemoveRental(id uuid.UUID) {
	for i, r := range u.rentals {
		if r.ID() == id {
			u.rentals = append(u.rentals[:i], u.rentals[i+1:]...)
			return
		}
	}
}

// Charge is the total charge over all of the user's rentals, each
// priced by its movie's category.
func (u *User) Charge() float64 {
	var total float64
	for _, r := range u.rentals {
		total += r.Charge()
	}
	return total
}

// FrequentRenterPoints is the total loyalty score over all of the
// user's rentals.
func (u *User) FrequentRenterPoints() int {
	var total int
	for _, r := range u.rentals {
		total += r.FrequentRenterPoints()
	}
	return total
}
