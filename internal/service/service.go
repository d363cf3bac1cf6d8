package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
)

type MovieService interface {
	CreateMovie(ctx context.Context, title string, releaseDate time.Time, categoryID string, ageRating int) (*domain.Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	ListMovies(ctx context.Context) ([]*domain.Movie, error)
	ListMoviesByRented(ctx context.Context, rented bool) ([]*domain.Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, title string, releaseDate time.Time, categoryID string, ageRating int) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
}

type UserService interface {
	CreateUser(ctx context.Context, name, firstName string, birthdate time.Time) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByName(ctx context.Context, name string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, name, firstName string, birthdate time.Time) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	// GetStatement totals the user's current charge and frequent
	// renter points over all active rentals.
	GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error)
}

// Statement summarizes what a user currently owes and has earned.
type Statement struct {
	Charge               float64
	FrequentRenterPoints int
	Rentals              int
}

type RentalService interface {
	// CreateRental records a rental after checking that the user and
	// movie exist, the movie is available and the date is not in the
	// future. Precondition failures come back as domain sentinel
	// errors; exactly one of any number of concurrent calls for the
	// same movie succeeds.
	CreateRental(ctx context.Context, userID, movieID uuid.UUID, rentalDate time.Time) (*domain.Rental, error)
	// DeleteRental returns the movie to the shelf and removes the
	// rental. A missing rental is domain.ErrRentalNotFound.
	DeleteRental(ctx context.Context, id uuid.UUID) error
	GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]*domain.Rental, error)
}

type StockService interface {
	// AddCopy adds one copy of the movie and returns the new count.
	AddCopy(ctx context.Context, movieID uuid.UUID) (int, error)
	// RemoveCopy removes one copy, returning domain.ErrOutOfStock when
	// none is left. Low-stock listeners fire before it returns.
	RemoveCopy(ctx context.Context, movieID uuid.UUID) (int, error)
	InStock(ctx context.Context, title string) int
}

type EmailService interface {
	SendLowStockAlert(ctx context.Context, title string, remaining int) error
	SendOverdueRentalsReport(ctx context.Context, report string) error
}
