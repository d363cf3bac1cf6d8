package repository

import (
	"context"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *domain.Movie) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	GetAll(ctx context.Context) ([]*domain.Movie, error)
	GetAllByRented(ctx context.Context, rented bool) ([]*domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error

	// MarkRented atomically flips the movie from available to rented
	// and reports whether this caller won the flip. It is the
	// compare-and-swap that makes rental creation safe under
	// concurrent requests for the same movie.
	MarkRented(ctx context.Context, id uuid.UUID) (bool, error)
	// MarkAvailable flips the movie back to available.
	MarkAvailable(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	GetAll(ctx context.Context) ([]*domain.Rental, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Rental, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
