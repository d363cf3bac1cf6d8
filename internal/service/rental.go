package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/repository"
)

type rentalService struct {
	rentals repository.RentalRepository
	movies  repository.MovieRepository
	users   repository.UserRepository

	// maxRentalsPerUser > 0 enables the rental limit policy. The
	// limit exists as domain.MaxRentableMovies but was never enforced
	// in the original system, so it stays opt-in.
	maxRentalsPerUser int
}

func NewRentalService(
	rentals repository.RentalRepository,
	movies repository.MovieRepository,
	users repository.UserRepository,
	maxRentalsPerUser int,
) RentalService {
	return &rentalService{
		rentals:           rentals,
		movies:            movies,
		users:             users,
		maxRentalsPerUser: maxRentalsPerUser,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, userID, movieID uuid.UUID, rentalDate time.Time) (*domain.Rental, error) {
	if startOfDay(rentalDate).After(startOfDay(time.Now())) {
		return nil, domain.ErrRentalDateInFuture
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if s.maxRentalsPerUser > 0 {
		count, err := s.rentals.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= s.maxRentalsPerUser {
			return nil, domain.ErrRentalLimitReached
		}
	}

	// The availability check and the flip to rented are one
	// compare-and-swap owned by the repository: of N concurrent
	// callers racing for this movie, exactly one gets true.
	won, err := s.movies.MarkRented(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, domain.ErrMovieAlreadyRented
	}

	rental, err := domain.NewRental(user, movie, rentalDate)
	if err != nil {
		s.release(ctx, movieID)
		return nil, err
	}
	rental.SetID(uuid.New())
	if err := s.rentals.Create(ctx, rental); err != nil {
		s.release(ctx, movieID)
		return nil, err
	}

	logger.Info("rental created", "rental_id", rental.ID(), "user_id", userID, "movie_id", movieID)
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id uuid.UUID) error {
	rental, err := s.rentals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.rentals.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.movies.MarkAvailable(ctx, rental.Movie().ID()); err != nil {
		return err
	}
	logger.Info("rental returned", "rental_id", id, "movie_id", rental.Movie().ID(), "days", rental.Days())
	return nil
}

func (s *rentalService) GetRental(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	return s.rentals.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentals.GetAll(ctx)
}

// release rolls the availability flip back after a failed create.
func (s *rentalService) release(ctx context.Context, movieID uuid.UUID) {
	if err := s.movies.MarkAvailable(ctx, movieID); err != nil {
		logger.Error("failed to release movie after aborted rental", "movie_id", movieID, "error", err)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
