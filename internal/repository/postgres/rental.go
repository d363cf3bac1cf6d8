package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository"
)

type rentalRepository struct {
	db     *sql.DB
	movies repository.MovieRepository
	users  repository.UserRepository
}

func NewRentalRepository(db *sql.DB, movies repository.MovieRepository, users repository.UserRepository) repository.RentalRepository {
	return &rentalRepository{db: db, movies: movies, users: users}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (id, user_id, movie_id, rental_date, created_on) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, rental.ID(), rental.User().ID(), rental.Movie().ID(), rental.RentalDate(), time.Now())
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	query := `SELECT id, user_id, movie_id, rental_date FROM rentals WHERE id = $1`
	rental, err := r.scanRental(ctx, r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	return rental, err
}

func (r *rentalRepository) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	query := `SELECT id, user_id, movie_id, rental_date FROM rentals ORDER BY created_on`
	return r.queryRentals(ctx, query)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Rental, error) {
	query := `SELECT id, user_id, movie_id, rental_date FROM rentals WHERE user_id = $1 ORDER BY created_on`
	return r.queryRentals(ctx, query, userID)
}

func (r *rentalRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *rentalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrRentalNotFound)
}

// scanRental rebuilds the rental together with the user and movie it
// references.
func (r *rentalRepository) scanRental(ctx context.Context, row rowScanner) (*domain.Rental, error) {
	var (
		id         uuid.UUID
		userID     uuid.UUID
		movieID    uuid.UUID
		rentalDate time.Time
	)
	if err := row.Scan(&id, &userID, &movieID, &rentalDate); err != nil {
		return nil, err
	}
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	movie, err := r.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	return domain.RehydrateRental(id, user, movie, rentalDate)
}

func (r *rentalRepository) queryRentals(ctx context.Context, query string, args ...any) ([]*domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []*domain.Rental
	for rows.Next() {
		rental, err := r.scanRental(ctx, rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}
