package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository"
)

type movieRepository struct {
	db         *sql.DB
	categories *domain.CategoryRegistry
}

func NewMovieRepository(db *sql.DB, categories *domain.CategoryRegistry) repository.MovieRepository {
	return &movieRepository{db: db, categories: categories}
}

func (r *movieRepository) Create(ctx context.Context, m *domain.Movie) error {
	query := `INSERT INTO movies (id, title, release_date, price_category, age_rating, rented, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, m.ID(), m.Title(), m.ReleaseDate(), m.Category().String(), m.AgeRating(), m.Rented(), time.Now())
	return err
}

func (r *movieRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	query := `SELECT id, title, release_date, price_category, age_rating, rented FROM movies WHERE id = $1`
	m, err := r.scanMovie(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrMovieNotFound
	}
	return m, err
}

func (r *movieRepository) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT id, title, release_date, price_category, age_rating, rented FROM movies ORDER BY title`
	return r.queryMovies(ctx, query)
}

func (r *movieRepository) GetAllByRented(ctx context.Context, rented bool) ([]*domain.Movie, error) {
	query := `SELECT id, title, release_date, price_category, age_rating, rented FROM movies WHERE rented = $1 ORDER BY title`
	return r.queryMovies(ctx, query, rented)
}

func (r *movieRepository) Update(ctx context.Context, m *domain.Movie) error {
	query := `UPDATE movies SET title=$1, release_date=$2, price_category=$3, age_rating=$4, rented=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, m.Title(), m.ReleaseDate(), m.Category().String(), m.AgeRating(), m.Rented(), m.ID())
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrMovieNotFound)
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrMovieNotFound)
}

// MarkRented is the availability compare-and-swap: the conditional
// update succeeds for exactly one of any number of concurrent callers,
// even across processes sharing the database.
func (r *movieRepository) MarkRented(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE movies SET rented = TRUE WHERE id = $1 AND NOT rented`, id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		// lost the race or unknown id; let the caller distinguish
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (r *movieRepository) MarkAvailable(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE movies SET rented = FALSE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, domain.ErrMovieNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *movieRepository) scanMovie(row rowScanner) (*domain.Movie, error) {
	var (
		id          uuid.UUID
		title       string
		releaseDate time.Time
		categoryID  string
		ageRating   int
		rented      bool
	)
	if err := row.Scan(&id, &title, &releaseDate, &categoryID, &ageRating, &rented); err != nil {
		return nil, err
	}
	category, err := r.categories.Lookup(categoryID)
	if err != nil {
		return nil, fmt.Errorf("movie %s: %w", id, err)
	}
	return domain.RehydrateMovie(id, title, releaseDate, category, ageRating, rented)
}

func (r *movieRepository) queryMovies(ctx context.Context, query string, args ...any) ([]*domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []*domain.Movie
	for rows.Next() {
		m, err := r.scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, rows.Err()
}

func checkAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
