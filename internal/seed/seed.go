// Package seed loads demo movies and users from semicolon-delimited
// CSV files, matching the data files shipped with the original shop.
package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/repository"
)

const dateLayout = "2006-01-02"

// Loader seeds repositories and the stock ledger from CSV files.
type Loader struct {
	movies     repository.MovieRepository
	users      repository.UserRepository
	rentals    repository.RentalRepository
	stock      *domain.Stock
	categories *domain.CategoryRegistry
}

func NewLoader(
	movies repository.MovieRepository,
	users repository.UserRepository,
	rentals repository.RentalRepository,
	stock *domain.Stock,
	categories *domain.CategoryRegistry,
) *Loader {
	return &Loader{movies: movies, users: users, rentals: rentals, stock: stock, categories: categories}
}

// Load reads movies.csv, users.csv and rentals.csv from dir. Each file
// is optional. Every seeded movie also puts one copy on the shelf.
func (l *Loader) Load(ctx context.Context, dir string) error {
	moviesPath := filepath.Join(dir, "movies.csv")
	if _, err := os.Stat(moviesPath); err == nil {
		n, err := l.loadMovies(ctx, moviesPath)
		if err != nil {
			return fmt.Errorf("failed to seed movies: %w", err)
		}
		logger.Info("seeded movies", "count", n, "file", moviesPath)
	}

	usersPath := filepath.Join(dir, "users.csv")
	if _, err := os.Stat(usersPath); err == nil {
		n, err := l.loadUsers(ctx, usersPath)
		if err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		logger.Info("seeded users", "count", n, "file", usersPath)
	}

	rentalsPath := filepath.Join(dir, "rentals.csv")
	if _, err := os.Stat(rentalsPath); err == nil {
		n, err := l.loadRentals(ctx, rentalsPath)
		if err != nil {
			return fmt.Errorf("failed to seed rentals: %w", err)
		}
		logger.Info("seeded rentals", "count", n, "file", rentalsPath)
	}

	return nil
}

// loadMovies expects the header Title;ReleaseDate;PriceCategory;AgeRating.
func (l *Loader) loadMovies(ctx context.Context, path string) (int, error) {
	records, err := readRecords(path, 4)
	if err != nil {
		return 0, err
	}

	count := 0
	for i, rec := range records {
		releaseDate, err := time.Parse(dateLayout, rec[1])
		if err != nil {
			return count, fmt.Errorf("row %d: invalid release date %q: %w", i+1, rec[1], err)
		}
		ageRating, err := strconv.Atoi(rec[3])
		if err != nil {
			return count, fmt.Errorf("row %d: invalid age rating %q: %w", i+1, rec[3], err)
		}
		category, err := l.categories.Lookup(rec[2])
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}

		movie, err := domain.NewMovie(rec[0], releaseDate, category, ageRating)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		movie.SetID(uuid.New())
		if err := l.movies.Create(ctx, movie); err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		l.stock.AddToStock(movie)
		count++
	}
	return count, nil
}

// loadUsers expects the header Name;FirstName;Birthdate.
func (l *Loader) loadUsers(ctx context.Context, path string) (int, error) {
	records, err := readRecords(path, 3)
	if err != nil {
		return 0, err
	}

	count := 0
	for i, rec := range records {
		birthdate, err := time.Parse(dateLayout, rec[2])
		if err != nil {
			return count, fmt.Errorf("row %d: invalid birthdate %q: %w", i+1, rec[2], err)
		}

		user, err := domain.NewUser(rec[0], rec[1], birthdate)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		user.SetID(uuid.New())
		if err := l.users.Create(ctx, user); err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		count++
	}
	return count, nil
}

// loadRentals expects the header UserName;MovieTitle;RentalDate. Seed
// rows reference entities by name and title because ids are generated
// at load time. The referenced movie is taken off the shelf.
func (l *Loader) loadRentals(ctx context.Context, path string) (int, error) {
	records, err := readRecords(path, 3)
	if err != nil {
		return 0, err
	}

	count := 0
	for i, rec := range records {
		user, err := l.users.GetByName(ctx, rec[0])
		if err != nil {
			return count, fmt.Errorf("row %d: user %q: %w", i+1, rec[0], err)
		}
		movie, err := l.movieByTitle(ctx, rec[1])
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		rentalDate, err := time.Parse(dateLayout, rec[2])
		if err != nil {
			return count, fmt.Errorf("row %d: invalid rental date %q: %w", i+1, rec[2], err)
		}

		won, err := l.movies.MarkRented(ctx, movie.ID())
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		if !won {
			return count, fmt.Errorf("row %d: %w: %s", i+1, domain.ErrMovieAlreadyRented, rec[1])
		}

		rental, err := domain.NewRental(user, movie, rentalDate)
		if err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		rental.SetID(uuid.New())
		if err := l.rentals.Create(ctx, rental); err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		if _, err := l.stock.RemoveFromStock(movie); err != nil {
			return count, fmt.Errorf("row %d: %w", i+1, err)
		}
		count++
	}
	return count, nil
}

func (l *Loader) movieByTitle(ctx context.Context, title string) (*domain.Movie, error) {
	movies, err := l.movies.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range movies {
		if m.Title() == title {
			return m, nil
		}
	}
	return nil, fmt.Errorf("movie %q: %w", title, domain.ErrMovieNotFound)
}

// readRecords reads a semicolon-delimited CSV, skipping the header row.
func readRecords(path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.FieldsPerRecord = fields

	// Header row.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	return reader.ReadAll()
}
