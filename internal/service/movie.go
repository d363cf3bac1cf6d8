package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/logger"
	"mrs-backend/internal/repository"
)

type movieService struct {
	movies     repository.MovieRepository
	categories *domain.CategoryRegistry
}

func NewMovieService(movies repository.MovieRepository, categories *domain.CategoryRegistry) MovieService {
	return &movieService{movies: movies, categories: categories}
}

func (s *movieService) CreateMovie(ctx context.Context, title string, releaseDate time.Time, categoryID string, ageRating int) (*domain.Movie, error) {
	category, err := s.categories.Lookup(categoryID)
	if err != nil {
		return nil, err
	}
	movie, err := domain.NewMovie(title, releaseDate, category, ageRating)
	if err != nil {
		return nil, err
	}
	movie.SetID(uuid.New())
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	logger.Info("movie created", "movie_id", movie.ID(), "title", movie.Title(), "category", categoryID)
	return movie, nil
}

func (s *movieService) GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	return s.movies.GetByID(ctx, id)
}

func (s *movieService) ListMovies(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.GetAll(ctx)
}

func (s *movieService) ListMoviesByRented(ctx context.Context, rented bool) ([]*domain.Movie, error) {
	return s.movies.GetAllByRented(ctx, rented)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uuid.UUID, title string, releaseDate time.Time, categoryID string, ageRating int) (*domain.Movie, error) {
	existing, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category, err := s.categories.Lookup(categoryID)
	if err != nil {
		return nil, err
	}
	updated, err := domain.RehydrateMovie(id, title, releaseDate, category, ageRating, existing.Rented())
	if err != nil {
		return nil, err
	}
	if err := s.movies.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	movie, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if movie.Rented() {
		return domain.ErrMovieAlreadyRented
	}
	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("movie deleted", "movie_id", id, "title", movie.Title())
	return nil
}
