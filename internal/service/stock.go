package service

import (
	"context"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository"
)

type stockService struct {
	stock  *domain.Stock
	movies repository.MovieRepository
}

// NewStockService exposes the shop-floor stock ledger. Copy counts are
// process-local and are not persisted.
func NewStockService(stock *domain.Stock, movies repository.MovieRepository) StockService {
	return &stockService{stock: stock, movies: movies}
}

func (s *stockService) AddCopy(ctx context.Context, movieID uuid.UUID) (int, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return 0, err
	}
	return s.stock.AddToStock(movie), nil
}

func (s *stockService) RemoveCopy(ctx context.Context, movieID uuid.UUID) (int, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return 0, err
	}
	return s.stock.RemoveFromStock(movie)
}

func (s *stockService) InStock(ctx context.Context, title string) int {
	return s.stock.InStock(title)
}
