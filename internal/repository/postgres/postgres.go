package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.MovieRepository
	repository.UserRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB, categories *domain.CategoryRegistry) *Store {
	movies := NewMovieRepository(db, categories)
	users := NewUserRepository(db)
	return &Store{
		db:               db,
		MovieRepository:  movies,
		UserRepository:   users,
		RentalRepository: NewRentalRepository(db, movies, users),
	}
}
