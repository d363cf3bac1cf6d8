// Package memory provides an in-process implementation of the
// repositories, holding the canonical entity graph in maps. It backs
// demo mode and tests, mirroring what the simple (non-database)
// service implementation of the original system did.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository"
)

// data is the shared entity graph. The mutex serializes map access;
// the availability flip itself delegates to the movie's own
// compare-and-swap so contention for one movie resolves to a single
// winner.
type data struct {
	mu      sync.RWMutex
	movies  map[uuid.UUID]*domain.Movie
	users   map[uuid.UUID]*domain.User
	rentals map[uuid.UUID]*domain.Rental
	order   []uuid.UUID // rental insertion order
}

// Store bundles the in-memory repositories over one entity graph.
type Store struct {
	repository.MovieRepository
	repository.UserRepository
	repository.RentalRepository
}

func NewStore() *Store {
	d := &data{
		movies:  make(map[uuid.UUID]*domain.Movie),
		users:   make(map[uuid.UUID]*domain.User),
		rentals: make(map[uuid.UUID]*domain.Rental),
	}
	return &Store{
		MovieRepository:  &movieStore{d: d},
		UserRepository:   &userStore{d: d},
		RentalRepository: &rentalStore{d: d},
	}
}

type movieStore struct{ d *data }

func (s *movieStore) Create(ctx context.Context, movie *domain.Movie) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.movies[movie.ID()] = movie
	return nil
}

func (s *movieStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	m, ok := s.d.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	return m, nil
}

func (s *movieStore) GetAll(ctx context.Context) ([]*domain.Movie, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	out := make([]*domain.Movie, 0, len(s.d.movies))
	for _, m := range s.d.movies {
		out = append(out, m)
	}
	return out, nil
}

func (s *movieStore) GetAllByRented(ctx context.Context, rented bool) ([]*domain.Movie, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	var out []*domain.Movie
	for _, m := range s.d.movies {
		if m.Rented() == rented {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *movieStore) Update(ctx context.Context, movie *domain.Movie) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.movies[movie.ID()]; !ok {
		return domain.ErrMovieNotFound
	}
	s.d.movies[movie.ID()] = movie
	return nil
}

func (s *movieStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.movies[id]; !ok {
		return domain.ErrMovieNotFound
	}
	delete(s.d.movies, id)
	return nil
}

func (s *movieStore) MarkRented(ctx context.Context, id uuid.UUID) (bool, error) {
	s.d.mu.RLock()
	m, ok := s.d.movies[id]
	s.d.mu.RUnlock()
	if !ok {
		return false, domain.ErrMovieNotFound
	}
	return m.MarkRented(), nil
}

func (s *movieStore) MarkAvailable(ctx context.Context, id uuid.UUID) error {
	s.d.mu.RLock()
	m, ok := s.d.movies[id]
	s.d.mu.RUnlock()
	if !ok {
		return domain.ErrMovieNotFound
	}
	m.MarkAvailable()
	return nil
}

type userStore struct{ d *data }

func (s *userStore) Create(ctx context.Context, user *domain.User) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.users[user.ID()] = user
	return nil
}

func (s *userStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	u, ok := s.d.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *userStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	for _, u := range s.d.users {
		if u.Name() == name {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *userStore) GetAll(ctx context.Context) ([]*domain.User, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	out := make([]*domain.User, 0, len(s.d.users))
	for _, u := range s.d.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *userStore) Update(ctx context.Context, user *domain.User) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.users[user.ID()]; !ok {
		return domain.ErrUserNotFound
	}
	s.d.users[user.ID()] = user
	return nil
}

func (s *userStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	if _, ok := s.d.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.d.users, id)
	return nil
}

type rentalStore struct{ d *data }

func (s *rentalStore) Create(ctx context.Context, rental *domain.Rental) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	s.d.rentals[rental.ID()] = rental
	s.d.order = append(s.d.order, rental.ID())
	rental.User().AddRental(rental)
	return nil
}

func (s *rentalStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	r, ok := s.d.rentals[id]
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	return r, nil
}

func (s *rentalStore) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	out := make([]*domain.Rental, 0, len(s.d.rentals))
	for _, id := range s.d.order {
		if r, ok := s.d.rentals[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *rentalStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Rental, error) {
	s.d.mu.RLock()
	defer s.d.mu.RUnlock()
	var out []*domain.Rental
	for _, id := range s.d.order {
		if r, ok := s.d.rentals[id]; ok && r.User().ID() == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *rentalStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	rentals, err := s.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(rentals), nil
}

func (s *rentalStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.d.mu.Lock()
	defer s.d.mu.Unlock()
	r, ok := s.d.rentals[id]
	if !ok {
		return domain.ErrRentalNotFound
	}
	delete(s.d.rentals, id)
	for i, oid := range s.d.order {
		if oid == id {
			s.d.order = append(s.d.order[:i], s.d.order[i+1:]...)
			break
		}
	}
	r.User().RemoveRental(id)
	return nil
}
