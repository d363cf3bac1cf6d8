package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository/memory"
)

func seedUser(t *testing.T, store *memory.Store) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Muster", "Max", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	user.SetID(uuid.New())
	require.NoError(t, store.UserRepository.Create(context.Background(), user))
	return user
}

func seedMovie(t *testing.T, store *memory.Store, title string) *domain.Movie {
	t.Helper()
	movie, err := domain.NewMovie(title, time.Date(1997, 12, 19, 0, 0, 0, 0, time.UTC), domain.Regular, 12)
	require.NoError(t, err)
	movie.SetID(uuid.New())
	require.NoError(t, store.MovieRepository.Create(context.Background(), movie))
	return movie
}

func TestCreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("creates rental and marks movie rented", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		movie := seedMovie(t, store, "Titanic")
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		rental, err := svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, rental.ID())
		assert.True(t, movie.Rented())
		assert.Len(t, user.Rentals(), 1)
	})

	t.Run("rejects future rental date", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		movie := seedMovie(t, store, "Titanic")
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		_, err := svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now().AddDate(0, 0, 1))
		assert.ErrorIs(t, err, domain.ErrRentalDateInFuture)
	})

	t.Run("unknown user", func(t *testing.T) {
		store := memory.NewStore()
		movie := seedMovie(t, store, "Titanic")
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		_, err := svc.CreateRental(ctx, uuid.New(), movie.ID(), time.Now())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unknown movie", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		_, err := svc.CreateRental(ctx, user.ID(), uuid.New(), time.Now())
		assert.ErrorIs(t, err, domain.ErrMovieNotFound)
	})

	t.Run("already rented movie is refused", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		other := seedUser(t, store)
		movie := seedMovie(t, store, "Titanic")
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		_, err := svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
		require.NoError(t, err)

		_, err = svc.CreateRental(ctx, other.ID(), movie.ID(), time.Now())
		assert.ErrorIs(t, err, domain.ErrMovieAlreadyRented)
	})

	t.Run("rental limit enforced when enabled", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 2)

		for i, title := range []string{"Titanic", "Avatar"} {
			movie := seedMovie(t, store, title)
			_, err := svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
			require.NoError(t, err, "rental %d", i)
		}

		third := seedMovie(t, store, "Casablanca")
		_, err := svc.CreateRental(ctx, user.ID(), third.ID(), time.Now())
		assert.ErrorIs(t, err, domain.ErrRentalLimitReached)
		assert.False(t, third.Rented())
	})
}

func TestCreateRentalConcurrent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	movie := seedMovie(t, store, "Titanic")
	svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

	const callers = 20
	users := make([]*domain.User, callers)
	for i := range users {
		users[i] = seedUser(t, store)
	}

	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateRental(ctx, users[i].ID(), movie.ID(), time.Now())
		}(i)
	}
	wg.Wait()

	// Exactly one caller wins the movie, everyone else is refused.
	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrMovieAlreadyRented)
		}
	}
	assert.Equal(t, 1, wins)

	rentals, err := store.RentalRepository.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestCreateRentalRollsBackOnStoreFailure(t *testing.T) {
	ctx := context.Background()

	user, err := domain.NewUser("Muster", "Max", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	user.SetID(uuid.New())
	movie, err := domain.NewMovie("Titanic", time.Date(1997, 12, 19, 0, 0, 0, 0, time.UTC), domain.Regular, 12)
	require.NoError(t, err)
	movie.SetID(uuid.New())

	movies := new(MockMovieRepository)
	users := new(MockUserRepository)
	rentals := new(MockRentalRepository)

	users.On("GetByID", ctx, user.ID()).Return(user, nil)
	movies.On("GetByID", ctx, movie.ID()).Return(movie, nil)
	movies.On("MarkRented", ctx, movie.ID()).Return(true, nil)
	rentals.On("Create", ctx, mock.Anything).Return(errors.New("insert failed"))
	movies.On("MarkAvailable", ctx, movie.ID()).Return(nil)

	svc := NewRentalService(rentals, movies, users, 0)
	_, err = svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
	require.Error(t, err)

	// The availability flip must be rolled back.
	movies.AssertCalled(t, "MarkAvailable", ctx, movie.ID())
}

func TestDeleteRental(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the movie to the shelf", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		movie := seedMovie(t, store, "Titanic")
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		rental, err := svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
		require.NoError(t, err)
		require.True(t, movie.Rented())

		require.NoError(t, svc.DeleteRental(ctx, rental.ID()))
		assert.False(t, movie.Rented())
		assert.Empty(t, user.Rentals())

		// The movie is rentable again.
		_, err = svc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
		assert.NoError(t, err)
	})

	t.Run("unknown rental", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)

		err := svc.DeleteRental(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}
