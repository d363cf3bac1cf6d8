package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository/memory"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	birthdate := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("create and fetch by name", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewUserService(store.UserRepository, store.RentalRepository)

		user, err := svc.CreateUser(ctx, "Muster", "Max", birthdate)
		require.NoError(t, err)

		got, err := svc.GetUserByName(ctx, "Muster")
		require.NoError(t, err)
		assert.Equal(t, user.ID(), got.ID())
	})

	t.Run("create rejects invalid name", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewUserService(store.UserRepository, store.RentalRepository)

		_, err := svc.CreateUser(ctx, "", "Max", birthdate)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("delete refuses user with rentals", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		movie := seedMovie(t, store, "Titanic")
		rentalSvc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)
		svc := NewUserService(store.UserRepository, store.RentalRepository)

		rental, err := rentalSvc.CreateRental(ctx, user.ID(), movie.ID(), time.Now())
		require.NoError(t, err)

		err = svc.DeleteUser(ctx, user.ID())
		assert.ErrorIs(t, err, domain.ErrUserHasRentals)

		// Returning the movie clears the way.
		require.NoError(t, rentalSvc.DeleteRental(ctx, rental.ID()))
		assert.NoError(t, svc.DeleteUser(ctx, user.ID()))
	})

	t.Run("statement totals active rentals", func(t *testing.T) {
		store := memory.NewStore()
		user := seedUser(t, store)
		rentalSvc := NewRentalService(store.RentalRepository, store.MovieRepository, store.UserRepository, 0)
		svc := NewUserService(store.UserRepository, store.RentalRepository)

		threeDaysAgo := time.Now().AddDate(0, 0, -3)
		for _, title := range []string{"Titanic", "Avatar"} {
			movie := seedMovie(t, store, title)
			_, err := rentalSvc.CreateRental(ctx, user.ID(), movie.ID(), threeDaysAgo)
			require.NoError(t, err)
		}

		st, err := svc.GetStatement(ctx, user.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, st.Rentals)
		// Two regular 3-day rentals: 2 * (2.0 + 1.5) = 7.0, one point each.
		assert.InDelta(t, 7.0, st.Charge, 1e-10)
		assert.Equal(t, 2, st.FrequentRenterPoints)
	})

	t.Run("statement for unknown user", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewUserService(store.UserRepository, store.RentalRepository)

		_, err := svc.GetStatement(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
