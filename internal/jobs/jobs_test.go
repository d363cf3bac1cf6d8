package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrs-backend/internal/config"
	"mrs-backend/internal/domain"
	"mrs-backend/internal/repository/memory"
)

type fakeEmailService struct {
	mu      sync.Mutex
	alerts  []string
	reports []string
}

func (f *fakeEmailService) SendLowStockAlert(ctx context.Context, title string, remaining int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, title)
	return nil
}

func (f *fakeEmailService) SendOverdueRentalsReport(ctx context.Context, report string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Rental: config.RentalConfig{OverdueAfterDays: 14},
		Stock:  config.StockConfig{EmailThreshold: 1},
	}
}

func seedRental(t *testing.T, store *memory.Store, daysAgo int) {
	t.Helper()
	ctx := context.Background()

	user, err := domain.NewUser("Muster", "Max", time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	user.SetID(uuid.New())
	require.NoError(t, store.UserRepository.Create(ctx, user))

	movie, err := domain.NewMovie("Titanic", time.Date(1997, 12, 19, 0, 0, 0, 0, time.UTC), domain.Regular, 12)
	require.NoError(t, err)
	movie.SetID(uuid.New())
	require.NoError(t, store.MovieRepository.Create(ctx, movie))

	rental, err := domain.NewRental(user, movie, time.Now().AddDate(0, 0, -daysAgo))
	require.NoError(t, err)
	rental.SetID(uuid.New())
	require.NoError(t, store.RentalRepository.Create(ctx, rental))
}

func TestSendOverdueRentalsReport(t *testing.T) {
	t.Run("reports rentals past the overdue age", func(t *testing.T) {
		store := memory.NewStore()
		seedRental(t, store, 20)
		email := &fakeEmailService{}

		jr := NewJobRunner(store.RentalRepository, store.MovieRepository, domain.NewStock(), email, testConfig())
		jr.SendOverdueRentalsReport()

		require.Len(t, email.reports, 1)
		assert.Contains(t, email.reports[0], "Titanic")
		assert.Contains(t, email.reports[0], "Muster")
	})

	t.Run("skips recent rentals", func(t *testing.T) {
		store := memory.NewStore()
		seedRental(t, store, 3)
		email := &fakeEmailService{}

		jr := NewJobRunner(store.RentalRepository, store.MovieRepository, domain.NewStock(), email, testConfig())
		jr.SendOverdueRentalsReport()

		assert.Empty(t, email.reports)
	})
}

func TestSendLowStockReport(t *testing.T) {
	store := memory.NewStore()
	email := &fakeEmailService{}

	stock := domain.NewStock()
	lowMovie, err := domain.NewMovie("Titanic", time.Date(1997, 12, 19, 0, 0, 0, 0, time.UTC), domain.Regular, 12)
	require.NoError(t, err)
	stock.AddToStock(lowMovie)

	plentiful, err := domain.NewMovie("Avatar", time.Date(2009, 12, 17, 0, 0, 0, 0, time.UTC), domain.Regular, 12)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		stock.AddToStock(plentiful)
	}

	jr := NewJobRunner(store.RentalRepository, store.MovieRepository, stock, email, testConfig())
	jr.SendLowStockReport()

	assert.Equal(t, []string{"Titanic"}, email.alerts)
}
