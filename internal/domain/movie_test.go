package domain

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMovieValidation(t *testing.T) {
	release := time.Date(2009, 12, 17, 0, 0, 0, 0, time.UTC)

	t.Run("Valid", func(t *testing.T) {
		m, err := NewMovie("Avatar", release, NewRelease, 12)
		require.NoError(t, err)
		assert.Equal(t, "Avatar", m.Title())
		assert.Equal(t, NewRelease, m.Category())
		assert.Equal(t, 12, m.AgeRating())
		assert.False(t, m.Rented())
	})

	t.Run("Empty title", func(t *testing.T) {
		_, err := NewMovie("", release, Regular, 0)
		assert.True(t, IsValidation(err))
	})

	t.Run("Overlong title", func(t *testing.T) {
		_, err := NewMovie(strings.Repeat("x", MaxTitleLength+1), release, Regular, 0)
		assert.True(t, IsValidation(err))
	})

	t.Run("Missing category", func(t *testing.T) {
		_, err := NewMovie("Avatar", release, nil, 0)
		assert.True(t, IsValidation(err))
	})

	t.Run("Negative age rating", func(t *testing.T) {
		_, err := NewMovie("Avatar", release, Regular, -1)
		assert.True(t, IsValidation(err))
	})
}

func TestMovieIDAssignedOnce(t *testing.T) {
	m, err := NewMovie("Avatar", time.Now(), Regular, 0)
	require.NoError(t, err)

	id := uuid.New()
	m.SetID(id)
	assert.Equal(t, id, m.ID())

	assert.Panics(t, func() { m.SetID(uuid.New()) })
}

func TestMovieMarkRentedIsCompareAndSwap(t *testing.T) {
	m, err := NewMovie("Avatar", time.Now(), Regular, 0)
	require.NoError(t, err)

	assert.True(t, m.MarkRented())
	assert.False(t, m.MarkRented())
	assert.True(t, m.Rented())

	m.MarkAvailable()
	assert.False(t, m.Rented())
	assert.True(t, m.MarkRented())
}

func TestMovieMarkRentedUnderContention(t *testing.T) {
	m, err := NewMovie("Avatar", time.Now(), Regular, 0)
	require.NoError(t, err)

	const n = 50
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.MarkRented() {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)
	assert.Len(t, wins, 1)
}
