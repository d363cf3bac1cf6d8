package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1.0e-10

func TestRegularCharge(t *testing.T) {
	assert.InDelta(t, 0.0, Regular.Charge(-3), tolerance)
	assert.InDelta(t, 0.0, Regular.Charge(0), tolerance)
	assert.InDelta(t, 2.0, Regular.Charge(1), tolerance)
	assert.InDelta(t, 2.0, Regular.Charge(2), tolerance)
	assert.InDelta(t, 3.5, Regular.Charge(3), tolerance)
	assert.InDelta(t, 5.0, Regular.Charge(4), tolerance)
	assert.InDelta(t, 32.0, Regular.Charge(22), tolerance)
}

func TestRegularFrequentRenterPoints(t *testing.T) {
	assert.Equal(t, 0, Regular.FrequentRenterPoints(-1))
	assert.Equal(t, 0, Regular.FrequentRenterPoints(0))
	assert.Equal(t, 1, Regular.FrequentRenterPoints(1))
	assert.Equal(t, 1, Regular.FrequentRenterPoints(50))
}

func TestRegularString(t *testing.T) {
	assert.Equal(t, "Regular", Regular.String())
}

func TestNewReleaseCharge(t *testing.T) {
	assert.InDelta(t, 0.0, NewRelease.Charge(-5), tolerance)
	assert.InDelta(t, 0.0, NewRelease.Charge(0), tolerance)
	assert.InDelta(t, 3.0, NewRelease.Charge(1), tolerance)
	assert.InDelta(t, 6.0, NewRelease.Charge(2), tolerance)
	assert.InDelta(t, 66.0, NewRelease.Charge(22), tolerance)
}

func TestNewReleaseFrequentRenterPoints(t *testing.T) {
	assert.Equal(t, 0, NewRelease.FrequentRenterPoints(-3))
	assert.Equal(t, 0, NewRelease.FrequentRenterPoints(0))
	assert.Equal(t, 1, NewRelease.FrequentRenterPoints(1))
	assert.Equal(t, 2, NewRelease.FrequentRenterPoints(2))
	assert.Equal(t, 2, NewRelease.FrequentRenterPoints(50))
}

func TestNewReleaseString(t *testing.T) {
	assert.Equal(t, "New Release", NewRelease.String())
}

func TestCategoryRegistry(t *testing.T) {
	reg := DefaultCategoryRegistry()

	t.Run("Lookup known categories", func(t *testing.T) {
		pc, err := reg.Lookup(CategoryRegular)
		assert.NoError(t, err)
		assert.Equal(t, Regular, pc)

		pc, err = reg.Lookup(CategoryNewRelease)
		assert.NoError(t, err)
		assert.Equal(t, NewRelease, pc)
	})

	t.Run("Unknown identifier", func(t *testing.T) {
		_, err := reg.Lookup("Children")
		assert.True(t, errors.Is(err, ErrUnknownCategory))
	})

	t.Run("Shared instances", func(t *testing.T) {
		a, _ := reg.Lookup(CategoryRegular)
		b, _ := reg.Lookup(CategoryRegular)
		assert.Equal(t, a, b)
	})
}
