package agro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krishi/entities"
)

func TestNPKRangeScore(t *testing.T) {
	req := entities.Range{Min: 100, Max: 150}

	t.Run("midpoint scores one", func(t *testing.T) {
		assert.InDelta(t, 1.0, NPKRangeScore(125, req, DefaultNPKTolerance), 1e-9)
	})

	t.Run("in-band score floors at 0.7", func(t *testing.T) {
		// 85 is inside the widened band (85..172.5) but far from the midpoint.
		assert.InDelta(t, 0.7, NPKRangeScore(85, req, DefaultNPKTolerance), 1e-9)
	})

	t.Run("below the band falls off toward zero", func(t *testing.T) {
		score := NPKRangeScore(40, req, DefaultNPKTolerance)
		assert.Greater(t, score, 0.0)
		assert.Less(t, score, 0.7)
		assert.Zero(t, NPKRangeScore(0, req, DefaultNPKTolerance))
	})

	t.Run("far above the band clamps at zero", func(t *testing.T) {
		assert.Zero(t, NPKRangeScore(400, req, DefaultNPKTolerance))
	})
}

func TestSeasonSuitable(t *testing.T) {
	assert.True(t, SeasonSuitable([]string{"Kharif (June-October)"}, 7))
	assert.False(t, SeasonSuitable([]string{"Kharif (June-October)"}, 12))
	assert.True(t, SeasonSuitable([]string{"Rabi (October-March)"}, 11))
	assert.True(t, SeasonSuitable([]string{"Year-round"}, 5))
	assert.False(t, SeasonSuitable(nil, 6))
}

func TestHaversineKm(t *testing.T) {
	t.Run("same point is zero", func(t *testing.T) {
		assert.Zero(t, HaversineKm(18.5, 74.0, 18.5, 74.0))
	})

	t.Run("Pune to Mumbai roughly 120km", func(t *testing.T) {
		d := HaversineKm(18.5204, 73.8567, 19.0760, 72.8777)
		assert.InDelta(t, 120, d, 10)
	})
}

func TestMonthsToNearestPeak(t *testing.T) {
	assert.Equal(t, 0, MonthsToNearestPeak(4, []int{3, 4, 5}))
	assert.Equal(t, 1, MonthsToNearestPeak(2, []int{3, 4, 5}))
	assert.Equal(t, 3, MonthsToNearestPeak(8, []int{3, 4, 5}))
	// Cyclic distance: December to a January peak is one month.
	assert.Equal(t, 1, MonthsToNearestPeak(12, []int{1}))
	assert.Equal(t, 0, MonthsToNearestPeak(6, nil))
}
