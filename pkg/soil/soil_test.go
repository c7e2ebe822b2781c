package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	s := NewService()

	t.Run("maharashtra bounding box", func(t *testing.T) {
		est := s.Estimate(18.5, 74.0)
		require.NotNil(t, est)
		assert.Equal(t, "Black Soil", est.SoilType)
		assert.Equal(t, 45.0, est.Nitrogen)
		assert.Equal(t, "estimated", est.Source)
	})

	t.Run("punjab bounding box", func(t *testing.T) {
		est := s.Estimate(30.5, 75.0)
		assert.Equal(t, "Alluvial Soil", est.SoilType)
		assert.Equal(t, 7.5, est.PH)
	})

	t.Run("unknown region falls back to defaults", func(t *testing.T) {
		est := s.Estimate(48.85, 2.35)
		require.NotNil(t, est)
		assert.Equal(t, "Mixed Soil", est.SoilType)
		assert.Equal(t, "default", est.Source)
	})

	t.Run("coordinates echoed back", func(t *testing.T) {
		est := s.Estimate(18.5, 74.0)
		assert.Equal(t, 18.5, est.Coordinates.Latitude)
		assert.Equal(t, 74.0, est.Coordinates.Longitude)
	})
}
