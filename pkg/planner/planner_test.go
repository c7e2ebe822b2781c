package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/entities"
	"krishi/pkg/knowledge"
	"krishi/pkg/soil"
	"krishi/pkg/weather"
)

func newEngine(t *testing.T) Engine {
	t.Helper()
	cat, err := knowledge.NewCatalog("")
	require.NoError(t, err)
	return New(knowledge.NewBase(cat, nil))
}

func TestMatchCropsScoring(t *testing.T) {
	e := newEngine(t)
	soilData := entities.SoilData{Nitrogen: 120, Phosphorus: 60, Potassium: 80, PH: 7.0}

	t.Run("sorted by score descending", func(t *testing.T) {
		matches := e.MatchCrops(soilData, 7)
		require.NotEmpty(t, matches)
		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].SuitabilityScore, matches[i].SuitabilityScore)
		}
	})

	t.Run("season bonus applied in kharif", func(t *testing.T) {
		kharif := e.MatchCrops(soilData, 7)
		var riceKharif Match
		for _, m := range kharif {
			if m.CropName == "rice" {
				riceKharif = m
			}
		}
		offSeason := e.MatchCrops(soilData, 1)
		var riceOff Match
		for _, m := range offSeason {
			if m.CropName == "rice" {
				riceOff = m
			}
		}
		assert.InDelta(t, 20, riceKharif.SuitabilityScore-riceOff.SuitabilityScore, 0.2)
		assert.Contains(t, riceKharif.Reasons, "Suitable season for planting")
	})

	t.Run("score bounded", func(t *testing.T) {
		for _, m := range e.MatchCrops(soilData, 7) {
			assert.GreaterOrEqual(t, m.SuitabilityScore, 0.0)
			assert.LessOrEqual(t, m.SuitabilityScore, 100.0)
		}
	})
}

func TestRecommend(t *testing.T) {
	e := newEngine(t)
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	in := Input{
		Soil: entities.SoilData{Nitrogen: 120, Phosphorus: 60, Potassium: 80, PH: 7.0},
		Date: date,
	}

	plan := e.Recommend(in)
	require.NotNil(t, plan)
	require.Len(t, plan.RecommendedCrops, 5)
	assert.Equal(t, "rule_based_plus_realtime_api", plan.AnalysisMethod)
	assert.Equal(t, "Weather data unavailable", plan.WeatherContext)

	t.Run("task schedule chronological", func(t *testing.T) {
		for _, rec := range plan.RecommendedCrops {
			require.NotEmpty(t, rec.TaskSchedule)
			assert.Equal(t, "Sowing/Planting", rec.TaskSchedule[0].Task)
			for i := 1; i < len(rec.TaskSchedule); i++ {
				assert.LessOrEqual(t, rec.TaskSchedule[i-1].Date, rec.TaskSchedule[i].Date)
			}
			last := rec.TaskSchedule[len(rec.TaskSchedule)-1]
			assert.Equal(t, "Harvesting", last.Task)
		}
	})

	t.Run("profit uses quintal price and mid yield", func(t *testing.T) {
		cat, err := knowledge.NewCatalog("")
		require.NoError(t, err)
		base := knowledge.NewBase(cat, nil)
		for _, rec := range plan.RecommendedCrops {
			cr, ok := base.StaticOnly(toLowerFirst(rec.CropName))
			require.True(t, ok)
			avg := cr.MarketCalendar.AvgPricePerQuintal
			if avg == 0 {
				avg = 3000
			}
			assert.Equal(t, int(avg*cr.ExpectedYield.Midpoint()), rec.ExpectedProfitPerAcre)
		}
	})

	t.Run("heavy rain forces high risk", func(t *testing.T) {
		wet := e.Recommend(Input{
			Soil:    in.Soil,
			Date:    date,
			Weather: &weather.Snapshot{Rain1h: 12},
		})
		for _, rec := range wet.RecommendedCrops {
			assert.Equal(t, "High (Heavy Rain Alert)", rec.RiskLevel)
		}
		assert.Equal(t, "Weather data integrated", wet.WeatherContext)
	})
}

func TestMergeSoil(t *testing.T) {
	est := &soil.Estimate{Nitrogen: 45, Phosphorus: 30, Potassium: 35, PH: 7.2, SoilType: "Black Soil"}

	t.Run("user values win", func(t *testing.T) {
		out := MergeSoil(entities.SoilData{Nitrogen: 90, PH: 6.5}, est)
		assert.Equal(t, 90.0, out.Nitrogen)
		assert.Equal(t, 6.5, out.PH)
		assert.Equal(t, 30.0, out.Phosphorus)
		assert.Equal(t, "Black Soil", out.SoilType)
	})

	t.Run("defaults when nothing known", func(t *testing.T) {
		out := MergeSoil(entities.SoilData{}, nil)
		assert.Equal(t, entities.SoilData{Nitrogen: 40, Phosphorus: 30, Potassium: 20, PH: 7.0}, out)
	})
}

func toLowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
