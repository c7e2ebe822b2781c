package harvest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"krishi/pkg/knowledge"
)

func newEngine(t *testing.T) Engine {
	t.Helper()
	cat, err := knowledge.NewCatalog("")
	require.NoError(t, err)
	return New(knowledge.NewBase(cat, nil))
}

var now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestPredict(t *testing.T) {
	e := newEngine(t)

	t.Run("unknown crop", func(t *testing.T) {
		p, nf := e.Predict(Input{CropName: "banana"})
		assert.Nil(t, p)
		require.NotNil(t, nf)
	})

	t.Run("predicted date is sowing plus maturity", func(t *testing.T) {
		p, nf := e.Predict(Input{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Good", WaterStatus: "Adequate", Date: now})
		require.Nil(t, nf)
		sowing := time.Date(2024, 11, 15, 0, 0, 0, 0, time.UTC)
		expected := sowing.AddDate(0, 0, 120).Format("2006-01-02")
		assert.Equal(t, expected, p.PredictedDate)
		assert.Equal(t, expected, p.HarvestWindow.Optimal)
		assert.Equal(t, sowing.AddDate(0, 0, 117).Format("2006-01-02"), p.HarvestWindow.Earliest)
		assert.Equal(t, sowing.AddDate(0, 0, 123).Format("2006-01-02"), p.HarvestWindow.Latest)
	})

	t.Run("unparsable sowing date falls back to sixty days ago", func(t *testing.T) {
		p, nf := e.Predict(Input{CropName: "wheat", SowingDate: "soon", CropHealth: "Good", Date: now})
		require.Nil(t, nf)
		expected := now.AddDate(0, 0, -60).AddDate(0, 0, 120).Format("2006-01-02")
		assert.Equal(t, expected, p.PredictedDate)
	})

	t.Run("water deficit delays harvest and cuts yield", func(t *testing.T) {
		base, _ := e.Predict(Input{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Good", WaterStatus: "Adequate", Date: now})
		deficit, _ := e.Predict(Input{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Good", WaterStatus: "Deficit", Date: now})
		basePred, _ := time.Parse("2006-01-02", base.PredictedDate)
		defPred, _ := time.Parse("2006-01-02", deficit.PredictedDate)
		assert.Equal(t, 5, int(defPred.Sub(basePred).Hours()/24))
		// The deficit cuts the estimate but not the graded yield factor.
		assert.InDelta(t, 1.0, deficit.ExpectedYield.Factor, 1e-9)
		assert.InDelta(t, 15.75, deficit.ExpectedYield.Estimated, 1e-9)
		assert.Equal(t, "A", deficit.QualityGrade)
	})

	t.Run("yield factor floors at half", func(t *testing.T) {
		p, _ := e.Predict(Input{CropName: "rice", SowingDate: "2024-11-15", CropHealth: "Poor", PestIncidents: 5, DiseaseIncidents: 5, WaterStatus: "Excess", Date: now})
		assert.InDelta(t, 0.5, p.ExpectedYield.Factor, 1e-9)
		assert.Equal(t, "C", p.QualityGrade)
		// 25 quintals midpoint, halved, then the excess-water cut.
		assert.InDelta(t, 10.63, p.ExpectedYield.Estimated, 1e-9)
	})

	t.Run("water status never changes the grade", func(t *testing.T) {
		p, _ := e.Predict(Input{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Excellent", WaterStatus: "Excess", Date: now})
		assert.Equal(t, "A+", p.QualityGrade)
		assert.InDelta(t, 1.1, p.ExpectedYield.Factor, 1e-9)
		assert.InDelta(t, 16.36, p.ExpectedYield.Estimated, 1e-9)
	})

	t.Run("quality grades track the factor", func(t *testing.T) {
		excellent, _ := e.Predict(Input{CropName: "gram", SowingDate: "2024-11-15", CropHealth: "Excellent", Date: now})
		assert.Equal(t, "A+", excellent.QualityGrade)
		good, _ := e.Predict(Input{CropName: "gram", SowingDate: "2024-11-15", CropHealth: "Good", Date: now})
		assert.Equal(t, "A", good.QualityGrade)
		fair, _ := e.Predict(Input{CropName: "gram", SowingDate: "2024-11-15", CropHealth: "Fair", Date: now})
		assert.Equal(t, "B", fair.QualityGrade)
	})

	t.Run("confidence is higher only for good health", func(t *testing.T) {
		good, _ := e.Predict(Input{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Good", Date: now})
		assert.Equal(t, 85, good.ConfidencePercent)
		excellent, _ := e.Predict(Input{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Excellent", Date: now})
		assert.Equal(t, 75, excellent.ConfidencePercent)
	})

	t.Run("days remaining clamps at zero past maturity", func(t *testing.T) {
		p, _ := e.Predict(Input{CropName: "wheat", SowingDate: "2023-01-01", CropHealth: "Good", Date: now})
		assert.Zero(t, p.DaysRemaining)
		assert.Equal(t, "Harvest Ready", p.CurrentStage)
	})
}

func TestStageFromDAS(t *testing.T) {
	cases := []struct {
		das  int
		want string
	}{
		{-5, "Planned"},
		{0, "Germination/Seedling"},
		{17, "Germination/Seedling"},
		{18, "Vegetative Growth"},
		{53, "Vegetative Growth"},
		{54, "Flowering/Reproductive"},
		{89, "Flowering/Reproductive"},
		{90, "Maturity/Fruiting"},
		{119, "Maturity/Fruiting"},
		{120, "Harvest Ready"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StageFromDAS(c.das, 120), "das=%d", c.das)
	}
}
