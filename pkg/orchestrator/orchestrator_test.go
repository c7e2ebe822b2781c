package orchestrator

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"krishi/entities"
	"krishi/pkg/ai"
	"krishi/pkg/knowledge"
)

func newOrchestrator(t *testing.T, opts Options) *Orchestrator {
	t.Helper()
	cat, err := knowledge.NewCatalog("")
	require.NoError(t, err)
	return New(knowledge.NewBase(cat, nil), opts)
}

func testLogStore(t *testing.T) *LogStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.AgentLog{}))
	return NewLogStore(db)
}

func TestPlanCrops(t *testing.T) {
	o := newOrchestrator(t, Options{LLM: ai.NewMock()})

	t.Run("bare request gets defaults and recommendations", func(t *testing.T) {
		plan := o.PlanCrops(PlanRequest{})
		require.NotNil(t, plan)
		assert.Len(t, plan.RecommendedCrops, 5)
		assert.Equal(t, 40.0, plan.SoilDataUsed.Nitrogen)
	})

	t.Run("location fills soil from the regional estimate", func(t *testing.T) {
		plan := o.PlanCrops(PlanRequest{Location: entities.Location{Latitude: 18.5, Longitude: 74.0}})
		assert.Equal(t, 45.0, plan.SoilDataUsed.Nitrogen)
		assert.Equal(t, "Black Soil", plan.SoilDataUsed.SoilType)
	})

	t.Run("summarize fills the ai summary", func(t *testing.T) {
		plan := o.PlanCrops(PlanRequest{Summarize: true})
		assert.NotEmpty(t, plan.AISummary)
	})
}

func TestEngineRoutingAndLogging(t *testing.T) {
	logs := testLogStore(t)
	o := newOrchestrator(t, Options{LLM: ai.NewMock(), Logs: logs})

	plan, nf := o.PlanFertilizer(FertilizerRequest{CropName: "wheat", AreaAcres: 2, Summarize: true})
	require.Nil(t, nf)
	assert.NotEmpty(t, plan.AISummary)

	_, nf = o.PlanFertilizer(FertilizerRequest{CropName: "durian"})
	require.NotNil(t, nf)

	advice, nf := o.AdviseIrrigation(IrrigationRequest{CropName: "rice", CurrentStage: "vegetative", SoilMoisture: 40})
	require.Nil(t, nf)
	assert.NotNil(t, advice)

	diag, nf := o.DiagnoseDisease(DiseaseRequest{CropName: "sugarcane", Symptoms: []string{"red patches on leaves"}})
	require.Nil(t, nf)
	assert.Equal(t, "Red Rot", diag.DiseaseName)

	pred, nf := o.PredictHarvest(HarvestRequest{CropName: "wheat", SowingDate: "2024-11-15", CropHealth: "Good"})
	require.Nil(t, nf)
	assert.NotEmpty(t, pred.PredictedDate)

	proj, nf := o.ProjectPrice(PriceRequest{CropName: "wheat", ExpectedHarvestDate: "2025-04-01"})
	require.Nil(t, nf)
	assert.NotEmpty(t, proj.PricePredictions)

	ranking, nf := o.RankMarkets(MarketRequest{CropName: "wheat"})
	require.Nil(t, nf)
	assert.Contains(t, ranking.Recommendation, "No market data")

	entries, err := logs.Recent(50)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	byAgent := map[string]string{}
	for _, e := range entries {
		byAgent[e.AgentType] = e.Status
		assert.NotEmpty(t, e.RunID)
	}
	assert.Equal(t, "success", byAgent["irrigation"])
	assert.Equal(t, "success", byAgent["harvest"])
	// Last fertilization entry in the map is whichever came later; check both
	// statuses were recorded.
	statuses := map[string]bool{}
	for _, e := range entries {
		if e.AgentType == "fertilization" {
			statuses[e.Status] = true
		}
	}
	assert.True(t, statuses["success"])
	assert.True(t, statuses["not_found"])
}

func TestComprehensiveAnalysis(t *testing.T) {
	o := newOrchestrator(t, Options{LLM: ai.NewMock()})

	t.Run("unknown crop fails fast", func(t *testing.T) {
		res, nf := o.ComprehensiveAnalysis(ComprehensiveRequest{CropName: "durian"})
		assert.Nil(t, res)
		require.NotNil(t, nf)
	})

	t.Run("all sections without symptoms", func(t *testing.T) {
		res, nf := o.ComprehensiveAnalysis(ComprehensiveRequest{
			CropName:     "wheat",
			AreaAcres:    2,
			SowingDate:   "2024-11-15",
			CurrentStage: "tillering",
			SoilMoisture: 45,
			CropHealth:   "Good",
			WaterStatus:  "Adequate",
			Summarize:    true,
		})
		require.Nil(t, nf)
		assert.NotEmpty(t, res.RunID)
		assert.NotNil(t, res.Fertilization)
		assert.NotNil(t, res.Irrigation)
		assert.Nil(t, res.Disease)
		assert.NotNil(t, res.Harvest)
		assert.NotNil(t, res.Price)
		assert.NotEmpty(t, res.AISummary)
	})

	t.Run("symptoms add the disease section", func(t *testing.T) {
		res, nf := o.ComprehensiveAnalysis(ComprehensiveRequest{
			CropName: "sugarcane",
			Symptoms: []string{"red patches on leaves"},
		})
		require.Nil(t, nf)
		require.NotNil(t, res.Disease)
		assert.Equal(t, "Red Rot", res.Disease.DiseaseName)
	})
}

func TestDailyAdvisoryWithoutWeather(t *testing.T) {
	o := newOrchestrator(t, Options{})
	alert, err := o.DailyAdvisory(entities.Location{Latitude: 18.5, Longitude: 74.0})
	require.NoError(t, err)
	assert.Nil(t, alert)
}
