package fertilizer

import (
	"testing"

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

func TestPlan(t *testing.T) {
	e := newEngine(t)

	t.Run("unknown crop", func(t *testing.T) {
		plan, nf := e.Plan("dragonfruit", 2)
		assert.Nil(t, plan)
		require.NotNil(t, nf)
		assert.Contains(t, nf.Error, "dragonfruit")
		assert.NotEmpty(t, nf.SupportedCrops)
	})

	t.Run("quantities and bags scale with area", func(t *testing.T) {
		plan, nf := e.Plan("wheat", 3)
		require.Nil(t, nf)
		require.NotEmpty(t, plan.Schedule)
		one, _ := e.Plan("wheat", 1)
		for i, sp := range plan.Schedule {
			for j, app := range sp.Applications {
				base := one.Schedule[i].Applications[j]
				assert.InDelta(t, base.QuantityKg*3, app.QuantityKg, 1e-9)
				assert.InDelta(t, app.QuantityKg/50, app.Bags, 1e-9)
			}
		}
	})

	t.Run("total cost doubles with area, per-acre cost constant", func(t *testing.T) {
		p1, nf := e.Plan("sugarcane", 1)
		require.Nil(t, nf)
		p2, nf := e.Plan("sugarcane", 2)
		require.Nil(t, nf)
		assert.InDelta(t, p1.TotalCostForArea*2, p2.TotalCostForArea, 1e-6)
		assert.InDelta(t, p1.TotalCostPerAcre, p2.TotalCostPerAcre, 1e-6)
	})

	t.Run("stage costs sum to total", func(t *testing.T) {
		plan, nf := e.Plan("cotton", 2.5)
		require.Nil(t, nf)
		var sum float64
		for _, sp := range plan.Schedule {
			sum += sp.StageCost
		}
		assert.InDelta(t, sum, plan.TotalCostForArea, 1e-9)
	})

	t.Run("timing rendered in days after planting", func(t *testing.T) {
		plan, nf := e.Plan("rice", 1)
		require.Nil(t, nf)
		for _, sp := range plan.Schedule {
			assert.Regexp(t, `^\d+ days after planting$`, sp.Timing)
		}
	})

	t.Run("savings scale with stages and area", func(t *testing.T) {
		plan, nf := e.Plan("wheat", 4)
		require.Nil(t, nf)
		assert.Equal(t, float64(len(plan.Schedule))*100*4, plan.CostOptimization.PotentialSavings)
		assert.NotEmpty(t, plan.CostOptimization.CheaperAlternatives)
		assert.Len(t, plan.ApplicationTips, 4)
	})

	t.Run("non-positive area defaults to one acre", func(t *testing.T) {
		plan, nf := e.Plan("wheat", 0)
		require.Nil(t, nf)
		assert.Equal(t, 1.0, plan.AreaAcres)
	})
}

func TestFindCheaperAlternatives(t *testing.T) {
	e := newEngine(t)

	t.Run("only same NPK and strictly cheaper", func(t *testing.T) {
		out := e.FindCheaperAlternatives("18-46-0", 1310)
		require.NotEmpty(t, out.Alternatives)
		for _, a := range out.Alternatives {
			assert.Less(t, a.Price, 1310.0)
			assert.Equal(t, 1310-a.Price, a.SavingsPerBag)
			assert.NotEmpty(t, a.Brand)
		}
		for i := 1; i < len(out.Alternatives); i++ {
			assert.LessOrEqual(t, out.Alternatives[i-1].Price, out.Alternatives[i].Price)
		}
		assert.Equal(t, out.Alternatives[0].Product, out.Recommendation)
	})

	t.Run("no cheaper option", func(t *testing.T) {
		out := e.FindCheaperAlternatives("18-46-0", 100)
		assert.Empty(t, out.Alternatives)
		assert.Zero(t, out.TotalSavings)
		assert.Equal(t, "Current option is best", out.Recommendation)
	})
}
