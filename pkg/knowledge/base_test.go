package knowledge

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"krishi/entities"
)

func newBase(t *testing.T) *Base {
	t.Helper()
	cat, err := NewCatalog("")
	require.NoError(t, err)
	return NewBase(cat, nil)
}

func TestLookup(t *testing.T) {
	b := newBase(t)

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		rec, nf := b.Lookup("  WHEAT ")
		require.Nil(t, nf)
		assert.Equal(t, "wheat", rec.Name)
		assert.Equal(t, "Triticum aestivum", rec.ScientificName)
	})

	t.Run("unknown crop returns the shared not-found shape", func(t *testing.T) {
		rec, nf := b.Lookup("pineapple")
		assert.Nil(t, rec)
		require.NotNil(t, nf)
		assert.Equal(t, "Crop 'pineapple' not found in knowledge base", nf.Error)
		assert.Equal(t, b.CropNames(), nf.SupportedCrops)
	})

	t.Run("ten static crops in canonical order", func(t *testing.T) {
		names := b.CropNames()
		require.Len(t, names, 10)
		assert.Equal(t, "sugarcane", names[0])
		assert.Equal(t, "gram", names[9])
	})
}

type stubResolver struct {
	rec *entities.CropRecord
}

func (r *stubResolver) Resolve(name string) (*entities.CropRecord, error) { return r.rec, nil }

func TestResolverChain(t *testing.T) {
	cat, err := NewCatalog("")
	require.NoError(t, err)

	t.Run("resolver consulted after static miss", func(t *testing.T) {
		b := NewBase(cat, &stubResolver{rec: &entities.CropRecord{ScientificName: "Allium cepa"}})
		rec, nf := b.Lookup("onion")
		require.Nil(t, nf)
		assert.Equal(t, "onion", rec.Name)
		// Partial record picks up working defaults.
		assert.Equal(t, 120, rec.HarvestIndicators.MaturityDays)
		assert.Equal(t, 4.0, rec.DurationMonths)
	})

	t.Run("static crops never hit the resolver", func(t *testing.T) {
		b := NewBase(cat, &stubResolver{rec: &entities.CropRecord{ScientificName: "should not appear"}})
		rec, nf := b.Lookup("rice")
		require.Nil(t, nf)
		assert.Equal(t, "Oryza sativa", rec.ScientificName)
	})
}

func TestStageDays(t *testing.T) {
	b := newBase(t)
	assert.Equal(t, 0, b.StageDays("wheat", "sowing"))
	assert.Equal(t, 21, b.StageDays("wheat", "first irrigation"))
	assert.Zero(t, b.StageDays("pineapple", "sowing"))
}

func TestEveryStaticCropIsComplete(t *testing.T) {
	b := newBase(t)
	b.Each(func(name string, rec *entities.CropRecord) {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, rec.MarathiName)
			assert.NotEmpty(t, rec.Seasons)
			assert.NotEmpty(t, rec.FertilizationSchedule)
			assert.NotEmpty(t, rec.IrrigationSchedule)
			assert.NotEmpty(t, rec.CommonDiseases)
			assert.Greater(t, rec.HarvestIndicators.MaturityDays, 0)
			assert.Greater(t, rec.MarketCalendar.AvgPrice(0), 0.0)
			assert.Greater(t, rec.ExpectedYield.Midpoint(), 0.0)
			assert.Greater(t, rec.DurationMonths, 0.0)
		})
	})
}

func TestCatalog(t *testing.T) {
	cat, err := NewCatalog("")
	require.NoError(t, err)

	t.Run("known product price", func(t *testing.T) {
		assert.Equal(t, 242.0, cat.Price("IFFCO Urea"))
		assert.Equal(t, 1300.0, cat.Price("NFL DAP"))
	})

	t.Run("unknown product is zero", func(t *testing.T) {
		assert.Zero(t, cat.Price("Mystery Mix"))
	})

	t.Run("iteration order is fixed", func(t *testing.T) {
		var names []string
		cat.Each(func(name string, e CatalogEntry) { names = append(names, name) })
		require.Len(t, names, 8)
		assert.Equal(t, "IFFCO Urea", names[0])
		assert.Equal(t, "Gypsum", names[7])
	})

	t.Run("missing override file fails", func(t *testing.T) {
		_, err := NewCatalog("/does/not/exist.xlsx")
		assert.Error(t, err)
	})

	t.Run("xlsx overrides and extends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prices.xlsx")
		x := excelize.NewFile()
		sheet := x.GetSheetName(0)
		rows := [][]any{
			{"Product", "NPK", "Price"},
			{"IFFCO Urea", "46-0-0", "268"},
			{"KRIBHCO Urea", "46-0-0", "250"},
			{"Bad Row", "0-0-0", "not-a-price"},
		}
		for i, row := range rows {
			cell, cerr := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, cerr)
			require.NoError(t, x.SetSheetRow(sheet, cell, &row))
		}
		require.NoError(t, x.SaveAs(path))

		over, oerr := NewCatalog(path)
		require.NoError(t, oerr)
		assert.Equal(t, 268.0, over.Price("IFFCO Urea"))
		assert.Equal(t, 250.0, over.Price("KRIBHCO Urea"))
		assert.Zero(t, over.Price("Bad Row"))

		var names []string
		over.Each(func(name string, e CatalogEntry) { names = append(names, name) })
		require.Len(t, names, 9)
		assert.Equal(t, "KRIBHCO Urea", names[8])
	})
}
