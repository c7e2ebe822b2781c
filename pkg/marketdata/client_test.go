package marketdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"krishi/entities"
)

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 2500.0, parsePrice("2,500"))
	assert.Equal(t, 2500.5, parsePrice("2500.50"))
	assert.Equal(t, 1800.0, parsePrice(" 1800 "))
	assert.Zero(t, parsePrice("NR"))
	assert.Zero(t, parsePrice(""))
}

func TestProcess(t *testing.T) {
	rec := process(rawRecord{
		State:      " Maharashtra ",
		District:   "Pune",
		Market:     "Pune Market Yard",
		Commodity:  "Wheat",
		MinPrice:   "2,100",
		MaxPrice:   "2,400",
		ModalPrice: "2,250",
	})
	assert.Equal(t, "Maharashtra", rec.State)
	assert.Equal(t, 2100.0, rec.MinPrice)
	assert.Equal(t, 2400.0, rec.MaxPrice)
	assert.Equal(t, 2250.0, rec.ModalPrice)
}

func TestFilters(t *testing.T) {
	records := []entities.MandiRecord{
		{State: "Maharashtra", District: "Pune", Commodity: "Wheat"},
		{State: "Maharashtra", District: "Nashik", Commodity: "Onion"},
		{State: "Karnataka", District: "Belgaum", Commodity: "Wheat"},
	}

	t.Run("by state", func(t *testing.T) {
		out := FilterByLocation(records, "maharashtra", "")
		assert.Len(t, out, 2)
	})

	t.Run("by state and district", func(t *testing.T) {
		out := FilterByLocation(records, "Maharashtra", "pune")
		assert.Len(t, out, 1)
		assert.Equal(t, "Pune", out[0].District)
	})

	t.Run("by commodity substring", func(t *testing.T) {
		out := FilterByCommodity(records, "wheat")
		assert.Len(t, out, 2)
	})

	t.Run("empty filters pass everything", func(t *testing.T) {
		assert.Len(t, FilterByLocation(records, "", ""), 3)
		assert.Len(t, FilterByCommodity(records, ""), 3)
	})
}
