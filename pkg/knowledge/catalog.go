package knowledge

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CatalogEntry is one fertilizer product with its government-subsidized
// price per 50kg bag.
type CatalogEntry struct {
	NPK   string  `json:"npk"`
	Price float64 `json:"price"`
}

// Catalog is the immutable fertilizer product catalog.
type Catalog struct {
	entries map[string]CatalogEntry
	order   []string
}

// Government subsidized brands, ₹ per 50kg bag.
var defaultCatalog = []struct {
	name  string
	entry CatalogEntry
}{
	{"IFFCO Urea", CatalogEntry{NPK: "46-0-0", Price: 242}},
	{"IFFCO DAP", CatalogEntry{NPK: "18-46-0", Price: 1310}},
	{"NFL Urea", CatalogEntry{NPK: "46-0-0", Price: 242}},
	{"NFL DAP", CatalogEntry{NPK: "18-46-0", Price: 1300}},
	{"RCF Urea", CatalogEntry{NPK: "46-0-0", Price: 242}},
	{"RCF DAP", CatalogEntry{NPK: "18-46-0", Price: 1310}},
	{"Potash", CatalogEntry{NPK: "0-0-60", Price: 850}},
	{"Gypsum", CatalogEntry{NPK: "0-0-0", Price: 200}},
}

// NewCatalog builds the default catalog. When xlsxPath is non-empty, price
// overrides are read from the first sheet (columns: product, npk, price);
// price circulars are distributed as spreadsheets.
func NewCatalog(xlsxPath string) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]CatalogEntry, len(defaultCatalog))}
	for _, d := range defaultCatalog {
		c.entries[d.name] = d.entry
		c.order = append(c.order, d.name)
	}
	if xlsxPath != "" {
		if err := c.loadOverridesXLSX(xlsxPath); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) loadOverridesXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return err
	}
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue // header or short row
		}
		name := strings.TrimSpace(row[0])
		npk := strings.TrimSpace(row[1])
		price, perr := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if name == "" || perr != nil || price <= 0 {
			continue
		}
		if _, known := c.entries[name]; !known {
			c.order = append(c.order, name)
		}
		c.entries[name] = CatalogEntry{NPK: npk, Price: price}
	}
	return nil
}

// Price returns the per-50kg-bag price for a product, 0 when unknown.
func (c *Catalog) Price(name string) float64 {
	return c.entries[name].Price
}

// Each visits every catalog entry in a fixed order.
func (c *Catalog) Each(fn func(name string, e CatalogEntry)) {
	for _, name := range c.order {
		fn(name, c.entries[name])
	}
}
