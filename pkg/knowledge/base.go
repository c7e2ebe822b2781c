// Package knowledge holds the static crop knowledge base, the fertilizer
// catalog and the lookup chain that backs every advisory engine.
package knowledge

import (
	"fmt"
	"strings"

	"krishi/entities"
)

// NotFound is the shared "crop not found" result. Every crop-keyed engine
// returns this exact shape so downstream consumers see one schema.
type NotFound struct {
	Error          string   `json:"error"`
	SupportedCrops []string `json:"supported_crops"`
}

// Resolver supplies crop records from outside the static base, typically the
// dynamic enrichment store. Implementations may be slow or fail; a nil record
// with nil error means the crop is genuinely unknown.
type Resolver interface {
	Resolve(name string) (*entities.CropRecord, error)
}

// Base is the process-wide, read-only knowledge base. Construct once at
// startup and pass into each engine.
type Base struct {
	crops    map[string]*entities.CropRecord
	order    []string
	catalog  *Catalog
	resolver Resolver
}

// NewBase builds the knowledge base from the static crop set. resolver is
// optional.
func NewBase(catalog *Catalog, resolver Resolver) *Base {
	b := &Base{
		crops:    make(map[string]*entities.CropRecord, len(staticCropOrder)),
		order:    staticCropOrder,
		catalog:  catalog,
		resolver: resolver,
	}
	for _, name := range staticCropOrder {
		rec := staticCrops[name]
		rec.Name = name
		b.crops[name] = rec
	}
	return b
}

// Catalog returns the fertilizer catalog.
func (b *Base) Catalog() *Catalog { return b.catalog }

// CropNames lists supported static crops in canonical order.
func (b *Base) CropNames() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Lookup fetches a crop record by name, case-insensitively. The static base
// is tried first, then the resolver. A resolver failure is treated the same
// as not found: the caller gets the structured NotFound result either way.
func (b *Base) Lookup(name string) (*entities.CropRecord, *NotFound) {
	key := strings.ToLower(strings.TrimSpace(name))
	if rec, ok := b.crops[key]; ok {
		return rec, nil
	}
	if b.resolver != nil {
		if rec, err := b.resolver.Resolve(key); err == nil && rec != nil {
			normalize(rec, key)
			return rec, nil
		}
	}
	return nil, b.notFound(name)
}

// StaticOnly looks up a crop without consulting the resolver.
func (b *Base) StaticOnly(name string) (*entities.CropRecord, bool) {
	rec, ok := b.crops[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// Each visits every static crop in canonical order.
func (b *Base) Each(fn func(name string, rec *entities.CropRecord)) {
	for _, name := range b.order {
		fn(name, b.crops[name])
	}
}

// StageDays returns the days-after-sowing offset of the first fertilization
// stage whose label contains the given stage name, or 0.
func (b *Base) StageDays(cropName, stageName string) int {
	rec, nf := b.Lookup(cropName)
	if nf != nil {
		return 0
	}
	needle := strings.ToLower(stageName)
	for _, st := range rec.FertilizationSchedule {
		if strings.Contains(strings.ToLower(st.Stage), needle) {
			return st.TimingDays
		}
	}
	return 0
}

func (b *Base) notFound(name string) *NotFound {
	return &NotFound{
		Error:          fmt.Sprintf("Crop '%s' not found in knowledge base", name),
		SupportedCrops: b.CropNames(),
	}
}

// Defaults applied to incomplete dynamically learned records. Static records
// are assumed complete and never touched.
const (
	defaultMaturityDays = 120
	defaultNitrogenMin  = 40
	defaultPhosphorus   = 30
	defaultPotassium    = 20
)

func normalize(rec *entities.CropRecord, key string) {
	rec.Name = key
	if rec.HarvestIndicators.MaturityDays == 0 {
		rec.HarvestIndicators.MaturityDays = defaultMaturityDays
	}
	npk := &rec.SoilRequirements.NPK
	if npk.Nitrogen.Max == 0 {
		npk.Nitrogen = entities.Range{Min: defaultNitrogenMin, Max: defaultNitrogenMin}
	}
	if npk.Phosphorus.Max == 0 {
		npk.Phosphorus = entities.Range{Min: defaultPhosphorus, Max: defaultPhosphorus}
	}
	if npk.Potassium.Max == 0 {
		npk.Potassium = entities.Range{Min: defaultPotassium, Max: defaultPotassium}
	}
	if rec.DurationMonths == 0 {
		rec.DurationMonths = 4
	}
}
