package entities

// Range is a closed numeric interval used for pH and NPK requirements.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the center of the range.
func (r Range) Midpoint() float64 { return (r.Min + r.Max) / 2 }

// NPKRequirement holds per-nutrient requirement ranges in kg/acre.
type NPKRequirement struct {
	Nitrogen   Range `json:"nitrogen"`
	Phosphorus Range `json:"phosphorus"`
	Potassium  Range `json:"potassium"`
}

type SoilRequirement struct {
	OptimalPH Range          `json:"optimal_ph"`
	SoilTypes []string       `json:"soil_types"`
	NPK       NPKRequirement `json:"npk_requirements"`
}

// FertilizerDose is one product application within a fertilization stage.
type FertilizerDose struct {
	Name            string  `json:"name"`
	NPK             string  `json:"npk"`
	QuantityPerAcre float64 `json:"quantity_per_acre"`
	Unit            string  `json:"unit"`
}

type FertilizationStage struct {
	Stage       string           `json:"stage"`
	TimingDays  int              `json:"timing_days"`
	Fertilizers []FertilizerDose `json:"fertilizers"`
}

// IrrigationStage is the base watering regime for one growth stage.
type IrrigationStage struct {
	FrequencyDays int     `json:"frequency_days"`
	WaterMM       float64 `json:"water_mm"`
}

// Disease describes one entry of a crop's disease table. Treatment strings
// use the "<product> @ <dosage>" format.
type Disease struct {
	Symptoms          []string `json:"symptoms"`
	TreatmentChemical string   `json:"treatment_chemical"`
	TreatmentOrganic  string   `json:"treatment_organic"`
	Prevention        []string `json:"prevention"`
}

type HarvestIndicators struct {
	MaturityDays  int      `json:"maturity_days"`
	BrixLevel     float64  `json:"brix_level,omitempty"`
	PhysicalSigns []string `json:"physical_signs"`
}

type PriceVariation struct {
	Peak      float64 `json:"peak"`
	OffSeason float64 `json:"off_season"`
}

type MarketCalendar struct {
	PeakDemandMonths   []int           `json:"peak_demand_months"`
	AvgPricePerQuintal float64         `json:"avg_price_per_quintal,omitempty"`
	AvgPricePerTon     float64         `json:"avg_price_per_ton,omitempty"`
	PriceVariation     *PriceVariation `json:"price_variation,omitempty"`
}

// AvgPrice returns the per-quintal price when known, then the per-ton price,
// then the given fallback.
func (m MarketCalendar) AvgPrice(fallback float64) float64 {
	if m.AvgPricePerQuintal > 0 {
		return m.AvgPricePerQuintal
	}
	if m.AvgPricePerTon > 0 {
		return m.AvgPricePerTon
	}
	return fallback
}

// IsPeakMonth reports whether the given calendar month (1-12) is a peak
// demand month.
func (m MarketCalendar) IsPeakMonth(month int) bool {
	for _, pm := range m.PeakDemandMonths {
		if pm == month {
			return true
		}
	}
	return false
}

type Yield struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Unit string  `json:"unit"`
}

// Midpoint returns the average of the yield range.
func (y Yield) Midpoint() float64 { return (y.Min + y.Max) / 2 }

// CropRecord is one crop's full agronomic record. Records in the static
// knowledge base are complete; records learned through dynamic enrichment may
// be partial and are normalized on load.
type CropRecord struct {
	Name                  string                     `json:"-"`
	MarathiName           string                     `json:"marathi_name"`
	ScientificName        string                     `json:"scientific_name"`
	Varieties             []string                   `json:"varieties"`
	DurationMonths        float64                    `json:"duration_months"`
	Seasons               []string                   `json:"seasons"`
	SoilRequirements      SoilRequirement            `json:"soil_requirements"`
	FertilizationSchedule []FertilizationStage       `json:"fertilization_schedule"`
	IrrigationSchedule    map[string]IrrigationStage `json:"irrigation_schedule"`
	CommonDiseases        map[string]Disease         `json:"common_diseases"`
	HarvestIndicators     HarvestIndicators          `json:"harvest_indicators"`
	MarketCalendar        MarketCalendar             `json:"market_calendar"`
	ExpectedYield         Yield                      `json:"expected_yield"`
}
