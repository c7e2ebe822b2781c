// Package fertilizer turns a crop's fertilization schedule into per-stage
// quantities, bag counts and costs for a given field area, and compares
// catalog products for cheaper NPK-equivalent alternatives.
package fertilizer

import (
	"fmt"
	"sort"
	"strings"

	"krishi/pkg/knowledge"
)

const bagKg = 50

type Engine interface {
	Plan(cropName string, areaAcres float64) (*Plan, *knowledge.NotFound)
	FindCheaperAlternatives(npk string, currentPrice float64) *Alternatives
}

type Application struct {
	Fertilizer   string  `json:"fertilizer"`
	NPK          string  `json:"npk"`
	QuantityKg   float64 `json:"quantity_kg"`
	Bags         float64 `json:"bags"`
	CostEstimate float64 `json:"cost_estimate"`
}

type StagePlan struct {
	Stage        string        `json:"stage"`
	Timing       string        `json:"timing"`
	Applications []Application `json:"applications"`
	StageCost    float64       `json:"stage_cost"`
}

type CostOptimization struct {
	CheaperAlternatives []string `json:"cheaper_alternatives"`
	PotentialSavings    float64  `json:"potential_savings"`
}

type Plan struct {
	CropName         string           `json:"crop_name"`
	AreaAcres        float64          `json:"area_acres"`
	Schedule         []StagePlan      `json:"schedule"`
	TotalCostForArea float64          `json:"total_cost_for_area"`
	TotalCostPerAcre float64          `json:"total_cost_per_acre"`
	CostOptimization CostOptimization `json:"cost_optimization"`
	ApplicationTips  []string         `json:"application_tips"`
	AISummary        string           `json:"ai_summary,omitempty"`
}

type Alternative struct {
	Product       string  `json:"product"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price"`
	SavingsPerBag float64 `json:"savings_per_bag"`
}

type Alternatives struct {
	Alternatives   []Alternative `json:"alternatives"`
	TotalSavings   float64       `json:"total_savings"`
	Recommendation string        `json:"recommendation"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

func (e *engine) Plan(cropName string, areaAcres float64) (*Plan, *knowledge.NotFound) {
	rec, nf := e.base.Lookup(cropName)
	if nf != nil {
		return nil, nf
	}
	if areaAcres <= 0 {
		areaAcres = 1
	}

	catalog := e.base.Catalog()
	var schedule []StagePlan
	var total float64
	for _, stage := range rec.FertilizationSchedule {
		sp := StagePlan{
			Stage:  stage.Stage,
			Timing: fmt.Sprintf("%d days after planting", stage.TimingDays),
		}
		for _, f := range stage.Fertilizers {
			qty := f.QuantityPerAcre * areaAcres
			bags := qty / bagKg
			cost := bags * catalog.Price(f.Name)
			sp.Applications = append(sp.Applications, Application{
				Fertilizer:   f.Name,
				NPK:          f.NPK,
				QuantityKg:   qty,
				Bags:         bags,
				CostEstimate: cost,
			})
			sp.StageCost += cost
		}
		total += sp.StageCost
		schedule = append(schedule, sp)
	}

	return &Plan{
		CropName:         cropName,
		AreaAcres:        areaAcres,
		Schedule:         schedule,
		TotalCostForArea: total,
		TotalCostPerAcre: total / areaAcres,
		CostOptimization: CostOptimization{
			CheaperAlternatives: savingsTips(),
			PotentialSavings:    float64(len(schedule)) * 100 * areaAcres,
		},
		ApplicationTips: applicationTips(),
	}, nil
}

// FindCheaperAlternatives lists catalog products with the exact same NPK
// grade at a strictly lower price, cheapest first.
func (e *engine) FindCheaperAlternatives(npk string, currentPrice float64) *Alternatives {
	var alts []Alternative
	e.base.Catalog().Each(func(name string, entry knowledge.CatalogEntry) {
		if entry.NPK != npk || entry.Price >= currentPrice {
			return
		}
		alts = append(alts, Alternative{
			Product:       name,
			Brand:         strings.SplitN(name, " ", 2)[0],
			Price:         entry.Price,
			SavingsPerBag: currentPrice - entry.Price,
		})
	})
	sort.SliceStable(alts, func(i, j int) bool { return alts[i].Price < alts[j].Price })
	if len(alts) > 5 {
		alts = alts[:5]
	}

	var total float64
	for i, a := range alts {
		if i >= 3 {
			break
		}
		total += a.SavingsPerBag
	}
	recommendation := "Current option is best"
	if len(alts) > 0 {
		recommendation = alts[0].Product
	}
	return &Alternatives{Alternatives: alts, TotalSavings: total, Recommendation: recommendation}
}

func savingsTips() []string {
	return []string{
		"Buy in bulk during off-season for 5-10% discount",
		"Compare IFFCO, NFL and RCF prices before ordering",
		"Use soil test results to avoid over-application",
		"Consider single super phosphate instead of DAP where phosphorus alone is needed",
	}
}

func applicationTips() []string {
	return []string{
		"Apply fertilizers when soil has adequate moisture",
		"Split nitrogen doses to reduce leaching losses",
		"Incorporate basal doses into soil before sowing",
		"Do not apply urea immediately before heavy rain",
	}
}
