// Package planner ranks crops against soil, season and market conditions and
// builds per-crop task schedules.
package planner

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"krishi/entities"
	"krishi/pkg/agro"
	"krishi/pkg/knowledge"
	"krishi/pkg/soil"
	"krishi/pkg/weather"
)

type Engine interface {
	Recommend(in Input) *Plan
	MatchCrops(soilData entities.SoilData, month int) []Match
}

// Input carries everything the planner needs; optional context is nil when
// the surrounding system could not resolve it.
type Input struct {
	Soil        entities.SoilData
	Location    entities.Location
	Preferences map[string]any // reserved
	Weather     *weather.Snapshot
	Date        time.Time // zero means now
}

// Match is one crop's raw suitability evaluation.
type Match struct {
	CropName         string         `json:"crop_name"`
	MarathiName      string         `json:"marathi_name"`
	SuitabilityScore float64        `json:"suitability_score"`
	Reasons          []string       `json:"reasons"`
	ExpectedYield    entities.Yield `json:"expected_yield"`
	DurationMonths   float64        `json:"duration_months"`
	AvgPrice         float64        `json:"avg_price"`
}

type Task struct {
	Task    string `json:"task"`
	Date    string `json:"date"`
	Notes   string `json:"notes,omitempty"`
	Details string `json:"details,omitempty"`
}

type Recommendation struct {
	CropName             string  `json:"crop_name"`
	MarathiName          string  `json:"marathi_name"`
	Variety              string  `json:"variety"`
	SuitabilityScore     float64 `json:"suitability_score"`
	ExpectedProfitPerAcre int    `json:"expected_profit_per_acre"`
	RiskLevel            string  `json:"risk_level"`
	Reasoning            string  `json:"reasoning"`
	GrowingSeason        string  `json:"growing_season"`
	TaskSchedule         []Task  `json:"task_schedule"`
}

type Plan struct {
	RecommendedCrops []Recommendation  `json:"recommended_crops"`
	SoilDataUsed     entities.SoilData `json:"soil_data_used"`
	WeatherContext   string            `json:"weather_context"`
	AnalysisMethod   string            `json:"analysis_method"`
	AISummary        string            `json:"ai_summary,omitempty"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

// MergeSoil merges a regional estimate under user-supplied soil data (user
// fields win) and fills any remaining gaps with conservative defaults.
func MergeSoil(user entities.SoilData, est *soil.Estimate) entities.SoilData {
	out := user
	if est != nil {
		if out.Nitrogen == 0 {
			out.Nitrogen = est.Nitrogen
		}
		if out.Phosphorus == 0 {
			out.Phosphorus = est.Phosphorus
		}
		if out.Potassium == 0 {
			out.Potassium = est.Potassium
		}
		if out.PH == 0 {
			out.PH = est.PH
		}
		if out.SoilType == "" {
			out.SoilType = est.SoilType
		}
	}
	if out.Nitrogen == 0 {
		out.Nitrogen = 40
	}
	if out.Phosphorus == 0 {
		out.Phosphorus = 30
	}
	if out.Potassium == 0 {
		out.Potassium = 20
	}
	if out.PH == 0 {
		out.PH = 7.0
	}
	return out
}

// MatchCrops scores every static crop against the soil profile and season.
// Weights: NPK 40%, season 30%, market price up to 30%.
func (e *engine) MatchCrops(soilData entities.SoilData, month int) []Match {
	var results []Match
	e.base.Each(func(name string, rec *entities.CropRecord) {
		var reasons []string
		npkReq := rec.SoilRequirements.NPK

		nScore := agro.NPKRangeScore(soilData.Nitrogen, npkReq.Nitrogen, agro.DefaultNPKTolerance)
		pScore := agro.NPKRangeScore(soilData.Phosphorus, npkReq.Phosphorus, agro.DefaultNPKTolerance)
		kScore := agro.NPKRangeScore(soilData.Potassium, npkReq.Potassium, agro.DefaultNPKTolerance)
		npkScore := (nScore + pScore + kScore) / 3 * 40
		score := npkScore
		if npkScore > 30 {
			reasons = append(reasons, fmt.Sprintf("Good NPK match (Score: %.0f/40)", npkScore))
		}

		seasonOK := agro.SeasonSuitable(rec.Seasons, month)
		if seasonOK {
			score += 30
			reasons = append(reasons, "Suitable season for planting")
		} else {
			score += 10
		}

		avgPrice := rec.MarketCalendar.AvgPrice(0)
		marketScore := math.Min(30, avgPrice/10000*30)
		score += marketScore
		if marketScore > 20 {
			reasons = append(reasons, fmt.Sprintf("Good market price (₹%.0f)", avgPrice))
		}

		results = append(results, Match{
			CropName:         name,
			MarathiName:      rec.MarathiName,
			SuitabilityScore: math.Round(score*10) / 10,
			Reasons:          reasons,
			ExpectedYield:    rec.ExpectedYield,
			DurationMonths:   rec.DurationMonths,
			AvgPrice:         avgPrice,
		})
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SuitabilityScore > results[j].SuitabilityScore
	})
	return results
}

func (e *engine) Recommend(in Input) *Plan {
	now := in.Date
	if now.IsZero() {
		now = time.Now()
	}

	matches := e.MatchCrops(in.Soil, int(now.Month()))
	if len(matches) > 5 {
		matches = matches[:5]
	}

	recommended := make([]Recommendation, 0, len(matches))
	for _, m := range matches {
		rec, ok := e.base.StaticOnly(m.CropName)
		if !ok {
			continue
		}

		avgPrice := rec.MarketCalendar.AvgPricePerQuintal
		if avgPrice == 0 {
			avgPrice = 3000
		}
		expectedProfit := avgPrice * rec.ExpectedYield.Midpoint()

		variety := "Standard"
		if len(rec.Varieties) > 0 {
			variety = rec.Varieties[0]
		}
		season := "Year-round"
		if len(rec.Seasons) > 0 {
			season = rec.Seasons[0]
		}

		recommended = append(recommended, Recommendation{
			CropName:              titleCase(m.CropName),
			MarathiName:           m.MarathiName,
			Variety:               variety,
			SuitabilityScore:      m.SuitabilityScore,
			ExpectedProfitPerAcre: int(expectedProfit),
			RiskLevel:             riskLevel(rec, in.Weather),
			Reasoning:             strings.Join(m.Reasons, ". "),
			GrowingSeason:         season,
			TaskSchedule:          taskSchedule(rec, now),
		})
	}

	weatherCtx := "Weather data unavailable"
	if in.Weather != nil {
		weatherCtx = "Weather data integrated"
	}
	return &Plan{
		RecommendedCrops: recommended,
		SoilDataUsed:     in.Soil,
		WeatherContext:   weatherCtx,
		AnalysisMethod:   "rule_based_plus_realtime_api",
	}
}

func riskLevel(rec *entities.CropRecord, snap *weather.Snapshot) string {
	risk := "Low"
	if rec.DurationMonths > 5 {
		risk = "Medium"
	}
	if snap != nil && snap.Rain1h > 5 {
		risk = "High (Heavy Rain Alert)"
	}
	return risk
}

// taskSchedule lays out sowing, fertilization stages and harvest. Stage day
// offsets use the heuristic label mapping first, then the stage's declared
// offset.
func taskSchedule(rec *entities.CropRecord, start time.Time) []Task {
	schedule := []Task{{
		Task:  "Sowing/Planting",
		Date:  start.Format("2006-01-02"),
		Notes: "Ensure soil moisture is adequate.",
	}}

	for _, stage := range rec.FertilizationSchedule {
		name := strings.ToLower(stage.Stage)
		var offset int
		switch {
		case strings.Contains(name, "basal") || strings.Contains(name, "sowing"):
			offset = 0
		case strings.Contains(name, "vegetative"):
			offset = 30
		case strings.Contains(name, "flowering"):
			offset = 60
		case strings.Contains(name, "fruiting"):
			offset = 90
		default:
			offset = stage.TimingDays
		}

		products := make([]string, len(stage.Fertilizers))
		for i, f := range stage.Fertilizers {
			products[i] = f.Name
		}
		schedule = append(schedule, Task{
			Task:    "Fertilization: " + stage.Stage,
			Date:    start.AddDate(0, 0, offset).Format("2006-01-02"),
			Details: "Apply " + strings.Join(products, ", "),
		})
	}

	harvest := start.AddDate(0, 0, int(rec.DurationMonths*30))
	schedule = append(schedule, Task{
		Task:  "Harvesting",
		Date:  harvest.Format("2006-01-02"),
		Notes: "Check for maturity signs: " + strings.Join(rec.HarvestIndicators.PhysicalSigns, ", "),
	})

	// ISO dates sort chronologically as strings.
	sort.SliceStable(schedule, func(i, j int) bool { return schedule[i].Date < schedule[j].Date })
	return schedule
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
