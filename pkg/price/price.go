// Package price projects near-term prices around the expected harvest date
// and recommends a selling strategy based on the crop's demand calendar.
package price

import (
	"fmt"
	"math"
	"strings"
	"time"

	"krishi/pkg/agro"
	"krishi/pkg/knowledge"
)

type Engine interface {
	Project(in Input) (*Projection, *knowledge.NotFound)
}

type Input struct {
	CropName            string
	ExpectedHarvestDate string  // 2006-01-02
	CurrentPrice        float64 // per quintal; zero means use the calendar average
	Date                time.Time
}

type PricePoint struct {
	Price             float64 `json:"price"`
	ChangePercent     float64 `json:"change_percent"`
	ConfidencePercent int     `json:"confidence"`
}

type CurrentAnalysis struct {
	CurrentPrice   float64  `json:"current_price"`
	PeakPrice      float64  `json:"peak_price"`
	OffSeasonPrice float64  `json:"off_season_price"`
	PeakMonths     []string `json:"peak_months"`
}

type Strategy struct {
	Action        string  `json:"action"`
	ExpectedPrice float64 `json:"expected_price"`
	PotentialGain float64 `json:"potential_gain"`
	Reasoning     string  `json:"reasoning"`
}

type Projection struct {
	CropName               string                `json:"crop_name"`
	CurrentPriceAnalysis   CurrentAnalysis       `json:"current_price_analysis"`
	PricePredictions       map[string]PricePoint `json:"price_predictions"`
	SellingStrategy        Strategy              `json:"selling_strategy"`
	MarketInsights         []string              `json:"market_insights"`
	RiskFactors            []string              `json:"risk_factors"`
	AlternateStrategies    []string              `json:"alternate_strategies"`
	DirectSellingPlatforms []string              `json:"direct_selling_platforms"`
	AISummary              string                `json:"ai_summary,omitempty"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

func (e *engine) Project(in Input) (*Projection, *knowledge.NotFound) {
	rec, nf := e.base.Lookup(in.CropName)
	if nf != nil {
		return nil, nf
	}
	now := in.Date
	if now.IsZero() {
		now = time.Now()
	}

	harvest, err := time.Parse("2006-01-02", in.ExpectedHarvestDate)
	if err != nil {
		harvest = now.AddDate(0, 0, 30)
	}

	cal := rec.MarketCalendar
	current := in.CurrentPrice
	if current <= 0 {
		current = cal.AvgPrice(3000)
	}
	peakPrice := current * 1.1
	offPrice := current * 0.9
	if cal.PriceVariation != nil {
		peakPrice = cal.PriceVariation.Peak
		offPrice = cal.PriceVariation.OffSeason
	}

	predictions := map[string]PricePoint{
		"1_week":  predict(current, harvest.AddDate(0, 0, 7), cal.PeakDemandMonths, 1.03, 0.98, 80),
		"2_weeks": predict(current, harvest.AddDate(0, 0, 14), cal.PeakDemandMonths, 1.08, 0.95, 70),
		"1_month": predict(current, harvest.AddDate(0, 1, 0), cal.PeakDemandMonths, 1.12, 0.92, 60),
	}

	strategy := sellingStrategy(current, harvest, cal.PeakDemandMonths, predictions)

	return &Projection{
		CropName:             in.CropName,
		CurrentPriceAnalysis: CurrentAnalysis{
			CurrentPrice:   current,
			PeakPrice:      peakPrice,
			OffSeasonPrice: offPrice,
			PeakMonths:     monthNames(cal.PeakDemandMonths),
		},
		PricePredictions: predictions,
		SellingStrategy:  strategy,
		MarketInsights:   insights(cal.PeakDemandMonths),
		RiskFactors: []string{
			"Sudden arrival surges can depress prices",
			"Government procurement announcements shift demand",
			"Export policy changes affect traded crops",
		},
		AlternateStrategies: []string{
			"Stagger sales across 2-3 weeks to average the price",
			"Use warehouse receipts to borrow against stored produce",
			"Contract a forward price with a local processor",
		},
		DirectSellingPlatforms: []string{"eNAM", "Local FPO aggregation", "AGMARKNET-listed mandis"},
	}, nil
}

func predict(current float64, at time.Time, peakMonths []int, peakMult, offMult float64, confidence int) PricePoint {
	mult := offMult
	if monthIn(int(at.Month()), peakMonths) {
		mult = peakMult
	}
	price := math.Round(current * mult)
	return PricePoint{
		Price:             price,
		ChangePercent:     math.Round((mult-1)*1000) / 10,
		ConfidencePercent: confidence,
	}
}

func sellingStrategy(current float64, harvest time.Time, peakMonths []int, predictions map[string]PricePoint) Strategy {
	month := int(harvest.Month())
	var s Strategy
	switch {
	case monthIn(month, peakMonths):
		s = Strategy{
			Action:        "Sell within 1-2 weeks",
			ExpectedPrice: predictions["1_week"].Price,
			Reasoning:     "Harvest lands in a peak demand month, prices are near their top",
		}
	case len(peakMonths) > 0 && agro.MonthsToNearestPeak(month, peakMonths) <= 2:
		s = Strategy{
			Action:        "Hold for 2-4 weeks for peak season",
			ExpectedPrice: predictions["1_month"].Price,
			Reasoning:     "Peak demand is close, holding should capture the seasonal rise",
		}
	default:
		s = Strategy{
			Action:        "Sell immediately",
			ExpectedPrice: current,
			Reasoning:     "Peak demand is months away, storage costs would outweigh the gain",
		}
	}
	s.PotentialGain = s.ExpectedPrice - current
	return s
}

func monthIn(month int, months []int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}

func monthNames(months []int) []string {
	names := make([]string, 0, len(months))
	for _, m := range months {
		names = append(names, time.Month(m).String())
	}
	return names
}

func insights(peakMonths []int) []string {
	out := []string{
		"Modal prices at nearby mandis move together, compare before traveling",
		"Early-morning arrivals usually fetch better grading",
	}
	if len(peakMonths) > 0 {
		out = append(out, fmt.Sprintf("Peak demand months: %s", strings.Join(monthNames(peakMonths), ", ")))
	}
	return out
}
