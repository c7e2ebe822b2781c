// Package market ranks candidate mandis by net realization after transport
// and suggests where and when to sell.
package market

import (
	"fmt"
	"math"
	"sort"
	"time"

	"krishi/entities"
	"krishi/pkg/agro"
	"krishi/pkg/knowledge"
)

const transportRatePerKm = 5

type Engine interface {
	Rank(in Input) (*Ranking, *knowledge.NotFound)
}

type Input struct {
	CropName       string
	FarmerLocation entities.Location
	Markets        []entities.Market
	Date           time.Time
}

type RankedMarket struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	DistanceKm    float64 `json:"distance_km"`
	TransportCost float64 `json:"transport_cost"`
	NetPrice      float64 `json:"net_price"`
	PriceLevel    string  `json:"price_level"`
}

type Ranking struct {
	CropName                  string         `json:"crop_name"`
	Markets                   []RankedMarket `json:"markets"`
	AverageMarketPrice        float64        `json:"average_market_price"`
	PriceTrend                string         `json:"price_trend"`
	Recommendation            string         `json:"recommendation"`
	MarketInsights            []string       `json:"market_insights"`
	BestPractices             []string       `json:"best_practices"`
	AlternativeSellingOptions []string       `json:"alternative_selling_options"`
	AISummary                 string         `json:"ai_summary,omitempty"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

func (e *engine) Rank(in Input) (*Ranking, *knowledge.NotFound) {
	rec, nf := e.base.Lookup(in.CropName)
	if nf != nil {
		return nil, nf
	}
	now := in.Date
	if now.IsZero() {
		now = time.Now()
	}

	// Baseline is the crop's calendar average, not the mean of the
	// submitted quotes.
	avg := rec.MarketCalendar.AvgPrice(3000)

	ranked := make([]RankedMarket, 0, len(in.Markets))
	for _, m := range in.Markets {
		dist := agro.HaversineKm(
			in.FarmerLocation.Latitude, in.FarmerLocation.Longitude,
			m.Location.Latitude, m.Location.Longitude,
		)
		transport := dist * transportRatePerKm
		ranked = append(ranked, RankedMarket{
			Name:          m.Name,
			Price:         m.Price,
			DistanceKm:    math.Round(dist*10) / 10,
			TransportCost: math.Round(transport),
			NetPrice:      math.Round(m.Price - transport),
			PriceLevel:    priceLevel(m.Price, avg),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].NetPrice > ranked[j].NetPrice })
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	return &Ranking{
		CropName:           in.CropName,
		Markets:            ranked,
		AverageMarketPrice: math.Round(avg),
		PriceTrend:         priceTrend(int(now.Month()), rec.MarketCalendar.PeakDemandMonths),
		Recommendation:     recommendation(ranked, avg),
		MarketInsights: []string{
			"Net price after transport matters more than the headline rate",
			"Call the mandi before traveling, quoted prices move daily",
		},
		BestPractices: []string{
			"Grade and clean produce before auction",
			"Carry a soil health card and quality certificates if available",
			"Sell through a licensed commission agent to avoid payment delays",
		},
		AlternativeSellingOptions: []string{
			"eNAM online auction",
			"Farmer Producer Organization aggregation",
			"Direct sale to local processors",
		},
	}, nil
}

func priceLevel(price, avg float64) string {
	switch {
	case price > avg*1.1:
		return "Excellent"
	case price > avg:
		return "Good"
	case price > avg*0.9:
		return "Average"
	default:
		return "Below Average"
	}
}

// priceTrend compares the current month and its neighbors against the crop's
// peak calendar. Neighbors wrap modulo 12, so January's previous month lands
// on slot zero; that slot never matches a calendar month and a December peak
// reads as stable from January.
func priceTrend(month int, peaks []int) string {
	if monthIn(month, peaks) {
		return "stable"
	}
	if monthIn((month+1)%12, peaks) {
		return "rising"
	}
	if monthIn((month-1)%12, peaks) {
		return "falling"
	}
	return "stable"
}

func recommendation(ranked []RankedMarket, avg float64) string {
	if len(ranked) == 0 {
		return "No market data available. Check AGMARKNET or the nearest APMC for current prices."
	}
	best := ranked[0]
	if best.NetPrice > avg*1.05 {
		return fmt.Sprintf("Sell immediately at %s, its net price is well above the crop's average rate.", best.Name)
	}
	if best.DistanceKm > 50 {
		return fmt.Sprintf("%s pays best net of transport, but check local mandis first given the %.0fkm haul.", best.Name, best.DistanceKm)
	}
	return fmt.Sprintf("Sell at %s for the best net realization.", best.Name)
}

func monthIn(month int, months []int) bool {
	for _, m := range months {
		if m == month {
			return true
		}
	}
	return false
}
