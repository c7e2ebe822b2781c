// Package agro holds the pure matching and scoring rules shared by the
// advisory engines.
package agro

import (
	"math"
	"strings"

	"krishi/entities"
)

// DefaultNPKTolerance widens the acceptable band around a nutrient range.
const DefaultNPKTolerance = 0.15

var seasonMonths = map[string][]int{
	"kharif":     {6, 7, 8},
	"rabi":       {10, 11, 12},
	"summer":     {2, 3, 4},
	"year-round": {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12},
}

// NPKRangeScore scores how well a measured nutrient value fits a required
// range, 0..1. Inside the tolerance-widened band the score is distance from
// the range midpoint with a floor of 0.7; outside it falls off with relative
// distance to the nearest bound. The jump at the band edge is intentional and
// matches the established scoring behavior.
func NPKRangeScore(value float64, req entities.Range, tolerance float64) float64 {
	minVal := req.Min * (1 - tolerance)
	maxVal := req.Max * (1 + tolerance)
	optimal := req.Midpoint()

	if value >= minVal && value <= maxVal {
		distance := math.Abs(value-optimal) / optimal
		return math.Max(0.7, 1-distance)
	}

	var distance float64
	if value < minVal {
		distance = (minVal - value) / minVal
	} else {
		distance = (value - maxVal) / maxVal
	}
	return math.Max(0, 1-distance)
}

// SeasonSuitable reports whether the month (1-12) falls in any of the crop's
// planting seasons. Season descriptors are free text; a descriptor counts
// when its lowercase form contains a known season key.
func SeasonSuitable(seasons []string, month int) bool {
	for _, desc := range seasons {
		lower := strings.ToLower(desc)
		for key, months := range seasonMonths {
			if !strings.Contains(lower, key) {
				continue
			}
			for _, m := range months {
				if m == month {
					return true
				}
			}
		}
	}
	return false
}

const earthRadiusKm = 6371

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// MonthsToNearestPeak returns the minimum cyclic month distance from the
// given month to any peak month. Returns 0 when peaks is empty.
func MonthsToNearestPeak(month int, peaks []int) int {
	best := 0
	for i, pm := range peaks {
		d := pm - month
		if d < 0 {
			d = -d
		}
		if 12-d < d {
			d = 12 - d
		}
		if i == 0 || d < best {
			best = d
		}
	}
	return best
}
