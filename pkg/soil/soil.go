// Package soil estimates soil profiles from regional tables. A proper soil
// API can replace the tables later; the shape stays the same.
package soil

import "krishi/entities"

// Estimate is a regional soil estimate for a coordinate.
type Estimate struct {
	Coordinates entities.Location `json:"coordinates"`
	Nitrogen    float64           `json:"nitrogen"`
	Phosphorus  float64           `json:"phosphorus"`
	Potassium   float64           `json:"potassium"`
	PH          float64           `json:"ph"`
	SoilType    string            `json:"soil_type"`
	Source      string            `json:"source"`
	Note        string            `json:"note"`
}

type regionSoil struct {
	n, p, k, ph float64
	soilType    string
}

var regionEstimates = map[string]regionSoil{
	"maharashtra": {45, 30, 35, 7.2, "Black Soil"},
	"karnataka":   {40, 28, 32, 6.8, "Red Soil"},
	"punjab":      {55, 35, 40, 7.5, "Alluvial Soil"},
	"default":     {42, 30, 34, 7.0, "Mixed Soil"},
}

type Service struct{}

func NewService() *Service { return &Service{} }

// Estimate returns regional soil values for the coordinates. Always succeeds;
// unknown regions get the default profile.
func (s *Service) Estimate(lat, lon float64) *Estimate {
	region := regionFor(lat, lon)
	rs := regionEstimates[region]
	source := "estimated"
	if region == "default" {
		source = "default"
	}
	return &Estimate{
		Coordinates: entities.Location{Latitude: lat, Longitude: lon},
		Nitrogen:    rs.n,
		Phosphorus:  rs.p,
		Potassium:   rs.k,
		PH:          rs.ph,
		SoilType:    rs.soilType,
		Source:      source,
		Note:        "For accurate data, consider soil testing at local agricultural lab",
	}
}

func regionFor(lat, lon float64) string {
	switch {
	case lat >= 15 && lat <= 22 && lon >= 72 && lon <= 80:
		return "maharashtra"
	case lat >= 11 && lat <= 18 && lon >= 74 && lon <= 78:
		return "karnataka"
	case lat >= 29 && lat <= 32 && lon >= 74 && lon <= 76:
		return "punjab"
	default:
		return "default"
	}
}
