package entities

// SoilData is the farmer-supplied (or estimated) soil profile. Zero values
// mean "not measured"; engines substitute conservative defaults.
type SoilData struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	PH         float64 `json:"ph"`
	SoilType   string  `json:"soil_type,omitempty"`
}

// Complete reports whether all three NPK values are present.
func (s SoilData) Complete() bool {
	return s.Nitrogen > 0 && s.Phosphorus > 0 && s.Potassium > 0
}

// Location is a point on the map, optionally named.
type Location struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	LocationName string  `json:"location_name,omitempty"`
}

// Valid reports whether coordinates were actually set.
func (l Location) Valid() bool { return l.Latitude != 0 || l.Longitude != 0 }
