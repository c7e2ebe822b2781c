package entities

// Market is one candidate mandi with its quoted price per quintal.
type Market struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Location Location `json:"location"`
}

// MandiRecord is a processed AGMARKNET price record.
type MandiRecord struct {
	State       string  `json:"state"`
	District    string  `json:"district"`
	Market      string  `json:"market"`
	Commodity   string  `json:"commodity"`
	Variety     string  `json:"variety"`
	ArrivalDate string  `json:"arrival_date"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	ModalPrice  float64 `json:"modal_price"`
}
