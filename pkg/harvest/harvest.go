// Package harvest predicts harvest timing and yield from the sowing date and
// the season's growing conditions.
package harvest

import (
	"fmt"
	"math"
	"time"

	"krishi/pkg/knowledge"
)

type Engine interface {
	Predict(in Input) (*Prediction, *knowledge.NotFound)
}

type Input struct {
	CropName         string
	SowingDate       string // 2006-01-02
	CropHealth       string // Excellent, Good, Fair, Poor
	PestIncidents    int
	DiseaseIncidents int
	WaterStatus      string // Adequate, Deficit, Excess
	Date             time.Time // zero means now
}

type YieldEstimate struct {
	Estimated float64 `json:"estimated"`
	Unit      string  `json:"unit"`
	Factor    float64 `json:"yield_factor"`
}

type Window struct {
	Earliest string `json:"earliest"`
	Optimal  string `json:"optimal"`
	Latest   string `json:"latest"`
}

type Prediction struct {
	CropName           string        `json:"crop_name"`
	CurrentStage       string        `json:"current_stage"`
	DaysRemaining      int           `json:"days_remaining"`
	PredictedDate      string        `json:"predicted_harvest_date"`
	HarvestWindow      Window        `json:"harvest_window"`
	ExpectedYield      YieldEstimate `json:"expected_yield"`
	QualityGrade       string        `json:"quality_grade"`
	ConfidencePercent  int           `json:"confidence_percent"`
	MaturitySigns      []string      `json:"maturity_signs"`
	PreHarvestActions  []string      `json:"pre_harvest_actions"`
	PostHarvestPlan    []string      `json:"post_harvest_plan"`
	RiskFactors        []string      `json:"risk_factors"`
	FactorsAffecting   []string      `json:"factors_affecting"`
	AISummary          string        `json:"ai_summary,omitempty"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

func (e *engine) Predict(in Input) (*Prediction, *knowledge.NotFound) {
	rec, nf := e.base.Lookup(in.CropName)
	if nf != nil {
		return nil, nf
	}
	now := in.Date
	if now.IsZero() {
		now = time.Now()
	}

	sowing, err := time.Parse("2006-01-02", in.SowingDate)
	if err != nil {
		sowing = now.AddDate(0, 0, -60)
	}

	maturity := rec.HarvestIndicators.MaturityDays
	if maturity <= 0 {
		maturity = 120
	}
	predicted := sowing.AddDate(0, 0, maturity)

	var factors []string
	if in.WaterStatus == "Deficit" {
		predicted = predicted.AddDate(0, 0, 5)
		factors = append(factors, "Water deficit delaying maturity, reduced yield expected")
	}

	factor := yieldFactor(in, &factors)
	weather := weatherFactor(in.WaterStatus, &factors)
	estimated := rec.ExpectedYield.Midpoint() * factor * weather

	daysRemaining := int(predicted.Sub(now).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}
	das := int(now.Sub(sowing).Hours() / 24)

	confidence := 75
	if in.CropHealth == "Good" {
		confidence = 85
	}

	return &Prediction{
		CropName:      in.CropName,
		CurrentStage:  StageFromDAS(das, maturity),
		DaysRemaining: daysRemaining,
		PredictedDate: predicted.Format("2006-01-02"),
		HarvestWindow: Window{
			Earliest: predicted.AddDate(0, 0, -3).Format("2006-01-02"),
			Optimal:  predicted.Format("2006-01-02"),
			Latest:   predicted.AddDate(0, 0, 3).Format("2006-01-02"),
		},
		ExpectedYield: YieldEstimate{
			Estimated: math.Round(estimated*100) / 100,
			Unit:      rec.ExpectedYield.Unit,
			Factor:    factor,
		},
		QualityGrade:      qualityGrade(factor),
		ConfidencePercent: confidence,
		MaturitySigns:     rec.HarvestIndicators.PhysicalSigns,
		PreHarvestActions: []string{
			"Stop irrigation 7-10 days before harvest",
			"Arrange labor and transport in advance",
			"Check maturity signs in multiple field spots",
		},
		PostHarvestPlan: []string{
			"Dry produce to safe moisture before storage",
			"Grade and sort before taking to market",
			"Store in a cool, dry, rodent-free place",
		},
		RiskFactors: []string{
			"Unseasonal rain during the harvest window",
			"Labor shortage at peak harvest time",
			"Price dip if all nearby farms harvest together",
		},
		FactorsAffecting: factors,
	}, nil
}

// yieldFactor scales the base yield by crop health and incident counts, with
// a floor of 0.5. The water status is applied separately so the quality grade
// reflects crop condition alone.
func yieldFactor(in Input, factors *[]string) float64 {
	factor := 1.0
	switch in.CropHealth {
	case "Excellent":
		factor = 1.1
		*factors = append(*factors, "Excellent crop health boosting yield")
	case "Good":
		factor = 1.0
	case "Fair":
		factor = 0.85
		*factors = append(*factors, "Fair crop health reducing yield")
	case "Poor":
		factor = 0.7
		*factors = append(*factors, "Poor crop health significantly reducing yield")
	}

	if in.PestIncidents > 0 {
		factor -= 0.05 * float64(in.PestIncidents)
		*factors = append(*factors, fmt.Sprintf("%d pest incident(s) reported", in.PestIncidents))
	}
	if in.DiseaseIncidents > 0 {
		factor -= 0.10 * float64(in.DiseaseIncidents)
		*factors = append(*factors, fmt.Sprintf("%d disease incident(s) reported", in.DiseaseIncidents))
	}
	if factor < 0.5 {
		factor = 0.5
	}
	return factor
}

func weatherFactor(waterStatus string, factors *[]string) float64 {
	switch waterStatus {
	case "Excess":
		*factors = append(*factors, "Excess water stress reducing yield")
		return 0.85
	case "Deficit":
		return 0.9
	default:
		return 1.0
	}
}

func qualityGrade(factor float64) string {
	switch {
	case factor > 1.05:
		return "A+"
	case factor > 0.95:
		return "A"
	case factor > 0.8:
		return "B"
	default:
		return "C"
	}
}
