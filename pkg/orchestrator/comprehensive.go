package orchestrator

import (
	"time"

	"github.com/google/uuid"

	"krishi/entities"
	"krishi/pkg/disease"
	"krishi/pkg/fertilizer"
	"krishi/pkg/harvest"
	"krishi/pkg/irrigation"
	"krishi/pkg/knowledge"
	"krishi/pkg/price"
	"krishi/pkg/weather"
)

type ComprehensiveRequest struct {
	CropName     string            `json:"crop_name"`
	AreaAcres    float64           `json:"area_acres"`
	SowingDate   string            `json:"sowing_date"`
	CurrentStage string            `json:"current_stage"`
	SoilMoisture float64           `json:"soil_moisture"`
	Method       string            `json:"irrigation_method"`
	Symptoms     []string          `json:"symptoms"`
	CropHealth   string            `json:"crop_health"`
	WaterStatus  string            `json:"water_status"`
	CurrentPrice float64           `json:"current_price"`
	Location     entities.Location `json:"location"`
	Summarize    bool              `json:"summarize"`
}

// ComprehensiveResult bundles every engine's view of one crop. Disease is
// present only when symptoms were reported.
type ComprehensiveResult struct {
	RunID         string               `json:"run_id"`
	CropName      string               `json:"crop_name"`
	Fertilization *fertilizer.Plan     `json:"fertilization"`
	Irrigation    *irrigation.Advice   `json:"irrigation"`
	Disease       *disease.Diagnosis   `json:"disease,omitempty"`
	Harvest       *harvest.Prediction  `json:"harvest"`
	Price         *price.Projection    `json:"price"`
	GeneratedAt   string               `json:"generated_at"`
	AISummary     string               `json:"comprehensive_ai_summary,omitempty"`
}

// ComprehensiveAnalysis runs all applicable engines for one crop. The crop is
// resolved once; an unknown crop fails the whole request with the shared
// NotFound shape.
func (o *Orchestrator) ComprehensiveAnalysis(req ComprehensiveRequest) (*ComprehensiveResult, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()
	if _, nf := o.base.Lookup(req.CropName); nf != nil {
		o.logs.Record(runID, "comprehensive", req.CropName, "analyze", "not_found", time.Since(start))
		return nil, nf
	}

	var signal *weather.IrrigationSignal
	if o.weather != nil && req.Location.Valid() {
		if sig, err := o.weather.AnalyzeForIrrigation(req.Location.Latitude, req.Location.Longitude); err == nil {
			signal = sig
		}
	}

	out := &ComprehensiveResult{
		RunID:       runID,
		CropName:    req.CropName,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}
	out.Fertilization, _ = o.fertilizer.Plan(req.CropName, req.AreaAcres)
	out.Irrigation, _ = o.irrigation.Advise(irrigation.Input{
		CropName:     req.CropName,
		CurrentStage: req.CurrentStage,
		SoilMoisture: req.SoilMoisture,
		Method:       req.Method,
		Signal:       signal,
	})
	if len(req.Symptoms) > 0 {
		out.Disease, _ = o.disease.Diagnose(req.CropName, req.Symptoms)
	}
	out.Harvest, _ = o.harvest.Predict(harvest.Input{
		CropName:         req.CropName,
		SowingDate:       req.SowingDate,
		CropHealth:       req.CropHealth,
		PestIncidents:    0,
		DiseaseIncidents: len(req.Symptoms),
		WaterStatus:      req.WaterStatus,
	})
	harvestDate := ""
	if out.Harvest != nil {
		harvestDate = out.Harvest.PredictedDate
	}
	out.Price, _ = o.price.Project(price.Input{
		CropName:            req.CropName,
		ExpectedHarvestDate: harvestDate,
		CurrentPrice:        req.CurrentPrice,
	})

	if req.Summarize && o.llm != nil {
		out.AISummary = o.llm.Summarize("comprehensive", out, req.CropName)
	}
	o.logs.Record(runID, "comprehensive", req.CropName, "analyze", "success", time.Since(start))
	return out, nil
}
