// Package orchestrator wires the advisory engines to live weather, soil
// estimates and the language model, and composes multi-engine analyses.
package orchestrator

import (
	"log"
	"time"

	"github.com/google/uuid"

	"krishi/entities"
	"krishi/pkg/ai"
	"krishi/pkg/disease"
	"krishi/pkg/fertilizer"
	"krishi/pkg/harvest"
	"krishi/pkg/irrigation"
	"krishi/pkg/knowledge"
	"krishi/pkg/market"
	"krishi/pkg/planner"
	"krishi/pkg/price"
	"krishi/pkg/soil"
	"krishi/pkg/weather"
)

type Orchestrator struct {
	base       *knowledge.Base
	planner    planner.Engine
	fertilizer fertilizer.Engine
	irrigation irrigation.Engine
	disease    disease.Engine
	harvest    harvest.Engine
	price      price.Engine
	market     market.Engine

	weather *weather.Service // optional
	soil    *soil.Service
	llm     ai.Client // optional
	logs    *LogStore // optional
}

type Options struct {
	Weather *weather.Service
	Soil    *soil.Service
	LLM     ai.Client
	Logs    *LogStore
}

func New(base *knowledge.Base, opts Options) *Orchestrator {
	s := opts.Soil
	if s == nil {
		s = soil.NewService()
	}
	return &Orchestrator{
		base:       base,
		planner:    planner.New(base),
		fertilizer: fertilizer.New(base),
		irrigation: irrigation.New(base),
		disease:    disease.New(base),
		harvest:    harvest.New(base),
		price:      price.New(base),
		market:     market.New(base),
		weather:    opts.Weather,
		soil:       s,
		llm:        opts.LLM,
		logs:       opts.Logs,
	}
}

type PlanRequest struct {
	Soil      entities.SoilData `json:"soil_data"`
	Location  entities.Location `json:"location"`
	Summarize bool              `json:"summarize"`
}

// PlanCrops merges user soil data with the regional estimate, pulls current
// weather when a location is given, and runs the crop planner.
func (o *Orchestrator) PlanCrops(req PlanRequest) *planner.Plan {
	runID := uuid.NewString()
	start := time.Now()

	merged := req.Soil
	if !merged.Complete() && req.Location.Valid() {
		est := o.soil.Estimate(req.Location.Latitude, req.Location.Longitude)
		merged = planner.MergeSoil(merged, est)
	} else {
		merged = planner.MergeSoil(merged, nil)
	}

	var snap *weather.Snapshot
	if o.weather != nil && req.Location.Valid() {
		if s, err := o.weather.Current(req.Location.Latitude, req.Location.Longitude); err == nil {
			snap = s
		} else {
			log.Printf("[orchestrator] weather fetch failed: %v", err)
		}
	}

	plan := o.planner.Recommend(planner.Input{Soil: merged, Location: req.Location, Weather: snap})
	if req.Summarize && o.llm != nil {
		plan.AISummary = o.llm.Summarize("crop_planning", plan, locationCtx(req.Location))
	}
	o.logs.Record(runID, "crop_planning", "", "recommend", "success", time.Since(start))
	return plan
}

type FertilizerRequest struct {
	CropName  string  `json:"crop_name"`
	AreaAcres float64 `json:"area_acres"`
	Summarize bool    `json:"summarize"`
}

func (o *Orchestrator) PlanFertilizer(req FertilizerRequest) (*fertilizer.Plan, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()
	plan, nf := o.fertilizer.Plan(req.CropName, req.AreaAcres)
	if nf != nil {
		o.logs.Record(runID, "fertilization", req.CropName, "plan", "not_found", time.Since(start))
		return nil, nf
	}
	if req.Summarize && o.llm != nil {
		plan.AISummary = o.llm.Summarize("fertilization", plan, req.CropName)
	}
	o.logs.Record(runID, "fertilization", req.CropName, "plan", "success", time.Since(start))
	return plan, nil
}

type IrrigationRequest struct {
	CropName     string            `json:"crop_name"`
	CurrentStage string            `json:"current_stage"`
	SoilMoisture float64           `json:"soil_moisture"`
	Method       string            `json:"irrigation_method"`
	Location     entities.Location `json:"location"`
	Summarize    bool              `json:"summarize"`
}

func (o *Orchestrator) AdviseIrrigation(req IrrigationRequest) (*irrigation.Advice, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()

	var signal *weather.IrrigationSignal
	if o.weather != nil && req.Location.Valid() {
		if sig, err := o.weather.AnalyzeForIrrigation(req.Location.Latitude, req.Location.Longitude); err == nil {
			signal = sig
		} else {
			log.Printf("[orchestrator] forecast fetch failed: %v", err)
		}
	}

	advice, nf := o.irrigation.Advise(irrigation.Input{
		CropName:     req.CropName,
		CurrentStage: req.CurrentStage,
		SoilMoisture: req.SoilMoisture,
		Method:       req.Method,
		Signal:       signal,
	})
	if nf != nil {
		o.logs.Record(runID, "irrigation", req.CropName, "advise", "not_found", time.Since(start))
		return nil, nf
	}
	if req.Summarize && o.llm != nil {
		advice.AISummary = o.llm.Summarize("irrigation", advice, req.CropName)
	}
	o.logs.Record(runID, "irrigation", req.CropName, "advise", "success", time.Since(start))
	return advice, nil
}

type DiseaseRequest struct {
	CropName  string   `json:"crop_name"`
	Symptoms  []string `json:"symptoms"`
	Summarize bool     `json:"summarize"`
}

func (o *Orchestrator) DiagnoseDisease(req DiseaseRequest) (*disease.Diagnosis, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()
	diag, nf := o.disease.Diagnose(req.CropName, req.Symptoms)
	if nf != nil {
		o.logs.Record(runID, "disease", req.CropName, "diagnose", "not_found", time.Since(start))
		return nil, nf
	}
	if req.Summarize && o.llm != nil {
		diag.AISummary = o.llm.Summarize("disease_diagnosis", diag, req.CropName)
	}
	o.logs.Record(runID, "disease", req.CropName, "diagnose", "success", time.Since(start))
	return diag, nil
}

type HarvestRequest struct {
	CropName         string `json:"crop_name"`
	SowingDate       string `json:"sowing_date"`
	CropHealth       string `json:"crop_health"`
	PestIncidents    int    `json:"pest_incidents"`
	DiseaseIncidents int    `json:"disease_incidents"`
	WaterStatus      string `json:"water_status"`
	Summarize        bool   `json:"summarize"`
}

func (o *Orchestrator) PredictHarvest(req HarvestRequest) (*harvest.Prediction, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()
	pred, nf := o.harvest.Predict(harvest.Input{
		CropName:         req.CropName,
		SowingDate:       req.SowingDate,
		CropHealth:       req.CropHealth,
		PestIncidents:    req.PestIncidents,
		DiseaseIncidents: req.DiseaseIncidents,
		WaterStatus:      req.WaterStatus,
	})
	if nf != nil {
		o.logs.Record(runID, "harvest", req.CropName, "predict", "not_found", time.Since(start))
		return nil, nf
	}
	if req.Summarize && o.llm != nil {
		pred.AISummary = o.llm.Summarize("harvest_prediction", pred, req.CropName)
	}
	o.logs.Record(runID, "harvest", req.CropName, "predict", "success", time.Since(start))
	return pred, nil
}

type PriceRequest struct {
	CropName            string  `json:"crop_name"`
	ExpectedHarvestDate string  `json:"expected_harvest_date"`
	CurrentPrice        float64 `json:"current_price"`
	Summarize           bool    `json:"summarize"`
}

func (o *Orchestrator) ProjectPrice(req PriceRequest) (*price.Projection, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()
	proj, nf := o.price.Project(price.Input{
		CropName:            req.CropName,
		ExpectedHarvestDate: req.ExpectedHarvestDate,
		CurrentPrice:        req.CurrentPrice,
	})
	if nf != nil {
		o.logs.Record(runID, "price", req.CropName, "project", "not_found", time.Since(start))
		return nil, nf
	}
	if req.Summarize && o.llm != nil {
		proj.AISummary = o.llm.Summarize("price_projection", proj, req.CropName)
	}
	o.logs.Record(runID, "price", req.CropName, "project", "success", time.Since(start))
	return proj, nil
}

type MarketRequest struct {
	CropName       string            `json:"crop_name"`
	FarmerLocation entities.Location `json:"farmer_location"`
	Markets        []entities.Market `json:"markets"`
	Summarize      bool              `json:"summarize"`
}

func (o *Orchestrator) RankMarkets(req MarketRequest) (*market.Ranking, *knowledge.NotFound) {
	runID := uuid.NewString()
	start := time.Now()
	ranking, nf := o.market.Rank(market.Input{
		CropName:       req.CropName,
		FarmerLocation: req.FarmerLocation,
		Markets:        req.Markets,
	})
	if nf != nil {
		o.logs.Record(runID, "market", req.CropName, "rank", "not_found", time.Since(start))
		return nil, nf
	}
	if req.Summarize && o.llm != nil {
		ranking.AISummary = o.llm.Summarize("market_ranking", ranking, req.CropName)
	}
	o.logs.Record(runID, "market", req.CropName, "rank", "success", time.Since(start))
	return ranking, nil
}

// DailyAdvisory runs the morning weather check for a location. A nil alert
// means no action is needed today.
func (o *Orchestrator) DailyAdvisory(loc entities.Location) (*irrigation.Alert, error) {
	if o.weather == nil {
		return nil, nil
	}
	signal, err := o.weather.AnalyzeForIrrigation(loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}
	return o.irrigation.DailyCheck(signal), nil
}

func locationCtx(loc entities.Location) string {
	if loc.LocationName != "" {
		return loc.LocationName
	}
	return "Maharashtra"
}
