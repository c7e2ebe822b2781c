package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"krishi/entities"
	"krishi/pkg/advisory/controller"
	"krishi/pkg/knowledge"
	"krishi/pkg/orchestrator"
)

type AdvisoryCtrl struct {
	orch *orchestrator.Orchestrator
	base *knowledge.Base
	logs *orchestrator.LogStore
}

func New(orch *orchestrator.Orchestrator, base *knowledge.Base, logs *orchestrator.LogStore) controller.AdvisoryController {
	return &AdvisoryCtrl{orch: orch, base: base, logs: logs}
}

func (h *AdvisoryCtrl) PlanCrops(c echo.Context) error {
	var req orchestrator.PlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	return c.JSON(http.StatusOK, h.orch.PlanCrops(req))
}

func (h *AdvisoryCtrl) PlanFertilizer(c echo.Context) error {
	var req orchestrator.FertilizerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	plan, nf := h.orch.PlanFertilizer(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, plan)
}

func (h *AdvisoryCtrl) AdviseIrrigation(c echo.Context) error {
	var req orchestrator.IrrigationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	advice, nf := h.orch.AdviseIrrigation(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, advice)
}

func (h *AdvisoryCtrl) DiagnoseDisease(c echo.Context) error {
	var req orchestrator.DiseaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	diag, nf := h.orch.DiagnoseDisease(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, diag)
}

func (h *AdvisoryCtrl) PredictHarvest(c echo.Context) error {
	var req orchestrator.HarvestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	pred, nf := h.orch.PredictHarvest(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, pred)
}

func (h *AdvisoryCtrl) ProjectPrice(c echo.Context) error {
	var req orchestrator.PriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	proj, nf := h.orch.ProjectPrice(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, proj)
}

func (h *AdvisoryCtrl) RankMarkets(c echo.Context) error {
	var req orchestrator.MarketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	ranking, nf := h.orch.RankMarkets(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, ranking)
}

func (h *AdvisoryCtrl) Comprehensive(c echo.Context) error {
	var req orchestrator.ComprehensiveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if req.CropName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name is required"})
	}
	res, nf := h.orch.ComprehensiveAnalysis(req)
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AdvisoryCtrl) DailyAdvisory(c echo.Context) error {
	lat, err1 := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err1 != nil || err2 != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lon are required"})
	}
	alert, err := h.orch.DailyAdvisory(entities.Location{Latitude: lat, Longitude: lon})
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if alert == nil {
		return c.JSON(http.StatusOK, map[string]any{"alert": nil, "message": "No action needed today"})
	}
	return c.JSON(http.StatusOK, map[string]any{"alert": alert})
}

func (h *AdvisoryCtrl) ListCrops(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"crops": h.base.CropNames()})
}

func (h *AdvisoryCtrl) GetCrop(c echo.Context) error {
	rec, nf := h.base.Lookup(c.Param("name"))
	if nf != nil {
		return c.JSON(http.StatusNotFound, nf)
	}
	return c.JSON(http.StatusOK, rec)
}

func (h *AdvisoryCtrl) RecentLogs(c echo.Context) error {
	if h.logs == nil {
		return c.JSON(http.StatusOK, []entities.AgentLog{})
	}
	n, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := h.logs.Recent(n)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, entries)
}
