package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"krishi/pkg/enrich"
	"krishi/pkg/enrich/controller"
)

type EnrichCtrl struct {
	svc *enrich.Service
}

func New(svc *enrich.Service) controller.EnrichController { return &EnrichCtrl{svc: svc} }

func (h *EnrichCtrl) LearnFromURL(c echo.Context) error {
	var body struct {
		CropName string `json:"crop_name"`
		URL      string `json:"url"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
	}
	if strings.TrimSpace(body.CropName) == "" || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name and url are required"})
	}
	rec, err := h.svc.LearnFromURL(body.CropName, body.URL)
	if err != nil {
		if strings.Contains(err.Error(), "not allowed") {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"crop_name": strings.ToLower(body.CropName), "record": rec})
}

func (h *EnrichCtrl) ListLearned(c echo.Context) error {
	names, err := h.svc.Known()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"crops": names})
}
