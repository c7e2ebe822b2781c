package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"krishi/pkg/marketdata"
	"krishi/pkg/marketdata/controller"
)

type MandiCtrl struct {
	client *marketdata.Client
}

func New(client *marketdata.Client) controller.MandiController { return &MandiCtrl{client: client} }

// Prices serves filtered AGMARKNET records. All filters are optional query
// params: state, district, commodity.
func (h *MandiCtrl) Prices(c echo.Context) error {
	if h.client == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "mandi data source not configured"})
	}
	records, err := h.client.FetchAll()
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	records = marketdata.FilterByLocation(records, c.QueryParam("state"), c.QueryParam("district"))
	records = marketdata.FilterByCommodity(records, c.QueryParam("commodity"))
	return c.JSON(http.StatusOK, map[string]any{"count": len(records), "records": records})
}
