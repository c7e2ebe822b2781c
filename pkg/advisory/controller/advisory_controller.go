package controller

import "github.com/labstack/echo/v4"

type AdvisoryController interface {
	PlanCrops(c echo.Context) error
	PlanFertilizer(c echo.Context) error
	AdviseIrrigation(c echo.Context) error
	DiagnoseDisease(c echo.Context) error
	PredictHarvest(c echo.Context) error
	ProjectPrice(c echo.Context) error
	RankMarkets(c echo.Context) error
	Comprehensive(c echo.Context) error
	DailyAdvisory(c echo.Context) error
	ListCrops(c echo.Context) error
	GetCrop(c echo.Context) error
	RecentLogs(c echo.Context) error
}
