package router

import (
	"github.com/labstack/echo/v4"

	"krishi/pkg/middleware"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	authEnabled bool,
	advCtrl interface {
		PlanCrops(echo.Context) error
		PlanFertilizer(echo.Context) error
		AdviseIrrigation(echo.Context) error
		DiagnoseDisease(echo.Context) error
		PredictHarvest(echo.Context) error
		ProjectPrice(echo.Context) error
		RankMarkets(echo.Context) error
		Comprehensive(echo.Context) error
		DailyAdvisory(echo.Context) error
		ListCrops(echo.Context) error
		GetCrop(echo.Context) error
		RecentLogs(echo.Context) error
	},
	enrichCtrl interface {
		LearnFromURL(echo.Context) error
		ListLearned(echo.Context) error
	},
	mandiCtrl interface{ Prices(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/auth/devlogin", middleware.DevLogin(jwtSecret))

	api := e.Group("/api", middleware.JWT(jwtSecret, authEnabled))

	api.GET("/crops", advCtrl.ListCrops)
	api.GET("/crops/:name", advCtrl.GetCrop)

	g := api.Group("/advisory")
	g.POST("/plan", advCtrl.PlanCrops)
	g.POST("/fertilizer", advCtrl.PlanFertilizer)
	g.POST("/irrigation", advCtrl.AdviseIrrigation)
	g.POST("/disease", advCtrl.DiagnoseDisease)
	g.POST("/harvest", advCtrl.PredictHarvest)
	g.POST("/price", advCtrl.ProjectPrice)
	g.POST("/market", advCtrl.RankMarkets)
	g.POST("/comprehensive", advCtrl.Comprehensive)
	g.GET("/daily", advCtrl.DailyAdvisory)
	g.GET("/logs", advCtrl.RecentLogs)

	api.POST("/knowledge/learn", enrichCtrl.LearnFromURL)
	api.GET("/knowledge/learned", enrichCtrl.ListLearned)

	api.GET("/mandi/prices", mandiCtrl.Prices)
	return e
}
