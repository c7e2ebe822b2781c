package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"krishi/config"
	"krishi/database"
	"krishi/router"

	// Advisory
	advCtrlImp "krishi/pkg/advisory/controllerImp"

	// Enrichment
	"krishi/pkg/enrich"
	enrichCtrlImp "krishi/pkg/enrich/controllerImp"

	// Mandi prices
	"krishi/pkg/marketdata"
	mandiCtrlImp "krishi/pkg/marketdata/controllerImp"

	// Health
	healthCtrlImp "krishi/pkg/health/controllerImp"

	"krishi/pkg/ai"
	"krishi/pkg/knowledge"
	"krishi/pkg/orchestrator"
	"krishi/pkg/soil"
	"krishi/pkg/weather"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) LLM (mock fallback)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// 4) Knowledge base: static crops + fertilizer catalog + learned crops
	catalog, err := knowledge.NewCatalog(cfg.FertilizerPriceXLSX)
	if err != nil {
		log.Fatalf("fertilizer catalog: %v", err)
	}
	store := enrich.NewStore(db)
	base := knowledge.NewBase(catalog, store)

	// 5) External data services
	var wsvc *weather.Service
	if cfg.OpenWeatherAPIKey != "" {
		wsvc = weather.NewService(cfg.OpenWeatherAPIKey)
	} else {
		log.Printf("WARN: OPENWEATHER_API_KEY not set, weather-aware advice disabled")
	}
	var mandi *marketdata.Client
	if cfg.DataGovAPIKey != "" {
		mandi = marketdata.NewClient(cfg.DataGovAPIKey, cfg.DataGovDatasetID)
	} else {
		log.Printf("WARN: DATA_GOV_API_KEY not set, mandi price endpoint disabled")
	}

	// 6) Orchestrator
	logs := orchestrator.NewLogStore(db)
	orch := orchestrator.New(base, orchestrator.Options{
		Weather: wsvc,
		Soil:    soil.NewService(),
		LLM:     llm,
		Logs:    logs,
	})

	// 7) Enrichment wiring
	scraper := enrich.NewScraper(cfg.KBAllowedDomains, cfg.KBMaxBytesPerPage)
	enrichSvc := enrich.NewService(scraper, llm, store)

	// 8) Controllers
	advCtrl := advCtrlImp.New(orch, base, logs)
	eCtrl := enrichCtrlImp.New(enrichSvc)
	mCtrl := mandiCtrlImp.New(mandi)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, base)

	// 9) Echo + router
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, cfg.JWTSecret, cfg.EnableAuth, advCtrl, eCtrl, mCtrl, hCtrl)

	// 10) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
