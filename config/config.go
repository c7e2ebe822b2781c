package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	OpenWeatherAPIKey string
	DataGovAPIKey     string
	DataGovDatasetID  string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	JWTSecret  string
	EnableAuth bool

	KBAllowedDomains  []string
	KBMaxBytesPerPage int

	FertilizerPriceXLSX string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	maxBytes := 1500000
	if v := get("KB_MAX_BYTES_PER_PAGE", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxBytes = n
		}
	}
	var domains []string
	for _, d := range strings.Split(get("KB_ALLOWED_DOMAINS", ""), ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}
	cfg := AppConfig{
		Port:                get("PORT", "8080"),
		Timezone:            get("TZ", "Asia/Kolkata"),
		DBPath:              get("DB_PATH", "krishi.db"),
		OpenWeatherAPIKey:   get("OPENWEATHER_API_KEY", ""),
		DataGovAPIKey:       get("DATA_GOV_API_KEY", ""),
		DataGovDatasetID:    get("DATA_GOV_DATASET_ID", "9ef84268-d588-465a-a308-a864a43d0070"),
		LLMEndpoint:         get("LLM_ENDPOINT", ""),
		LLMAPIKey:           get("LLM_API_KEY", ""),
		LLMModel:            get("LLM_MODEL", "gpt-4o-mini"),
		JWTSecret:           get("JWT_SECRET", "dev-secret-change-me"),
		EnableAuth:          get("ENABLE_AUTH", "false") == "true",
		KBAllowedDomains:    domains,
		KBMaxBytesPerPage:   maxBytes,
		FertilizerPriceXLSX: get("FERTILIZER_PRICE_XLSX", ""),
	}
	log.Printf("[cfg] port=%s db=%s auth=%v weather=%v mandi=%v llm=%v",
		cfg.Port, cfg.DBPath, cfg.EnableAuth,
		cfg.OpenWeatherAPIKey != "", cfg.DataGovAPIKey != "", cfg.LLMEndpoint != "")
	return cfg
}
