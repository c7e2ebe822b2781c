// Package weather wraps the OpenWeatherMap API. Engines never call it; the
// orchestration layer resolves snapshots and signals up front and injects
// them as optional context.
package weather

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Snapshot is the current-weather context used for risk assessment. Fields
// mirror may-be-absent API data; zero means not reported.
type Snapshot struct {
	Rain1h      float64 `json:"rain_1h"`
	Temperature float64 `json:"temperature"`
	TempMax     float64 `json:"temperature_max"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
}

// IrrigationSignal is the forecast digest the irrigation engine consumes.
type IrrigationSignal struct {
	RainExpected24h bool    `json:"rain_expected_24h"`
	TotalRainfallMM float64 `json:"total_rainfall_mm"`
	TemperatureMax  float64 `json:"temperature_max"`
	Recommendation  string  `json:"recommendation"`
}

type Service struct {
	client *resty.Client
	apiKey string
}

const baseURL = "https://api.openweathermap.org/data/2.5"

func NewService(apiKey string) *Service {
	return &Service{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(15 * time.Second),
		apiKey: apiKey,
	}
}

type currentResp struct {
	Main struct {
		Temp     float64 `json:"temp"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Rain struct {
		OneH float64 `json:"1h"`
	} `json:"rain"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

type forecastResp struct {
	List []struct {
		Main struct {
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Rain map[string]float64 `json:"rain"`
	} `json:"list"`
}

// Current fetches the current weather at the given coordinates.
func (s *Service) Current(lat, lon float64) (*Snapshot, error) {
	var out currentResp
	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%f", lat),
			"lon":   fmt.Sprintf("%f", lon),
			"appid": s.apiKey,
			"units": "metric",
		}).
		SetResult(&out).
		Get("/weather")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather api: %s", resp.Status())
	}
	snap := &Snapshot{
		Rain1h:      out.Rain.OneH,
		Temperature: out.Main.Temp,
		TempMax:     out.Main.TempMax,
		Humidity:    out.Main.Humidity,
	}
	if len(out.Weather) > 0 {
		snap.Description = out.Weather[0].Description
	}
	return snap, nil
}

// AnalyzeForIrrigation digests the next 24h of the 3-hourly forecast into an
// irrigation signal.
func (s *Service) AnalyzeForIrrigation(lat, lon float64) (*IrrigationSignal, error) {
	var out forecastResp
	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%f", lat),
			"lon":   fmt.Sprintf("%f", lon),
			"appid": s.apiKey,
			"units": "metric",
			"cnt":   "24", // 3 days of 3-hour slots
		}).
		SetResult(&out).
		Get("/forecast")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("weather forecast: %s", resp.Status())
	}

	signal := &IrrigationSignal{}
	for i, item := range out.List {
		if i >= 8 { // next 24 hours
			break
		}
		if mm, ok := item.Rain["3h"]; ok {
			signal.RainExpected24h = true
			signal.TotalRainfallMM += mm
		}
		if item.Main.TempMax > signal.TemperatureMax {
			signal.TemperatureMax = item.Main.TempMax
		}
	}
	if signal.TotalRainfallMM > 10 {
		signal.Recommendation = "skip"
	} else {
		signal.Recommendation = "proceed"
	}
	return signal, nil
}
