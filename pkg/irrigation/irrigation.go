// Package irrigation computes watering advice from a crop's stage regime,
// measured soil moisture, the irrigation method and the short-term rain
// outlook.
package irrigation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"krishi/entities"
	"krishi/pkg/knowledge"
	"krishi/pkg/weather"
)

type Engine interface {
	Advise(in Input) (*Advice, *knowledge.NotFound)
	DailyCheck(signal *weather.IrrigationSignal) *Alert
}

type Input struct {
	CropName     string
	CurrentStage string
	SoilMoisture float64 // percent
	Method       string  // drip, sprinkler, flood
	Signal       *weather.IrrigationSignal
	Date         time.Time // zero means now
}

type DayPlan struct {
	Day      int    `json:"day"`
	Date     string `json:"date"`
	Irrigate bool   `json:"irrigate"`
	Note     string `json:"note,omitempty"`
}

type CriticalStage struct {
	Stage        string `json:"stage"`
	StartsInDays int    `json:"starts_in_days"`
}

type WeatherData struct {
	RainExpected24h bool    `json:"rain_expected_24h"`
	TotalRainfallMM float64 `json:"total_rainfall_mm"`
	TemperatureMax  float64 `json:"temperature_max"`
}

type Advice struct {
	CropName            string          `json:"crop_name"`
	CurrentStage        string          `json:"current_stage"`
	ShouldIrrigate      bool            `json:"should_irrigate"`
	WaterAmountMM       float64         `json:"water_amount_mm"`
	DurationMinutes     float64         `json:"duration_minutes"`
	FrequencyDays       int             `json:"frequency_days"`
	NextIrrigationDate  string          `json:"next_irrigation_date"`
	Reasons             []string        `json:"reasons"`
	WeeklySchedule      []DayPlan       `json:"weekly_schedule"`
	WaterSavingTips     []string        `json:"water_saving_tips"`
	CriticalStagesAhead []CriticalStage `json:"critical_stages_ahead"`
	WeatherData         *WeatherData    `json:"weather_data,omitempty"`
	AISummary           string          `json:"ai_summary,omitempty"`
}

// Alert is a push-style advisory raised by the daily weather check.
type Alert struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Icon     string `json:"icon"`
}

type engine struct {
	base *knowledge.Base
}

func New(base *knowledge.Base) Engine { return &engine{base: base} }

var stageSynonyms = []struct {
	canonical string
	words     []string
}{
	{"germination", []string{"germination", "sowing", "seed"}},
	{"vegetative", []string{"vegetative", "tillering", "growth"}},
	{"flowering", []string{"flowering", "flower", "reproductive", "panicle", "jointing"}},
	{"maturity", []string{"maturity", "ripening", "grain_filling", "dough"}},
}

// resolveStage maps a free-form stage name onto one of the crop's schedule
// keys. Keys are walked in sorted order so resolution is deterministic.
func resolveStage(schedule map[string]entities.IrrigationStage, stage string) (string, entities.IrrigationStage, bool) {
	if len(schedule) == 0 {
		return "", entities.IrrigationStage{}, false
	}
	keys := make([]string, 0, len(schedule))
	for k := range schedule {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	want := strings.ToLower(strings.TrimSpace(stage))
	for _, k := range keys {
		if strings.Contains(k, want) || strings.Contains(want, k) {
			return k, schedule[k], true
		}
	}
	for _, syn := range stageSynonyms {
		matched := false
		for _, w := range syn.words {
			if strings.Contains(want, w) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, k := range keys {
			for _, w := range syn.words {
				if strings.Contains(k, w) {
					return k, schedule[k], true
				}
			}
		}
	}
	return keys[0], schedule[keys[0]], true
}

func (e *engine) Advise(in Input) (*Advice, *knowledge.NotFound) {
	rec, nf := e.base.Lookup(in.CropName)
	if nf != nil {
		return nil, nf
	}
	now := in.Date
	if now.IsZero() {
		now = time.Now()
	}

	stageKey, regime, ok := resolveStage(rec.IrrigationSchedule, in.CurrentStage)
	if !ok {
		stageKey = in.CurrentStage
		regime = entities.IrrigationStage{FrequencyDays: 10, WaterMM: 50}
	}
	freq := regime.FrequencyDays
	if freq < 1 {
		freq = 1
	}

	amount := regime.WaterMM
	shouldIrrigate := true
	var reasons []string

	switch {
	case in.SoilMoisture > 70:
		amount *= 0.5
		reasons = append(reasons, "Soil moisture is high, reducing water amount")
	case in.SoilMoisture > 50:
		amount *= 0.75
		reasons = append(reasons, "Soil moisture is adequate, slightly reduced amount")
	case in.SoilMoisture < 30:
		amount *= 1.2
		reasons = append(reasons, "Soil moisture is low, increasing water amount")
	}

	if in.Signal != nil && in.Signal.RainExpected24h {
		if in.Signal.TotalRainfallMM > 10 {
			shouldIrrigate = false
			amount = 0
			reasons = append(reasons, fmt.Sprintf("Significant rain expected (%.1fmm), skip irrigation", in.Signal.TotalRainfallMM))
		} else if in.Signal.TotalRainfallMM > 5 {
			amount *= 0.7
			reasons = append(reasons, "Light rain expected, reduced water amount")
		}
	}

	efficiency := map[string]float64{"drip": 0.9, "sprinkler": 0.75, "flood": 0.6}[strings.ToLower(in.Method)]
	if efficiency == 0 {
		efficiency = 0.75
	}
	duration := math.Round(amount / efficiency * 2)

	nextDays := freq
	if !shouldIrrigate {
		nextDays += 2
	}

	advice := &Advice{
		CropName:            in.CropName,
		CurrentStage:        stageKey,
		ShouldIrrigate:      shouldIrrigate,
		WaterAmountMM:       amount,
		DurationMinutes:     duration,
		FrequencyDays:       freq,
		NextIrrigationDate:  now.AddDate(0, 0, nextDays).Format("2006-01-02"),
		Reasons:             reasons,
		WeeklySchedule:      weeklySchedule(now, freq, in.SoilMoisture, in.Signal),
		WaterSavingTips:     waterSavingTips(),
		CriticalStagesAhead: criticalStages(rec, stageKey),
	}
	if in.Signal != nil {
		advice.WeatherData = &WeatherData{
			RainExpected24h: in.Signal.RainExpected24h,
			TotalRainfallMM: in.Signal.TotalRainfallMM,
			TemperatureMax:  in.Signal.TemperatureMax,
		}
	}
	return advice, nil
}

func weeklySchedule(start time.Time, freq int, moisture float64, signal *weather.IrrigationSignal) []DayPlan {
	plans := make([]DayPlan, 0, 7)
	for day := 0; day < 7; day++ {
		p := DayPlan{
			Day:      day,
			Date:     start.AddDate(0, 0, day).Format("2006-01-02"),
			Irrigate: day%freq == 0 && moisture < 70,
		}
		if day <= 1 && signal != nil && signal.RainExpected24h {
			p.Irrigate = false
			p.Note = fmt.Sprintf("Rain predicted (%.1fmm)", signal.TotalRainfallMM)
		}
		plans = append(plans, p)
	}
	return plans
}

var criticalPatterns = []string{"flowering", "flower", "reproductive", "grain", "pod"}

// criticalStages lists up to two water-sensitive stages still ahead of the
// current one.
func criticalStages(rec *entities.CropRecord, current string) []CriticalStage {
	keys := make([]string, 0, len(rec.IrrigationSchedule))
	for k := range rec.IrrigationSchedule {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []CriticalStage
	for _, k := range keys {
		if k == current || len(out) >= 2 {
			continue
		}
		for _, pat := range criticalPatterns {
			if strings.Contains(k, pat) {
				out = append(out, CriticalStage{Stage: titleStage(k), StartsInDays: 15})
				break
			}
		}
	}
	return out
}

func titleStage(k string) string {
	words := strings.Split(strings.ReplaceAll(k, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func waterSavingTips() []string {
	return []string{
		"Mulch around plants to reduce evaporation",
		"Irrigate early morning or late evening",
		"Switch to drip irrigation to save up to 40% water",
		"Maintain field channels to avoid conveyance losses",
	}
}

// DailyCheck raises a skip alert on heavy forecast rain and a heat advisory
// on extreme temperature. Returns nil when no action is needed.
func (e *engine) DailyCheck(signal *weather.IrrigationSignal) *Alert {
	if signal == nil {
		return nil
	}
	if signal.RainExpected24h && signal.TotalRainfallMM > 5 {
		return &Alert{
			Type:     "irrigation_skip",
			Severity: "medium",
			Message:  fmt.Sprintf("Rain expected in the next 24 hours (%.1fmm). Skip today's irrigation.", signal.TotalRainfallMM),
			Icon:     "cloud_off",
		}
	}
	if signal.TemperatureMax > 38 {
		return &Alert{
			Type:     "irrigation_advisory",
			Severity: "high",
			Message:  fmt.Sprintf("High temperature expected (%.1f°C). Irrigate in the evening and increase water amount.", signal.TemperatureMax),
			Icon:     "water_drop",
		}
	}
	return nil
}
