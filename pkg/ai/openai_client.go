// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) Summarize(section string, payload any, userCtx string) string {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are Krishidnya, a Maharashtra farm advisor. Write 3-5 short, practical sentences a farmer can act on today. Plain language, no jargon."},
			{"role": "user", "content": renderSummaryPrompt(section, payload, userCtx)},
		},
		"temperature": 0.2,
	}

	content, err := c.chat(reqBody)
	if err != nil || content == "" {
		return fallbackSummary(section)
	}
	return content
}

func (c *openAI) StructureCropData(cropName, pageText string) (string, error) {
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": "You are an agronomy data extractor. Reply ONLY valid JSON."},
			{"role": "user", "content": renderStructurePrompt(cropName, pageText)},
		},
		"temperature": 0,
	}

	content, err := c.chat(reqBody)
	if err != nil {
		return "", err
	}
	// Models sometimes fence the JSON.
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty structuring response for %s", cropName)
	}
	return content, nil
}

func (c *openAI) chat(reqBody map[string]any) (string, error) {
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func renderSummaryPrompt(section string, payload any, userCtx string) string {
	b, _ := json.MarshalIndent(payload, "", "  ")
	return fmt.Sprintf(`Summarize this %s analysis for a farmer in Maharashtra.
- Lead with the single most important action
- Mention quantities and dates only where they matter
- Do not repeat raw numbers the farmer does not need

FARMER CONTEXT: %s

ANALYSIS:
%s
`, section, userCtx, string(b))
}

func renderStructurePrompt(cropName, pageText string) string {
	if len(pageText) > 6000 {
		pageText = pageText[:6000]
	}
	return fmt.Sprintf(`Extract a knowledge record for the crop "%s" from the text below.
Reply ONLY JSON with this shape:
{"marathi_name":"","scientific_name":"","varieties":[],"duration_months":0,"seasons":[],
"soil_requirements":{"optimal_ph":{"min":0,"max":0},"soil_types":[],"npk_requirements":{"nitrogen":{"min":0,"max":0},"phosphorus":{"min":0,"max":0},"potassium":{"min":0,"max":0}}},
"harvest_indicators":{"maturity_days":0,"physical_signs":[]},
"market_calendar":{"peak_demand_months":[],"avg_price_per_quintal":0},
"expected_yield":{"min":0,"max":0,"unit":""}}
Leave fields you cannot find at their zero values.

TEXT:
%s
`, cropName, pageText)
}

func fallbackSummary(section string) string {
	return fmt.Sprintf("The %s analysis above lists the recommended actions. Follow the highest-scored option and recheck after the next rain.", strings.ReplaceAll(section, "_", " "))
}
