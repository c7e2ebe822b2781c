// pkg/ai/mock_client.go

package ai

import "fmt"

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Summarize(section string, payload any, userCtx string) string {
	return fmt.Sprintf("Summary for %s (mock)", section)
}

func (m *mockClient) StructureCropData(cropName, pageText string) (string, error) {
	return fmt.Sprintf(`{"marathi_name":"","scientific_name":"%s","varieties":[],"duration_months":4,"seasons":["Kharif (June-October)"],"harvest_indicators":{"maturity_days":120,"physical_signs":[]},"market_calendar":{"peak_demand_months":[],"avg_price_per_quintal":2500},"expected_yield":{"min":8,"max":12,"unit":"quintals/acre"}}`, cropName), nil
}
