// pkg/ai/client.go

package ai

type Client interface {
	// Summarize turns one engine's structured result into short farmer-facing
	// guidance. section names the engine (crop_planning, irrigation, ...).
	Summarize(section string, payload any, userCtx string) string

	// StructureCropData asks the model to extract a crop knowledge record
	// from scraped page text. Returns raw JSON for the caller to validate.
	StructureCropData(cropName, pageText string) (string, error)
}
