package entities

import "time"

// DynamicCrop persists a crop record learned through the enrichment pipeline.
// Data round-trips the CropRecord JSON schema.
type DynamicCrop struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex" json:"name"`
	Data      string    `json:"data"`
	SourceURL string    `json:"source_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time
}

// AgentLog records one advisory engine execution.
type AgentLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RunID      string    `gorm:"index" json:"run_id"`
	AgentType  string    `gorm:"index" json:"agent_type"`
	CropName   string    `json:"crop_name"`
	Action     string    `json:"action"`
	Status     string    `json:"status"` // success|not_found|error
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}
