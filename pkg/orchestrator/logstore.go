package orchestrator

import (
	"log"
	"time"

	"gorm.io/gorm"

	"krishi/entities"
)

// LogStore records engine executions for diagnostics. All writes are best
// effort; a failing log never fails the request.
type LogStore struct {
	db *gorm.DB
}

func NewLogStore(db *gorm.DB) *LogStore { return &LogStore{db: db} }

func (s *LogStore) Record(runID, agentType, cropName, action, status string, took time.Duration) {
	if s == nil || s.db == nil {
		return
	}
	entry := entities.AgentLog{
		RunID:      runID,
		AgentType:  agentType,
		CropName:   cropName,
		Action:     action,
		Status:     status,
		DurationMS: took.Milliseconds(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("[orchestrator] agent log write failed: %v", err)
	}
}

// Recent returns the latest n log entries, newest first.
func (s *LogStore) Recent(n int) ([]entities.AgentLog, error) {
	if n <= 0 {
		n = 50
	}
	var out []entities.AgentLog
	err := s.db.Order("id desc").Limit(n).Find(&out).Error
	return out, err
}
