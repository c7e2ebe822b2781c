package enrich

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"krishi/entities"
)

// Store persists dynamically learned crop records. It satisfies
// knowledge.Resolver so the advisory engines pick learned crops up
// transparently.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store { return &Store{db: db} }

// Resolve loads a learned crop record by name. A missing row returns
// (nil, nil).
func (s *Store) Resolve(name string) (*entities.CropRecord, error) {
	var row entities.DynamicCrop
	err := s.db.Where("name = ?", strings.ToLower(strings.TrimSpace(name))).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec entities.CropRecord
	if err := json.Unmarshal([]byte(row.Data), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save upserts a learned record keyed by crop name.
func (s *Store) Save(name, sourceURL string, rec *entities.CropRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	name = strings.ToLower(strings.TrimSpace(name))

	var existing entities.DynamicCrop
	err = s.db.Where("name = ?", name).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&entities.DynamicCrop{
			Name:      name,
			Data:      string(data),
			SourceURL: sourceURL,
		}).Error
	}
	if err != nil {
		return err
	}
	existing.Data = string(data)
	existing.SourceURL = sourceURL
	return s.db.Save(&existing).Error
}

// Names lists every learned crop.
func (s *Store) Names() ([]string, error) {
	var names []string
	if err := s.db.Model(&entities.DynamicCrop{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
