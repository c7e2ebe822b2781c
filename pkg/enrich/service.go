// Package enrich learns crop records the static knowledge base does not
// cover: scrape an allow-listed agronomy page, have the model structure it,
// validate and persist.
package enrich

import (
	"encoding/json"
	"fmt"
	"log"

	"krishi/entities"
	"krishi/pkg/ai"
)

type Service struct {
	scraper *Scraper
	llm     ai.Client
	store   *Store
}

func NewService(scraper *Scraper, llm ai.Client, store *Store) *Service {
	return &Service{scraper: scraper, llm: llm, store: store}
}

// LearnFromURL builds and persists a crop record from a single source page.
func (s *Service) LearnFromURL(cropName, sourceURL string) (*entities.CropRecord, error) {
	text, title, err := s.scraper.FetchMainText(sourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", sourceURL, err)
	}
	if len(text) < 200 {
		return nil, fmt.Errorf("page %q too thin to learn from", title)
	}

	raw, err := s.llm.StructureCropData(cropName, text)
	if err != nil {
		return nil, fmt.Errorf("structure %s: %w", cropName, err)
	}
	var rec entities.CropRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("parse structured record for %s: %w", cropName, err)
	}
	if rec.ScientificName == "" && len(rec.Seasons) == 0 && rec.ExpectedYield.Max == 0 {
		return nil, fmt.Errorf("structured record for %s is empty", cropName)
	}

	if err := s.store.Save(cropName, sourceURL, &rec); err != nil {
		return nil, err
	}
	log.Printf("[enrich] learned crop %q from %s", cropName, sourceURL)
	return &rec, nil
}

// Known lists crops learned so far.
func (s *Service) Known() ([]string, error) { return s.store.Names() }
