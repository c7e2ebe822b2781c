// Package marketdata pulls mandi price records from the data.gov.in
// AGMARKNET dataset and caches them for an hour.
package marketdata

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"krishi/entities"
)

const (
	baseURL       = "https://api.data.gov.in/resource"
	pageLimit     = 1000
	maxRecords    = 20000
	cacheDuration = time.Hour
)

type Client struct {
	http      *resty.Client
	apiKey    string
	datasetID string

	mu        sync.Mutex
	cached    []entities.MandiRecord
	fetchedAt time.Time
}

func NewClient(apiKey, datasetID string) *Client {
	return &Client{
		http:      resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
		apiKey:    apiKey,
		datasetID: datasetID,
	}
}

type rawRecord struct {
	State       string `json:"state"`
	District    string `json:"district"`
	Market      string `json:"market"`
	Commodity   string `json:"commodity"`
	Variety     string `json:"variety"`
	ArrivalDate string `json:"arrival_date"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	ModalPrice  string `json:"modal_price"`
}

type apiResponse struct {
	Total   int         `json:"total"`
	Count   int         `json:"count"`
	Records []rawRecord `json:"records"`
}

// FetchAll returns the full dataset, paginated up to maxRecords. Results are
// cached for an hour; concurrent callers share one fetch.
func (c *Client) FetchAll() ([]entities.MandiRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil && time.Since(c.fetchedAt) < cacheDuration {
		return c.cached, nil
	}

	var all []entities.MandiRecord
	for offset := 0; offset < maxRecords; offset += pageLimit {
		var page apiResponse
		resp, err := c.http.R().
			SetQueryParams(map[string]string{
				"api-key": c.apiKey,
				"format":  "json",
				"limit":   strconv.Itoa(pageLimit),
				"offset":  strconv.Itoa(offset),
			}).
			SetResult(&page).
			Get("/" + c.datasetID)
		if err != nil {
			return nil, fmt.Errorf("agmarknet fetch: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("agmarknet fetch: status %d", resp.StatusCode())
		}
		for _, r := range page.Records {
			all = append(all, process(r))
		}
		if len(page.Records) < pageLimit {
			break
		}
	}
	log.Printf("[marketdata] fetched %d mandi records", len(all))

	c.cached = all
	c.fetchedAt = time.Now()
	return all, nil
}

// Invalidate drops the cache so the next FetchAll hits the API.
func (c *Client) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.mu.Unlock()
}

func process(r rawRecord) entities.MandiRecord {
	return entities.MandiRecord{
		State:       strings.TrimSpace(r.State),
		District:    strings.TrimSpace(r.District),
		Market:      strings.TrimSpace(r.Market),
		Commodity:   strings.TrimSpace(r.Commodity),
		Variety:     strings.TrimSpace(r.Variety),
		ArrivalDate: strings.TrimSpace(r.ArrivalDate),
		MinPrice:    parsePrice(r.MinPrice),
		MaxPrice:    parsePrice(r.MaxPrice),
		ModalPrice:  parsePrice(r.ModalPrice),
	}
}

// parsePrice tolerates the dataset's mixed formats ("2,500", "2500.00", "NR").
func parsePrice(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// FilterByLocation keeps records matching the state and, when given, the
// district. Matching is case-insensitive on substrings.
func FilterByLocation(records []entities.MandiRecord, state, district string) []entities.MandiRecord {
	state = strings.ToLower(strings.TrimSpace(state))
	district = strings.ToLower(strings.TrimSpace(district))
	var out []entities.MandiRecord
	for _, r := range records {
		if state != "" && !strings.Contains(strings.ToLower(r.State), state) {
			continue
		}
		if district != "" && !strings.Contains(strings.ToLower(r.District), district) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByCommodity keeps records whose commodity name contains the crop name.
func FilterByCommodity(records []entities.MandiRecord, crop string) []entities.MandiRecord {
	crop = strings.ToLower(strings.TrimSpace(crop))
	var out []entities.MandiRecord
	for _, r := range records {
		if crop == "" || strings.Contains(strings.ToLower(r.Commodity), crop) {
			out = append(out, r)
		}
	}
	return out
}
