package enrichment

import (
	"context"
	"sync"

	"leadscout-api/core/domain"
)

// mockPlacesService is a mock implementation of the PlacesService interface
type mockPlacesService struct {
	fetchNearbyFunc func(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Place, error)
}

func (m *mockPlacesService) FetchNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Place, error) {
	if m.fetchNearbyFunc != nil {
		return m.fetchNearbyFunc(ctx, lat, lon, radiusKm)
	}
	return nil, nil
}

// mockScraperService is a mock implementation of the ScraperService interface
type mockScraperService struct {
	mu          sync.Mutex
	scrapeFunc  func(ctx context.Context, url string) domain.ScrapeOutcome
	scrapedURLs []string
}

func (m *mockScraperService) Scrape(ctx context.Context, url string) domain.ScrapeOutcome {
	m.mu.Lock()
	m.scrapedURLs = append(m.scrapedURLs, url)
	m.mu.Unlock()

	if m.scrapeFunc != nil {
		return m.scrapeFunc(ctx, url)
	}
	return domain.ScrapeSuccess("mock content")
}

func (m *mockScraperService) urls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.scrapedURLs...)
}

// mockLogger records error messages for assertions
type mockLogger struct {
	mu        sync.Mutex
	errorMsgs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorMsgs = append(m.errorMsgs, msg)
}

func (m *mockLogger) errors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.errorMsgs...)
}
