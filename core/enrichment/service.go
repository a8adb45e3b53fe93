// ABOUTME: Enrichment service orchestrates the search pipeline end to end
// ABOUTME: Fetches places, filters by email, and scrapes websites concurrently

package enrichment

import (
	"context"
	"sync"

	"leadscout-api/core/domain"
	"leadscout-api/core/interfaces"
	"leadscout-api/core/places"
)

// maxConcurrentScrapes bounds the scrape fan-out so a dense area does not
// exhaust the local network stack
const maxConcurrentScrapes = 10

// Service runs the nearby-company enrichment pipeline
type Service struct {
	deps    interfaces.Dependencies
	places  interfaces.PlacesService
	scraper interfaces.ScraperService
}

// NewService creates a new enrichment service
func NewService(deps interfaces.Dependencies, placesClient interfaces.PlacesService, scraper interfaces.ScraperService) *Service {
	return &Service{
		deps:    deps,
		places:  placesClient,
		scraper: scraper,
	}
}

// SearchCompanies executes one search: fetch nearby places, keep those with a
// published email, map them to company records, and scrape each website
// concurrently. Per-item scrape failures never abort the batch; the request
// either returns a (possibly empty) slice or a single top-level error.
func (s *Service) SearchCompanies(ctx context.Context, query domain.SearchQuery) ([]domain.Company, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rawPlaces, err := s.places.FetchNearby(ctx, query.Latitude, query.Longitude, query.RadiusKm)
	if err != nil {
		// A provider outage degrades to an empty result set. The tradeoff:
		// callers cannot distinguish an outage from an empty radius.
		s.deps.Logger.Error("Places lookup failed, returning empty result set", map[string]interface{}{
			"latitude":  query.Latitude,
			"longitude": query.Longitude,
			"radius_km": query.RadiusKm,
			"error":     err.Error(),
		})
		return []domain.Company{}, nil
	}

	withEmail := places.FilterWithEmail(rawPlaces)

	s.deps.Logger.Info("Places fetched", map[string]interface{}{
		"total":      len(rawPlaces),
		"with_email": len(withEmail),
	})

	companies := make([]domain.Company, len(withEmail))
	for i, place := range withEmail {
		companies[i] = places.ToCompany(place)
	}

	s.scrapeAll(ctx, companies)

	return companies, nil
}

// scrapeAll launches one scrape per company with a website and waits for all
// of them. Each scrape works on its own record and its own connection, so no
// state is shared between goroutines beyond the indexed slice.
func (s *Service) scrapeAll(ctx context.Context, companies []domain.Company) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxConcurrentScrapes)

	for i := range companies {
		if companies[i].Website == "" {
			continue
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			companies[i].Scrape = s.scraper.Scrape(ctx, companies[i].Website)
		}(i)
	}

	wg.Wait()
}
