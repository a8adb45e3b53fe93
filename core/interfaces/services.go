// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"leadscout-api/core/domain"
)

// PlacesService looks up commercial establishments around a geographic point
type PlacesService interface {
	// FetchNearby returns the raw places within radiusKm of (lat, lon).
	// The error is surfaced to the caller; callers decide whether to degrade.
	FetchNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Place, error)
}

// ScraperService fetches a website and extracts a representative text snippet
type ScraperService interface {
	// Scrape fetches the given URL and returns the outcome. It never returns
	// an error; every failure is folded into the outcome itself.
	Scrape(ctx context.Context, url string) domain.ScrapeOutcome
}

// EnrichmentService runs the full search-and-enrich pipeline
type EnrichmentService interface {
	SearchCompanies(ctx context.Context, query domain.SearchQuery) ([]domain.Company, error)
}
