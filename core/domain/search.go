// ABOUTME: SearchQuery domain model represents a single nearby-company search
// ABOUTME: Provides validation and radius defaulting for inbound queries

package domain

import (
	"leadscout-api/core/errors"
)

// DefaultRadiusKm is used when a query does not specify a radius.
const DefaultRadiusKm = 2.5

// SearchQuery describes one search around a geographic point.
// A query is created from the inbound request and consumed once.
type SearchQuery struct {
	// Latitude of the search center in decimal degrees
	Latitude float64

	// Longitude of the search center in decimal degrees
	Longitude float64

	// RadiusKm is the search radius in kilometers
	RadiusKm float64
}

// NewSearchQuery creates a query, applying the default radius when radiusKm
// is zero. A zero radius is treated as "not specified".
func NewSearchQuery(lat, lon, radiusKm float64) SearchQuery {
	if radiusKm == 0 {
		radiusKm = DefaultRadiusKm
	}
	return SearchQuery{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  radiusKm,
	}
}

// Validate checks if the query has usable coordinates and radius
func (q SearchQuery) Validate() error {
	if q.Latitude < -90 || q.Latitude > 90 {
		return &errors.ValidationError{Field: "latitude", Message: "must be between -90 and 90"}
	}

	if q.Longitude < -180 || q.Longitude > 180 {
		return &errors.ValidationError{Field: "longitude", Message: "must be between -180 and 180"}
	}

	if q.RadiusKm < 0 {
		return &errors.ValidationError{Field: "radius", Message: "must be greater than 0"}
	}

	return nil
}
