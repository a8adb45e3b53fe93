// ABOUTME: Request DTOs for the company search endpoint
// ABOUTME: Distinguishes absent coordinates from zero values via pointers

package requests

// SearchCompaniesRequest represents the request body for a nearby-company
// search. Latitude and longitude use pointers so a missing field can be told
// apart from a legitimate 0 coordinate.
type SearchCompaniesRequest struct {
	// Latitude of the search center in decimal degrees
	Latitude *float64 `json:"latitude"`

	// Longitude of the search center in decimal degrees
	Longitude *float64 `json:"longitude"`

	// Radius is the search radius in kilometers; defaults to 2.5 when omitted
	Radius float64 `json:"radius,omitempty"`
}

// HasCoordinates reports whether both required coordinates were supplied
func (r *SearchCompaniesRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}
