// ABOUTME: Response DTOs for the company search endpoint
// ABOUTME: Defines the wire shape consumed by the presentation layer

package responses

// SearchCompaniesResponse is the success envelope for a search
type SearchCompaniesResponse struct {
	Companies []Company `json:"companies"`
}

// Company is one enriched establishment on the wire.
//
// ScrapedContent carries a three-way encoding the presentation layer branches
// on: null means no website was available so no scrape was attempted; a
// string starting with the "Failed to scrape: " marker is a failure
// diagnostic; any other non-empty string is the extracted snippet.
type Company struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Location       Location `json:"location"`
	Website        *string  `json:"website"`
	Email          string   `json:"email"`
	ScrapedContent *string  `json:"scrapedContent"`
}

// Location is a coordinate pair on the wire
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ErrorResponse is the error envelope shared by all failure cases
type ErrorResponse struct {
	Error string `json:"error"`
}

// UsageResponse is returned for GET requests against the search endpoint
type UsageResponse struct {
	Message string `json:"message"`
}
