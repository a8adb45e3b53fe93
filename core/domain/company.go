// ABOUTME: Company domain model represents an enriched establishment with contact details
// ABOUTME: Defines the tagged scrape outcome attached to each company

package domain

// Company is the output entity of the enrichment pipeline. Every company that
// reaches the output set has a non-empty Email; all other fields are
// best-effort. A company is immutable once assembled.
type Company struct {
	// Name is the establishment name; may be empty
	Name string

	// Address is the formatted address line
	Address string

	// Location is the establishment's coordinates
	Location GeoPoint

	// Website is the establishment's website URL; empty when none was found
	Website string

	// Email is the published contact email (filtering guarantee: non-empty)
	Email string

	// Scrape is the outcome of scraping the website, if one was attempted
	Scrape ScrapeOutcome
}

// GeoPoint is a geographic coordinate pair
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ScrapeStatus enumerates the possible scrape outcomes
type ScrapeStatus int

const (
	// ScrapeNotAttempted means the company had no website to scrape
	ScrapeNotAttempted ScrapeStatus = iota

	// ScrapeSucceeded means a snippet was extracted from the website
	ScrapeSucceeded

	// ScrapeFailed means every attempt to fetch or parse the website failed
	ScrapeFailed
)

// ScrapeOutcome is the tagged result of a website scrape. Content and error
// signaling are kept separate here; the string wire encoding consumed by the
// presentation layer is produced only at the API boundary.
type ScrapeOutcome struct {
	Status ScrapeStatus

	// Content holds the extracted snippet when Status is ScrapeSucceeded
	Content string

	// Message holds the underlying failure description when Status is
	// ScrapeFailed
	Message string
}

// ScrapeSuccess builds a successful outcome
func ScrapeSuccess(content string) ScrapeOutcome {
	return ScrapeOutcome{Status: ScrapeSucceeded, Content: content}
}

// ScrapeFailure builds a failed outcome carrying the underlying error message
func ScrapeFailure(message string) ScrapeOutcome {
	return ScrapeOutcome{Status: ScrapeFailed, Message: message}
}
