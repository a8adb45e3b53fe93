// ABOUTME: Mappers converting domain companies to response DTOs
// ABOUTME: Produces the string wire encoding of scrape outcomes

package mappers

import (
	"leadscout-api/api/dto/responses"
	"leadscout-api/core/domain"
)

// ScrapeFailurePrefix marks a failure diagnostic in the scrapedContent field.
// The presentation layer recognizes this exact prefix; do not change it.
const ScrapeFailurePrefix = "Failed to scrape: "

// ToCompanyResponse converts a domain company to its wire representation
func ToCompanyResponse(c domain.Company) responses.Company {
	resp := responses.Company{
		Name:    c.Name,
		Address: c.Address,
		Location: responses.Location{
			Lat: c.Location.Lat,
			Lon: c.Location.Lon,
		},
		Email: c.Email,
	}

	if c.Website != "" {
		website := c.Website
		resp.Website = &website
	}

	resp.ScrapedContent = encodeScrapeOutcome(c.Scrape)

	return resp
}

// ToCompanyResponses converts a slice of domain companies
func ToCompanyResponses(companies []domain.Company) []responses.Company {
	result := make([]responses.Company, len(companies))
	for i, c := range companies {
		result[i] = ToCompanyResponse(c)
	}
	return result
}

// encodeScrapeOutcome folds the tagged outcome into the legacy string
// encoding: nil for not attempted, prefixed diagnostic for failures, plain
// snippet for successes
func encodeScrapeOutcome(outcome domain.ScrapeOutcome) *string {
	switch outcome.Status {
	case domain.ScrapeSucceeded:
		content := outcome.Content
		return &content
	case domain.ScrapeFailed:
		message := ScrapeFailurePrefix + outcome.Message
		return &message
	default:
		return nil
	}
}
