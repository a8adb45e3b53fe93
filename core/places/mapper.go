// ABOUTME: Mapper resolves contact fields from the multiple shapes places arrive in
// ABOUTME: Provides the email filter and the place-to-company conversion

package places

import (
	"leadscout-api/core/domain"
)

// fieldAccessor reads one candidate location of a contact field. Accessors
// are applied in priority order; the first non-empty value wins. A simple
// strategy list, not polymorphism.
type fieldAccessor func(p domain.Place) string

// emailAccessors lists the email locations in priority order: structured
// contact block, nested contact object inside the raw datasource bag, then
// the flattened "contact:email" datasource key.
var emailAccessors = []fieldAccessor{
	func(p domain.Place) string {
		if p.Contact == nil {
			return ""
		}
		return p.Contact.Email
	},
	func(p domain.Place) string {
		return rawContactField(p.DatasourceRaw, "email")
	},
	func(p domain.Place) string {
		return rawField(p.DatasourceRaw, "contact:email")
	},
}

// websiteAccessors lists the website locations in priority order; the raw
// datasource additionally carries a plain "website" key.
var websiteAccessors = []fieldAccessor{
	func(p domain.Place) string {
		if p.Contact == nil {
			return ""
		}
		return p.Contact.Website
	},
	func(p domain.Place) string {
		return rawContactField(p.DatasourceRaw, "website")
	},
	func(p domain.Place) string {
		return rawField(p.DatasourceRaw, "contact:website")
	},
	func(p domain.Place) string {
		return rawField(p.DatasourceRaw, "website")
	},
}

// resolveField applies accessors in order and returns the first non-empty value
func resolveField(p domain.Place, accessors []fieldAccessor) string {
	for _, access := range accessors {
		if value := access(p); value != "" {
			return value
		}
	}
	return ""
}

// rawField reads a string entry from the raw datasource bag
func rawField(raw map[string]interface{}, key string) string {
	if raw == nil {
		return ""
	}
	if value, ok := raw[key].(string); ok {
		return value
	}
	return ""
}

// rawContactField reads a string entry from a nested "contact" object inside
// the raw datasource bag
func rawContactField(raw map[string]interface{}, key string) string {
	if raw == nil {
		return ""
	}
	contact, ok := raw["contact"].(map[string]interface{})
	if !ok {
		return ""
	}
	if value, ok := contact[key].(string); ok {
		return value
	}
	return ""
}

// Email resolves a place's contact email, or "" when absent everywhere
func Email(p domain.Place) string {
	return resolveField(p, emailAccessors)
}

// Website resolves a place's website URL, or "" when absent everywhere
func Website(p domain.Place) string {
	return resolveField(p, websiteAccessors)
}

// FilterWithEmail retains exactly the places whose email resolves from any of
// the candidate locations. Places without a resolvable email are excluded.
func FilterWithEmail(all []domain.Place) []domain.Place {
	filtered := make([]domain.Place, 0, len(all))
	for _, place := range all {
		if Email(place) != "" {
			filtered = append(filtered, place)
		}
	}
	return filtered
}

// ToCompany converts a raw place into a company record. The email resolution
// uses the same accessor list as FilterWithEmail, so a place that passed the
// filter always resolves a non-empty email here. The scrape outcome is left
// as not-attempted; the orchestrator fills it in.
func ToCompany(p domain.Place) domain.Company {
	return domain.Company{
		Name:    p.Name,
		Address: p.Address,
		Location: domain.GeoPoint{
			Lat: p.Lat,
			Lon: p.Lon,
		},
		Website: Website(p),
		Email:   Email(p),
	}
}
