// ABOUTME: Place domain model represents a raw establishment record from the places provider
// ABOUTME: Tolerates the multiple nested shapes contact details arrive in

package domain

// Place is a raw establishment record as returned by the places provider.
// The provider exposes contact details in several alternative locations; the
// accessor logic in core/places resolves them in priority order. No invariant
// holds beyond "provider-defined shape".
type Place struct {
	// Name is the establishment name; may be empty
	Name string

	// Address is the provider-formatted address line
	Address string

	// Lat and Lon are the establishment coordinates
	Lat float64
	Lon float64

	// Contact is the structured contact block, when present
	Contact *PlaceContact

	// DatasourceRaw is the provider's raw datasource bag. It may carry a
	// nested "contact" object, flattened keys such as "contact:email", or a
	// plain "website" entry.
	DatasourceRaw map[string]interface{}
}

// PlaceContact is the structured contact block of a place
type PlaceContact struct {
	Email   string
	Website string
}
