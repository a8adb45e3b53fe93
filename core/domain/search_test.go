package domain

import (
	"testing"

	"leadscout-api/core/errors"
)

func TestNewSearchQuery_DefaultsRadius(t *testing.T) {
	query := NewSearchQuery(52.52, 13.405, 0)

	if query.RadiusKm != DefaultRadiusKm {
		t.Errorf("RadiusKm = %v, want %v", query.RadiusKm, DefaultRadiusKm)
	}
}

func TestNewSearchQuery_KeepsExplicitRadius(t *testing.T) {
	query := NewSearchQuery(52.52, 13.405, 5.0)

	if query.RadiusKm != 5.0 {
		t.Errorf("RadiusKm = %v, want 5.0", query.RadiusKm)
	}
}

func TestSearchQuery_Validate_AcceptsValidQuery(t *testing.T) {
	query := NewSearchQuery(52.52, 13.405, 2.5)

	if err := query.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSearchQuery_Validate_AcceptsZeroCoordinates(t *testing.T) {
	query := NewSearchQuery(0, 0, 0)

	if err := query.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestSearchQuery_Validate_RejectsLatitudeOutOfRange(t *testing.T) {
	for _, lat := range []float64{-90.1, 91} {
		query := NewSearchQuery(lat, 13.405, 2.5)

		err := query.Validate()
		if err == nil {
			t.Fatalf("Validate() with latitude %v = nil, want error", lat)
		}
		if !errors.IsValidation(err) {
			t.Errorf("Validate() returned %T, want ValidationError", err)
		}
	}
}

func TestSearchQuery_Validate_RejectsLongitudeOutOfRange(t *testing.T) {
	for _, lon := range []float64{-180.5, 180.5} {
		query := NewSearchQuery(52.52, lon, 2.5)

		err := query.Validate()
		if err == nil {
			t.Fatalf("Validate() with longitude %v = nil, want error", lon)
		}
		if !errors.IsValidation(err) {
			t.Errorf("Validate() returned %T, want ValidationError", err)
		}
	}
}

func TestSearchQuery_Validate_RejectsNegativeRadius(t *testing.T) {
	query := SearchQuery{Latitude: 52.52, Longitude: 13.405, RadiusKm: -1}

	err := query.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.IsValidation(err) {
		t.Errorf("Validate() returned %T, want ValidationError", err)
	}
}

func TestSearchQuery_Validate_AcceptsBoundaryCoordinates(t *testing.T) {
	for _, query := range []SearchQuery{
		{Latitude: 90, Longitude: 180, RadiusKm: 1},
		{Latitude: -90, Longitude: -180, RadiusKm: 1},
	} {
		if err := query.Validate(); err != nil {
			t.Errorf("Validate(%+v) = %v, want nil", query, err)
		}
	}
}
