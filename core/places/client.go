// ABOUTME: Places client queries the Geoapify Places API for nearby establishments
// ABOUTME: Converts the provider's GeoJSON feature collection into domain places

package places

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"

	"leadscout-api/core/domain"
	"leadscout-api/core/errors"
	"leadscout-api/core/interfaces"
)

const (
	// defaultBaseURL is the Geoapify Places API endpoint
	defaultBaseURL = "https://api.geoapify.com/v2/places"

	// categoryCommercial restricts results to commercial establishments
	categoryCommercial = "commercial"

	// maxResults caps a single request; the provider is never paginated
	maxResults = 500
)

// Config holds the places client configuration
type Config struct {
	// APIKey is the Geoapify API credential
	APIKey string

	// BaseURL overrides the provider endpoint; used in tests
	BaseURL string
}

// Client queries the places provider for nearby establishments
type Client struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewClient creates a new places client
func NewClient(deps interfaces.Dependencies, cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		deps: deps,
		cfg:  cfg,
	}
}

// placesResponse mirrors the provider's GeoJSON-like feature collection
type placesResponse struct {
	Features []placeFeature `json:"features"`
}

type placeFeature struct {
	Properties placeProperties `json:"properties"`
}

type placeProperties struct {
	Name       string           `json:"name"`
	Formatted  string           `json:"formatted"`
	Lat        float64          `json:"lat"`
	Lon        float64          `json:"lon"`
	Contact    *contactBlock    `json:"contact"`
	Datasource *datasourceBlock `json:"datasource"`
}

type contactBlock struct {
	Email   string `json:"email"`
	Website string `json:"website"`
}

type datasourceBlock struct {
	Raw map[string]interface{} `json:"raw"`
}

// FetchNearby returns commercial establishments within radiusKm of (lat, lon).
// The request filters by a circle around the center, biases by proximity to
// the same center, and is capped at maxResults. Errors are returned to the
// caller; the orchestrator decides whether to degrade to an empty result set.
func (c *Client) FetchNearby(ctx context.Context, lat, lon, radiusKm float64) ([]domain.Place, error) {
	requestURL := c.buildURL(lat, lon, radiusKm)

	resp, err := c.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, errors.WrapError(err, "places request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "places search returned non-200 status",
			API:        "geoapify",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, errors.WrapError(err, "failed to read places response")
	}

	var parsed placesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.WrapError(err, "failed to decode places response")
	}

	results := make([]domain.Place, 0, len(parsed.Features))
	for _, feature := range parsed.Features {
		results = append(results, toPlace(feature.Properties))
	}

	return results, nil
}

// buildURL assembles the provider query. The provider expects the radius in
// meters and coordinates ordered lon,lat.
func (c *Client) buildURL(lat, lon, radiusKm float64) string {
	lonStr := strconv.FormatFloat(lon, 'f', -1, 64)
	latStr := strconv.FormatFloat(lat, 'f', -1, 64)
	radiusMeters := strconv.FormatFloat(radiusKm*1000, 'f', -1, 64)

	params := url.Values{}
	params.Set("categories", categoryCommercial)
	params.Set("filter", "circle:"+lonStr+","+latStr+","+radiusMeters)
	params.Set("bias", "proximity:"+lonStr+","+latStr)
	params.Set("limit", strconv.Itoa(maxResults))
	params.Set("apiKey", c.cfg.APIKey)

	return c.cfg.BaseURL + "?" + params.Encode()
}

// toPlace converts provider properties into the domain model
func toPlace(props placeProperties) domain.Place {
	place := domain.Place{
		Name:    props.Name,
		Address: props.Formatted,
		Lat:     props.Lat,
		Lon:     props.Lon,
	}

	if props.Contact != nil {
		place.Contact = &domain.PlaceContact{
			Email:   props.Contact.Email,
			Website: props.Contact.Website,
		}
	}

	if props.Datasource != nil {
		place.DatasourceRaw = props.Datasource.Raw
	}

	return place
}
