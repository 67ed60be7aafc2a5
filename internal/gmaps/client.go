package gmaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// APIError is a failed call to the provider: either a non-2xx transport
// response or a non-OK provider status. It is never retried here.
type APIError struct {
	Endpoint string
	HTTPCode int
	Status   string
	Message  string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("gmaps: %s returned %s: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("gmaps: %s returned http %d", e.Endpoint, e.HTTPCode)
}

// Client talks to the Google Maps web services. Timeouts belong to the
// injected http.Client; the caller owns that policy.
type Client struct {
	Key        string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(key string) *Client {
	return &Client{
		Key:        key,
		BaseURL:    defaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

// Geocode resolves a free-form address (a zip code in this app) into
// candidate coordinates. All candidates are returned; the caller decides
// what more than one of them means.
func (c *Client) Geocode(ctx context.Context, address string) ([]LatLng, error) {
	q := url.Values{}
	q.Set("address", address)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK && resp.Status != StatusZeroResults {
		return nil, &APIError{Endpoint: "/geocode/json", Status: resp.Status, Message: resp.ErrorMessage}
	}

	out := make([]LatLng, 0, len(resp.Results))
	for _, r := range resp.Results {
		out = append(out, r.Geometry.Location)
	}
	return out, nil
}

// Nearby searches dining establishments around a point. ZERO_RESULTS is an
// empty list, not an error.
func (c *Client) Nearby(ctx context.Context, lat, lng float64, radiusMeters int, keyword string) ([]PlaceResult, error) {
	q := url.Values{}
	q.Set("location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("keyword", keyword)
	q.Set("type", "restaurant")

	var resp nearbyResponse
	if err := c.get(ctx, "/place/nearbysearch/json", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK && resp.Status != StatusZeroResults {
		return nil, &APIError{Endpoint: "/place/nearbysearch/json", Status: resp.Status, Message: resp.ErrorMessage}
	}
	return resp.Results, nil
}

// Details fetches the full record for a place id. A NOT_FOUND status comes
// back as an APIError carrying that status.
func (c *Client) Details(ctx context.Context, placeID string) (*PlaceDetail, error) {
	q := url.Values{}
	q.Set("placeid", placeID)

	var resp detailResponse
	if err := c.get(ctx, "/place/details/json", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != StatusOK || resp.Result == nil {
		return nil, &APIError{Endpoint: "/place/details/json", Status: resp.Status, Message: resp.ErrorMessage}
	}
	return resp.Result, nil
}

func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	q.Set("key", c.Key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("gmaps: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Endpoint: endpoint, HTTPCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gmaps: %s: decode: %w", endpoint, err)
	}
	return nil
}
