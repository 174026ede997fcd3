package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
)

const defaultPhotonURL = "https://photon.komoot.io"

// photonResponse is the GeoJSON envelope returned by the Photon API.
// Coordinates are ordered longitude first.
type photonResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Name    string `json:"name"`
			City    string `json:"city"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// PhotonProvider is the last-resort tier. It makes exactly one request per
// query; any failure simply leaves the query unresolved.
type PhotonProvider struct {
	baseURL    string
	httpClient *http.Client
}

// PhotonOption configures the provider.
type PhotonOption func(*PhotonProvider)

// WithPhotonBaseURL overrides the API endpoint (tests).
func WithPhotonBaseURL(u string) PhotonOption {
	return func(p *PhotonProvider) { p.baseURL = u }
}

// WithPhotonHTTPClient sets a custom HTTP client.
func WithPhotonHTTPClient(hc *http.Client) PhotonOption {
	return func(p *PhotonProvider) { p.httpClient = hc }
}

// NewPhotonProvider creates the tier-3 provider.
func NewPhotonProvider(timeout time.Duration, opts ...PhotonOption) *PhotonProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	p := &PhotonProvider{
		baseURL:    defaultPhotonURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *PhotonProvider) Name() string { return "photon" }

// Available implements Provider. Photon needs no credential.
func (p *PhotonProvider) Available() bool { return true }

// Geocode implements Provider. One shot, no retry.
func (p *PhotonProvider) Geocode(ctx context.Context, query string) (*Result, error) {
	params := url.Values{
		"q":     {query},
		"limit": {"1"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/api?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: photon build request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: photon request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: photon returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: photon read body")
	}

	var parsed photonResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "geocode: photon parse response")
	}
	if len(parsed.Features) == 0 {
		return &Result{Matched: false, Source: p.Name()}, nil
	}

	feat := parsed.Features[0]
	if len(feat.Geometry.Coordinates) < 2 {
		return &Result{Matched: false, Source: p.Name()}, nil
	}

	return &Result{
		Lat:     feat.Geometry.Coordinates[1],
		Lng:     feat.Geometry.Coordinates[0],
		Address: photonAddress(feat.Properties.Name, feat.Properties.City, feat.Properties.State, feat.Properties.Country),
		Source:  p.Name(),
		Matched: true,
	}, nil
}

func photonAddress(parts ...string) string {
	out := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	return out
}
