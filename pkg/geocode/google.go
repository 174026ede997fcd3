package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"

	"github.com/myhalal/directory/internal/resilience"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

type googleResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GoogleProvider is the keyed fallback tier. It only participates when an
// API key is configured, and retries every failure within its attempt
// budget since the paid API has no courtesy constraints.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	retryCfg   resilience.RetryConfig
	breaker    *resilience.CircuitBreaker
}

// GoogleOption configures the provider.
type GoogleOption func(*GoogleProvider)

// WithGoogleBaseURL overrides the API endpoint (tests).
func WithGoogleBaseURL(u string) GoogleOption {
	return func(p *GoogleProvider) { p.baseURL = u }
}

// WithGoogleHTTPClient sets a custom HTTP client.
func WithGoogleHTTPClient(hc *http.Client) GoogleOption {
	return func(p *GoogleProvider) { p.httpClient = hc }
}

// NewGoogleProvider creates the tier-2 provider.
func NewGoogleProvider(apiKey string, timeout time.Duration, opts ...GoogleOption) *GoogleProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	p := &GoogleProvider{
		apiKey:     apiKey,
		baseURL:    googleGeocodeURL,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg: resilience.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: 250 * time.Millisecond,
			Multiplier:     2.0,
			JitterFraction: 0.1,
			// The keyed API is retried on any failure, not just
			// transient transport errors.
			ShouldRetry: func(error) bool { return true },
		},
		breaker: resilience.NewCircuitBreaker(providerBreakerConfig()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *GoogleProvider) Name() string { return "google" }

// Available implements Provider. The tier is skipped without a key.
func (p *GoogleProvider) Available() bool { return p.apiKey != "" }

// Geocode implements Provider.
func (p *GoogleProvider) Geocode(ctx context.Context, query string) (*Result, error) {
	result, err := resilience.ExecuteVal(ctx, p.breaker, func(ctx context.Context) (*Result, error) {
		return resilience.DoVal(ctx, p.retryCfg, func(ctx context.Context) (*Result, error) {
			return p.geocodeOnce(ctx, query)
		})
	})
	if errors.Is(err, errNotAccepted) {
		return &Result{Matched: false, Source: p.Name()}, nil
	}
	return result, err
}

func (p *GoogleProvider) geocodeOnce(ctx context.Context, query string) (*Result, error) {
	params := url.Values{
		"address": {query},
		"key":     {p.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google build request")
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, resilience.NewTransientError(err, 0)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("geocode: google returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: google read body")
	}

	var parsed googleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "geocode: google parse response")
	}
	if parsed.Status == "ZERO_RESULTS" || len(parsed.Results) == 0 {
		return nil, errNotAccepted
	}
	if parsed.Status != "OK" {
		return nil, eris.Errorf("geocode: google status %q", parsed.Status)
	}

	loc := parsed.Results[0]
	return &Result{
		Lat:     loc.Geometry.Location.Lat,
		Lng:     loc.Geometry.Location.Lng,
		Address: loc.FormattedAddress,
		Source:  p.Name(),
		Matched: true,
	}, nil
}
