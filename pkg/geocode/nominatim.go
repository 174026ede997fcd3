package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/myhalal/directory/internal/resilience"
)

const defaultNominatimURL = "https://nominatim.openstreetmap.org"

// errNotAccepted marks an attempt that completed but produced no acceptable
// result (no match, or a match outside the target country). It is retried
// within the tier's attempt budget, then surfaces as unmatched.
var errNotAccepted = errors.New("geocode: result not accepted")

// providerBreakerConfig trips a tier's breaker on transport failures only.
// An unmatched query is a normal outcome and must not affect the tier's
// availability for later queries.
func providerBreakerConfig() resilience.CircuitBreakerConfig {
	cfg := resilience.DefaultCircuitBreakerConfig()
	cfg.ShouldTrip = resilience.IsTransient
	return cfg
}

// nominatimItem is one entry of the Nominatim search response.
type nominatimItem struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimProvider is the primary open tier. Each attempt waits on a
// courtesy rate limiter, and only results whose display address names the
// United States are accepted.
type NominatimProvider struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryCfg    resilience.RetryConfig
	breaker     *resilience.CircuitBreaker
	countryText string
}

// NominatimOption configures the provider.
type NominatimOption func(*NominatimProvider)

// WithNominatimBaseURL overrides the API endpoint (tests).
func WithNominatimBaseURL(u string) NominatimOption {
	return func(p *NominatimProvider) { p.baseURL = u }
}

// WithNominatimHTTPClient sets a custom HTTP client.
func WithNominatimHTTPClient(hc *http.Client) NominatimOption {
	return func(p *NominatimProvider) { p.httpClient = hc }
}

// WithNominatimRateLimit sets the courtesy requests-per-second limit.
func WithNominatimRateLimit(rps float64) NominatimOption {
	return func(p *NominatimProvider) { p.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithNominatimAttempts sets the per-query attempt budget.
func WithNominatimAttempts(n int) NominatimOption {
	return func(p *NominatimProvider) { p.retryCfg.MaxAttempts = n }
}

// NewNominatimProvider creates the tier-1 provider. The user agent is
// mandatory per the Nominatim usage policy.
func NewNominatimProvider(userAgent string, timeout time.Duration, opts ...NominatimOption) *NominatimProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	p := &NominatimProvider{
		baseURL:    defaultNominatimURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		// ~1 request / 1.1 s, per the public instance's usage policy.
		limiter: rate.NewLimiter(rate.Limit(0.9), 1),
		retryCfg: resilience.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: 500 * time.Millisecond,
			Multiplier:     1.0,
			JitterFraction: 0,
			ShouldRetry: func(err error) bool {
				return resilience.IsTransient(err) || errors.Is(err, errNotAccepted)
			},
		},
		breaker:     resilience.NewCircuitBreaker(providerBreakerConfig()),
		countryText: "united states",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Provider.
func (p *NominatimProvider) Name() string { return "nominatim" }

// Available implements Provider. Nominatim needs no credential.
func (p *NominatimProvider) Available() bool { return true }

// Geocode implements Provider. Transient failures and unaccepted results
// are retried within the attempt budget; exhaustion by rejection yields an
// unmatched result, exhaustion by transport failure yields an error.
func (p *NominatimProvider) Geocode(ctx context.Context, query string) (*Result, error) {
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

func (p *NominatimProvider) geocodeOnce(ctx context.Context, query string) (*Result, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim rate limit")
	}

	params := url.Values{
		"q":               {query},
		"format":          {"json"},
		"limit":           {"1"},
		"accept-language": {"en"},
	}
	reqURL := p.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim build request")
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, resilience.NewTransientError(err, 0)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return nil, resilience.NewTransientError(
				eris.Errorf("geocode: nominatim returned status %d", resp.StatusCode), resp.StatusCode)
		}
		return nil, eris.Errorf("geocode: nominatim returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim read body")
	}

	var items []nominatimItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, eris.Wrap(err, "geocode: nominatim parse response")
	}
	if len(items) == 0 {
		return nil, errNotAccepted
	}

	item := items[0]
	if !containsFold(item.DisplayName, p.countryText) {
		return nil, errNotAccepted
	}

	lat, latErr := strconv.ParseFloat(item.Lat, 64)
	lng, lngErr := strconv.ParseFloat(item.Lon, 64)
	if latErr != nil || lngErr != nil {
		return nil, errNotAccepted
	}

	return &Result{
		Lat:     lat,
		Lng:     lng,
		Address: item.DisplayName,
		Source:  p.Name(),
		Matched: true,
	}, nil
}
