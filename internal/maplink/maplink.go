// Package maplink extracts coordinates from map URLs without geocoding.
// It understands the common Google Maps link shapes and expands shortened
// links through one redirect-resolution step.
package maplink

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/myhalal/directory/internal/model"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// coordPatterns are tried in order; the first in-range match wins. Each
// pattern captures latitude then longitude.
var coordPatterns = []*regexp.Regexp{
	// @lat,lng path segment (optionally with trailing zoom)
	regexp.MustCompile(`@(-?\d{1,3}\.?\d*)\s*,\s*(-?\d{1,3}\.?\d*)`),
	// !3dlat!4dlng place-data encoding
	regexp.MustCompile(`!3d(-?\d+\.?\d*)!4d(-?\d+\.?\d*)`),
	// data=...!3d...!4d...
	regexp.MustCompile(`data=[^&]*!3d(-?\d+\.?\d*)!4d(-?\d+\.?\d*)`),
	// ll= query parameter
	regexp.MustCompile(`[?&]ll=(-?\d{1,3}\.?\d*)\s*,\s*(-?\d{1,3}\.?\d*)`),
	// q= query parameter
	regexp.MustCompile(`[?&]q=(-?\d{1,3}\.?\d*)\s*,\s*([+-]?\d{1,3}\.?\d*)`),
	// /search/lat,lng path
	regexp.MustCompile(`/search/(-?\d{1,3}\.?\d*)\s*,\s*\+?\s*(-?\d{1,3}\.?\d*)`),
	// @lat,lng,15z with explicit zoom
	regexp.MustCompile(`@(-?\d{1,3}\.?\d*)\s*,\s*(-?\d{1,3}\.?\d*),\d+\.?\d*z`),
	// cbll= street view parameter
	regexp.MustCompile(`[?&]cbll=(-?\d{1,3}\.?\d*)\s*,\s*(-?\d{1,3}\.?\d*)`),
}

var placeSegment = regexp.MustCompile(`/place/([^/]+)`)

// Parser extracts coordinates from map links.
type Parser struct {
	client *http.Client
}

// NewParser creates a Parser whose redirect-expansion requests are bounded
// by timeout.
func NewParser(timeout time.Duration) *Parser {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Parser{client: &http.Client{Timeout: timeout}}
}

// NewParserWithClient creates a Parser with a caller-supplied HTTP client.
func NewParserWithClient(client *http.Client) *Parser {
	return &Parser{client: client}
}

// isShortened reports whether the URL needs redirect expansion.
func isShortened(rawURL string) bool {
	return strings.Contains(rawURL, "maps.app.goo.gl") || strings.Contains(rawURL, "goo.gl")
}

// Expand resolves a shortened link to its canonical URL by following
// redirects. Failures are swallowed: the original URL is returned so the
// caller can still try pattern matching on it.
func (p *Parser) Expand(ctx context.Context, rawURL string) string {
	if !isShortened(rawURL) {
		return rawURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		zap.L().Debug("maplink: build expand request failed", zap.String("url", rawURL), zap.Error(err))
		return rawURL
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		zap.L().Debug("maplink: redirect expansion failed", zap.String("url", rawURL), zap.Error(err))
		return rawURL
	}
	defer resp.Body.Close() //nolint:errcheck

	return resp.Request.URL.String()
}

// Parse extracts a coordinate pair from a map link. Shortened links are
// expanded first; the (possibly expanded) URL is URL-decoded and matched
// against the known coordinate encodings in order. Returns ok=false when no
// pattern yields an in-range pair.
func (p *Parser) Parse(ctx context.Context, rawURL string) (model.Coordinate, bool) {
	expanded := p.Expand(ctx, rawURL)
	return Match(expanded)
}

// Match runs the pattern list against a URL without any network step.
func Match(rawURL string) (model.Coordinate, bool) {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}

	for _, pattern := range coordPatterns {
		m := pattern.FindStringSubmatch(decoded)
		if m == nil {
			continue
		}
		lat, latErr := strconv.ParseFloat(m[1], 64)
		lng, lngErr := strconv.ParseFloat(m[2], 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		c := model.Coordinate{Lat: lat, Lng: lng}
		if c.Valid() {
			return c, true
		}
	}
	return model.Coordinate{}, false
}

// ExtractPlaceName pulls the human-readable name from a /place/<name> path
// segment, for geocoding when the link itself carries no coordinates.
func ExtractPlaceName(rawURL string) string {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}
	m := placeSegment.FindStringSubmatch(decoded)
	if m == nil {
		return ""
	}
	name := strings.ReplaceAll(m[1], "+", " ")
	return strings.TrimSpace(name)
}
