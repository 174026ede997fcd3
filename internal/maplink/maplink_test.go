package maplink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchKnownShapes(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantLat float64
		wantLng float64
	}{
		{
			"at segment with zoom",
			"https://www.google.com/maps/place/X/@38.6170,-121.5380,15z",
			38.6170, -121.5380,
		},
		{
			"q parameter",
			"https://www.google.com/maps?q=38.62,-121.50",
			38.62, -121.50,
		},
		{
			"q parameter with space",
			"https://www.google.com/maps?q=38.61700400 ,-121.53797100",
			38.617004, -121.537971,
		},
		{
			"ll parameter",
			"https://maps.google.com/?ll=40.7128,-74.0060",
			40.7128, -74.0060,
		},
		{
			"cbll parameter",
			"https://maps.google.com/maps?cbll=47.2447,-122.3854",
			47.2447, -122.3854,
		},
		{
			"place data encoding",
			"https://www.google.com/maps/place/Cafe/data=!4m5!3m4!1s0x0:0x0!8m2!3d39.7910!4d-104.9046",
			39.7910, -104.9046,
		},
		{
			"search path",
			"https://www.google.com/maps/search/39.2701,-84.4416",
			39.2701, -84.4416,
		},
		{
			"url encoded",
			"https://www.google.com/maps%3Fq%3D38.62%2C-121.50",
			38.62, -121.50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Match(tt.url)
			require.True(t, ok)
			assert.InDelta(t, tt.wantLat, c.Lat, 1e-6)
			assert.InDelta(t, tt.wantLng, c.Lng, 1e-6)
		})
	}
}

func TestMatchRejects(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no pattern", "https://www.google.com/maps/place/Some+Restaurant"},
		{"out of range latitude", "https://www.google.com/maps?q=99.0,-121.50"},
		{"out of range longitude", "https://maps.google.com/?ll=40.0,-190.0"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Match(tt.url)
			assert.False(t, ok)
		})
	}
}

func TestExpandFollowsRedirect(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer final.Close()

	// The shortened-host check keys off the URL text, so embed the marker
	// in the query rather than the host.
	short := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL+"/maps?q=38.62,-121.50", http.StatusFound)
	}))
	defer short.Close()

	p := NewParser(5 * time.Second)
	got := p.Expand(context.Background(), short.URL+"/?maps.app.goo.gl")
	assert.Contains(t, got, "q=38.62,-121.50")

	c, ok := p.Parse(context.Background(), short.URL+"/?maps.app.goo.gl")
	require.True(t, ok)
	assert.InDelta(t, 38.62, c.Lat, 1e-6)
}

func TestExpandFailureFallsBackToOriginal(t *testing.T) {
	p := NewParserWithClient(&http.Client{Timeout: 50 * time.Millisecond})
	// Unroutable address: expansion fails, original URL comes back.
	in := "http://192.0.2.1/?maps.app.goo.gl&q=38.62,-121.50"
	got := p.Expand(context.Background(), in)
	assert.Equal(t, in, got)

	// Parse still succeeds on the unexpanded URL.
	c, ok := p.Parse(context.Background(), in)
	require.True(t, ok)
	assert.InDelta(t, 38.62, c.Lat, 1e-6)
}

func TestExpandPassthroughForRegularURL(t *testing.T) {
	p := NewParser(time.Second)
	in := "https://www.google.com/maps?q=1,1"
	assert.Equal(t, in, p.Expand(context.Background(), in))
}

func TestExtractPlaceName(t *testing.T) {
	assert.Equal(t, "Chaihana Amir",
		ExtractPlaceName("https://www.google.com/maps/place/Chaihana+Amir/data=!3m1"))
	assert.Equal(t, "Cafe Istanbul",
		ExtractPlaceName("https://www.google.com/maps/place/Cafe%20Istanbul/@1,1"))
	assert.Empty(t, ExtractPlaceName("https://www.google.com/maps?q=1,1"))
}
