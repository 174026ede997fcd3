package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNominatimForTest(t *testing.T, srv *httptest.Server, opts ...NominatimOption) *NominatimProvider {
	t.Helper()
	base := []NominatimOption{
		WithNominatimBaseURL(srv.URL),
		WithNominatimRateLimit(1000), // no courtesy delay in tests
	}
	return NewNominatimProvider("directory-test/1.0", 5*time.Second, append(base, opts...)...)
}

func TestNominatim_AcceptsDomesticResult(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "Albany, NY", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"lat":"42.6526","lon":"-73.7562","display_name":"Albany, New York, United States"}]`))
	}))
	defer srv.Close()

	p := newNominatimForTest(t, srv)
	res, err := p.Geocode(context.Background(), "Albany, NY")

	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.InDelta(t, 42.6526, res.Lat, 1e-9)
	assert.InDelta(t, -73.7562, res.Lng, 1e-9)
	assert.Equal(t, "nominatim", res.Source)
	assert.Equal(t, "directory-test/1.0", gotUA)
}

func TestNominatim_RejectsForeignResult(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"lat":"51.5074","lon":"-0.1278","display_name":"London, Greater London, United Kingdom"}]`))
	}))
	defer srv.Close()

	p := newNominatimForTest(t, srv, WithNominatimAttempts(2))
	res, err := p.Geocode(context.Background(), "London")

	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Equal(t, int32(2), calls.Load(), "rejection is retried within the budget")
}

func TestNominatim_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := newNominatimForTest(t, srv, WithNominatimAttempts(1))
	res, err := p.Geocode(context.Background(), "zzzzz")

	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestNominatim_RetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[{"lat":"40.71","lon":"-74.00","display_name":"New York, United States"}]`))
	}))
	defer srv.Close()

	p := newNominatimForTest(t, srv)
	res, err := p.Geocode(context.Background(), "New York")

	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNominatim_ClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	p := newNominatimForTest(t, srv)
	_, err := p.Geocode(context.Background(), "New York")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNominatim_Available(t *testing.T) {
	p := NewNominatimProvider("ua", time.Second)
	assert.True(t, p.Available())
	assert.Equal(t, "nominatim", p.Name())
}

func TestNominatim_UnmatchedStreakKeepsTierAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "Philadelphia" {
			w.Write([]byte(`[{"lat":"40.0","lon":"-75.0","display_name":"Philadelphia, Pennsylvania, United States"}]`))
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	p := newNominatimForTest(t, srv, WithNominatimAttempts(1))

	// A run of queries with no result is normal operation, not failure.
	for i := 0; i < 6; i++ {
		res, err := p.Geocode(context.Background(), "nowhere")
		require.NoError(t, err)
		assert.False(t, res.Matched)
	}

	res, err := p.Geocode(context.Background(), "Philadelphia")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.InDelta(t, 40.0, res.Lat, 1e-9)
	assert.InDelta(t, -75.0, res.Lng, 1e-9)
}
