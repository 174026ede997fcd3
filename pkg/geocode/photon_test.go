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

func TestPhoton_ResolvesGeoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, "Paterson, NJ", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		// GeoJSON orders coordinates longitude first.
		w.Write([]byte(`{
			"features": [{
				"geometry": {"coordinates": [-74.1718, 40.9168]},
				"properties": {"name": "Paterson", "state": "New Jersey", "country": "United States"}
			}]
		}`))
	}))
	defer srv.Close()

	p := NewPhotonProvider(5*time.Second, WithPhotonBaseURL(srv.URL))
	res, err := p.Geocode(context.Background(), "Paterson, NJ")

	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.InDelta(t, 40.9168, res.Lat, 1e-9)
	assert.InDelta(t, -74.1718, res.Lng, 1e-9)
	assert.Equal(t, "Paterson, New Jersey, United States", res.Address)
	assert.Equal(t, "photon", res.Source)
}

func TestPhoton_NoFeatures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	p := NewPhotonProvider(5*time.Second, WithPhotonBaseURL(srv.URL))
	res, err := p.Geocode(context.Background(), "zzzzz")

	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestPhoton_SingleShot(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewPhotonProvider(5*time.Second, WithPhotonBaseURL(srv.URL))
	_, err := p.Geocode(context.Background(), "Paterson")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "last tier never retries")
}

func TestPhoton_MalformedGeometry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": [{"geometry": {"coordinates": []}}]}`))
	}))
	defer srv.Close()

	p := NewPhotonProvider(5*time.Second, WithPhotonBaseURL(srv.URL))
	res, err := p.Geocode(context.Background(), "anything")

	require.NoError(t, err)
	assert.False(t, res.Matched)
}
