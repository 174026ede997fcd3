package geocode

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name      string
	available bool
	result    *Result
	err       error
	calls     int
}

func (s *stubProvider) Name() string    { return s.name }
func (s *stubProvider) Available() bool { return s.available }
func (s *stubProvider) Geocode(_ context.Context, _ string) (*Result, error) {
	s.calls++
	return s.result, s.err
}

func TestResolve_FirstTierWins(t *testing.T) {
	first := &stubProvider{name: "first", available: true,
		result: &Result{Lat: 40.7, Lng: -74.0, Matched: true, Source: "first"}}
	second := &stubProvider{name: "second", available: true,
		result: &Result{Lat: 1, Lng: 1, Matched: true, Source: "second"}}

	r := NewResolver(first, second)
	res := r.Resolve(context.Background(), "Brooklyn, NY")

	require.True(t, res.Matched)
	assert.Equal(t, "first", res.Source)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls, "chain must short-circuit")
}

func TestResolve_FallsThroughToLastTier(t *testing.T) {
	timingOut := &stubProvider{name: "primary", available: true,
		err: eris.New("request timed out")}
	noCredential := &stubProvider{name: "keyed", available: false}
	last := &stubProvider{name: "fallback", available: true,
		result: &Result{Lat: 40.0, Lng: -75.0, Matched: true, Source: "fallback"}}

	r := NewResolver(timingOut, noCredential, last)
	res := r.Resolve(context.Background(), "Philadelphia")

	require.True(t, res.Matched)
	assert.InDelta(t, 40.0, res.Lat, 1e-9)
	assert.InDelta(t, -75.0, res.Lng, 1e-9)
	assert.Equal(t, 1, timingOut.calls)
	assert.Equal(t, 0, noCredential.calls, "unavailable tier must be skipped")
	assert.Equal(t, 1, last.calls)
}

func TestResolve_AllTiersExhausted(t *testing.T) {
	r := NewResolver(
		&stubProvider{name: "a", available: true, err: eris.New("down")},
		&stubProvider{name: "b", available: true, result: &Result{Matched: false}},
	)
	res := r.Resolve(context.Background(), "nowhere at all")
	assert.False(t, res.Matched)
}

func TestResolve_BlankQuery(t *testing.T) {
	p := &stubProvider{name: "a", available: true,
		result: &Result{Lat: 1, Lng: 2, Matched: true}}
	r := NewResolver(p)

	res := r.Resolve(context.Background(), "   ")
	assert.False(t, res.Matched)
	assert.Equal(t, 0, p.calls, "blank queries must not reach providers")
}

func TestResolve_NoProviders(t *testing.T) {
	r := NewResolver()
	res := r.Resolve(context.Background(), "Chicago")
	assert.False(t, res.Matched)
}

func TestBatchResolve(t *testing.T) {
	p := &stubProvider{name: "a", available: true,
		result: &Result{Lat: 3, Lng: 4, Matched: true}}
	r := NewResolver(p)

	results := r.BatchResolve(context.Background(), []string{"x", "", "y"}, 2)
	require.Len(t, results, 3)
	assert.True(t, results[0].Matched)
	assert.False(t, results[1].Matched)
	assert.True(t, results[2].Matched)
}
