package normalize

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{"city with state code", "orlando fl", "Orlando, Florida, USA", true},
		{"city only", "sacramento", "Sacramento, USA", true},
		{"multi word city", "kansas city mo", "Kansas City, Missouri, USA", true},
		{"state code only", "fl", "", false},
		{"empty", "", "", false},
		{"short tokens dropped", "go to denver co", "Denver, Colorado, USA", true},
		{"uppercase input", "AUSTIN TX", "Austin, Texas, USA", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Normalize(tt.in)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripGreeting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"assalomu alaykum nashville bormi", "nashville"},
		{"hello chicago", "chicago"},
		{"привет денвер есть", "денвер"},
		{"nashville", "nashville"},
		{"hi orlando available", "orlando"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripGreeting(tt.in), "in=%q", tt.in)
	}
}

func TestEnsureCountry(t *testing.T) {
	assert.Equal(t, "Austin, Texas, USA", EnsureCountry("Austin, Texas, USA"))
	assert.Equal(t, "Austin, Texas, USA", EnsureCountry("Austin, Texas"))
}

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestExtractorExtract(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		in    string
		want  string
		found bool
	}{
		{"canonical answer", "Kansas City, Missouri, USA", nil, "menga kansas city dan ovqat kerak", "Kansas City, Missouri, USA", true},
		{"country appended", "Knoxville, Tennessee", nil, "knoxville food", "Knoxville, Tennessee, USA", true},
		{"empty sentinel", "EMPTY", nil, "how are you", "", false},
		{"none sentinel", "none", nil, "anything", "", false},
		{"api error", "", eris.New("boom"), "nashville", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(&fakeCompleter{reply: tt.reply, err: tt.err})
			got, ok := e.Extract(context.Background(), tt.in)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractorSkipsTinyInput(t *testing.T) {
	fc := &fakeCompleter{reply: "Austin, Texas, USA"}
	e := NewExtractor(fc)
	_, ok := e.Extract(context.Background(), "a")
	require.False(t, ok)
	assert.Zero(t, fc.calls, "tiny input must not reach the model")
}

func TestNormalizeAssistedFallback(t *testing.T) {
	e := NewExtractor(&fakeCompleter{err: eris.New("unreachable")})
	got := e.NormalizeAssisted(context.Background(), "hello nashville")
	assert.Equal(t, "Nashville, USA", got)

	e = NewExtractor(&fakeCompleter{reply: "Nashville, Tennessee, USA"})
	assert.Equal(t, "Nashville, Tennessee, USA", e.NormalizeAssisted(context.Background(), "nashville"))
}
