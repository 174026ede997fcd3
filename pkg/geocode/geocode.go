// Package geocode resolves location query strings to coordinates through
// an ordered chain of providers: Nominatim (open, rate-limited),
// Google (commercial, credential-gated) and Photon (open, registration-free).
// Each tier carries its own retry, timeout and validation policy; the chain
// short-circuits on the first accepted result.
package geocode

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is a resolved coordinate pair. Matched=false is the normal
// "not found" outcome, not an error.
type Result struct {
	Lat     float64
	Lng     float64
	Address string // provider display address, when available
	Source  string
	Matched bool
}

// Provider is one geocoding backend with its own policy.
type Provider interface {
	// Name identifies the tier in logs.
	Name() string
	// Available reports whether the tier can be tried at all
	// (e.g. a credential is configured).
	Available() bool
	// Geocode resolves a query. Implementations handle their own retries;
	// a returned error means the tier is exhausted.
	Geocode(ctx context.Context, query string) (*Result, error)
}

// Resolver tries providers in order until one accepts the query.
type Resolver struct {
	providers []Provider
}

// NewResolver creates a Resolver over an ordered provider chain.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve returns the first accepted coordinate pair. Tier errors are
// logged and converted to fall-through; they never escape. A blank query
// returns unmatched without touching any provider.
func (r *Resolver) Resolve(ctx context.Context, query string) *Result {
	query = strings.TrimSpace(query)
	if query == "" {
		return &Result{Matched: false}
	}

	log := zap.L().With(
		zap.String("query", query),
		zap.String("trace_id", uuid.NewString()),
	)

	for _, p := range r.providers {
		if !p.Available() {
			log.Debug("geocode: tier unavailable", zap.String("tier", p.Name()))
			continue
		}

		result, err := p.Geocode(ctx, query)
		if err != nil {
			log.Warn("geocode: tier exhausted",
				zap.String("tier", p.Name()),
				zap.Error(err),
			)
			continue
		}
		if result != nil && result.Matched {
			log.Debug("geocode: resolved",
				zap.String("tier", p.Name()),
				zap.Float64("lat", result.Lat),
				zap.Float64("lng", result.Lng),
			)
			return result
		}
	}

	return &Result{Matched: false}
}

// BatchResolve resolves multiple queries with bounded concurrency. Results
// are positional; unmatched queries yield unmatched results, never errors.
func (r *Resolver) BatchResolve(ctx context.Context, queries []string, concurrency int) []*Result {
	if concurrency <= 0 {
		concurrency = 4
	}
	results := make([]*Result, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, q := range queries {
		g.Go(func() error {
			results[i] = r.Resolve(ctx, q)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	return results
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
