package main

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/myhalal/directory/internal/catalog"
	"github.com/myhalal/directory/internal/directory"
	"github.com/myhalal/directory/internal/maplink"
	"github.com/myhalal/directory/internal/normalize"
	"github.com/myhalal/directory/internal/store"
	"github.com/myhalal/directory/pkg/geocode"
)

// dirEnv holds the initialized store, cache and service shared by the
// resolve/places/blacklist/serve commands.
type dirEnv struct {
	Store   store.Store
	Cache   *catalog.Cache
	Service *directory.Service
}

// Close releases resources held by the environment.
func (e *dirEnv) Close() {
	if e.Store != nil {
		_ = e.Store.Close()
	}
}

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		dsn := cfg.Store.DatabaseURL
		if dsn == "" {
			dsn = "directory.db"
		}
		return store.NewSQLite(dsn)
	case "postgres":
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, &store.PoolConfig{
			MaxConns: cfg.Store.MaxConns,
			MinConns: cfg.Store.MinConns,
		})
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

// initDirectory sets up the store, geocoding tiers, extraction assist and
// catalog cache. Callers should defer env.Close().
func initDirectory(ctx context.Context) (*dirEnv, error) {
	st, err := initStore(ctx)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	cache := catalog.New(st)
	if err := cache.Reload(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "load catalog")
	}

	resolver := geocode.NewResolver(
		geocode.NewNominatimProvider(cfg.Geocode.UserAgent, cfg.Geocode.Timeout(),
			geocode.WithNominatimBaseURL(cfg.Geocode.NominatimURL),
			geocode.WithNominatimRateLimit(cfg.Geocode.NominatimRPS),
			geocode.WithNominatimAttempts(cfg.Geocode.MaxAttempts),
		),
		geocode.NewGoogleProvider(cfg.Geocode.GoogleAPIKey, cfg.Geocode.Timeout()),
		geocode.NewPhotonProvider(cfg.Geocode.Timeout(),
			geocode.WithPhotonBaseURL(cfg.Geocode.PhotonBaseURL),
		),
	)

	var extractor directory.CityExtractor
	if cfg.Anthropic.Enabled() {
		completer := normalize.NewCompleter(cfg.Anthropic.Key, cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
		extractor = normalize.NewExtractor(completer)
		zap.L().Info("assisted city extraction enabled", zap.String("model", cfg.Anthropic.Model))
	} else {
		zap.L().Debug("HALAL_ANTHROPIC_KEY not set, falling back to token probing")
	}

	parser := maplink.NewParser(cfg.Geocode.LinkTimeout())
	svc := directory.New(st, cache, resolver, extractor, parser, cfg.Directory.RadiusKM)

	return &dirEnv{Store: st, Cache: cache, Service: svc}, nil
}
