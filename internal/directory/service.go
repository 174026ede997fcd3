// Package directory orchestrates the catalog: it resolves free-form
// location queries to nearby listings and carries the mutation workflows
// (add, edit, delete, swap, blacklist).
package directory

import (
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/myhalal/directory/internal/catalog"
	"github.com/myhalal/directory/internal/geo"
	"github.com/myhalal/directory/internal/listing"
	"github.com/myhalal/directory/internal/maplink"
	"github.com/myhalal/directory/internal/model"
	"github.com/myhalal/directory/internal/normalize"
	"github.com/myhalal/directory/internal/store"
	"github.com/myhalal/directory/internal/textfilter"
	"github.com/myhalal/directory/pkg/geocode"
)

// ErrNoReply signals that the query was filtered out or produced nothing;
// conversational callers stay silent on it.
var ErrNoReply = eris.New("directory: no reply")

// ErrNoneNearby signals that an explicit coordinate query found no listing
// within the radius. Unlike ErrNoReply, callers report it.
var ErrNoneNearby = eris.New("directory: nothing within radius")

// Geocoder resolves a location query to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, query string) *geocode.Result
}

// CityExtractor pulls a geocodable US location out of free-form text.
type CityExtractor interface {
	Extract(ctx context.Context, text string) (string, bool)
}

// DefaultRadiusKm is the search radius around a resolved point.
const DefaultRadiusKm = 100.0

// tokenProbeRe captures candidate location words for the fallback probe:
// ascii-letter runs, optionally two of them.
var tokenProbeRe = regexp.MustCompile(`\b[A-Za-z]{2,}(?:\s+[A-Za-z]{2,})?\b`)

// Service wires the store, the snapshot cache, the geocoder chain, the
// optional model-assisted extractor and the map-link parser.
type Service struct {
	store     store.Store
	cache     *catalog.Cache
	geocoder  Geocoder
	extractor CityExtractor // nil when no model credential is configured
	parser    *maplink.Parser
	radiusKm  float64
}

// New creates a Service. extractor may be nil; the token probe then carries
// the whole extraction burden.
func New(st store.Store, cache *catalog.Cache, g Geocoder, extractor CityExtractor, parser *maplink.Parser, radiusKm float64) *Service {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	return &Service{
		store:     st,
		cache:     cache,
		geocoder:  g,
		extractor: extractor,
		parser:    parser,
		radiusKm:  radiusKm,
	}
}

// ResolveText resolves a free-form message to the listings near the
// location it mentions. Filtered input and unresolvable locations both
// return ErrNoReply, so callers cannot distinguish them and stay silent.
func (s *Service) ResolveText(ctx context.Context, raw string) ([]*model.Place, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || textfilter.IsAdvertisement(raw) {
		return nil, ErrNoReply
	}

	words, err := s.store.ListBlacklist(ctx)
	if err != nil {
		return nil, eris.Wrap(err, "directory: load blacklist")
	}
	lowered := strings.ToLower(raw)
	for _, w := range words {
		if strings.Contains(lowered, w) {
			return nil, ErrNoReply
		}
	}

	if textfilter.IsGibberish(raw) {
		return nil, ErrNoReply
	}

	city := ""
	if s.extractor != nil {
		city, _ = s.extractor.Extract(ctx, raw)
	}
	if city == "" {
		city = s.probeTokens(ctx, raw)
	}
	if city == "" {
		return nil, ErrNoReply
	}

	res := s.geocoder.Resolve(ctx, city)
	if !res.Matched {
		return nil, ErrNoReply
	}

	found := s.nearby(res.Lat, res.Lng)
	if len(found) == 0 {
		return nil, ErrNoReply
	}
	return found, nil
}

// ResolvePoint returns the listings within the radius of an explicit
// coordinate. An empty result is reported, not silenced.
func (s *Service) ResolvePoint(_ context.Context, c model.Coordinate) ([]*model.Place, error) {
	if !c.Valid() {
		return nil, eris.Errorf("directory: invalid coordinate (%v, %v)", c.Lat, c.Lng)
	}
	found := s.nearby(c.Lat, c.Lng)
	if len(found) == 0 {
		return nil, ErrNoneNearby
	}
	return found, nil
}

// probeTokens geocodes candidate words straight from the text. It covers
// small towns and transliterated names the extractor misses.
func (s *Service) probeTokens(ctx context.Context, raw string) string {
	for _, word := range tokenProbeRe.FindAllString(raw, -1) {
		if len(word) <= 2 {
			continue
		}
		if res := s.geocoder.Resolve(ctx, word); res.Matched {
			return word
		}
	}
	return ""
}

func (s *Service) nearby(lat, lng float64) []*model.Place {
	matches := geo.Nearby(model.Coordinate{Lat: lat, Lng: lng}, s.cache.Snapshot(), s.radiusKm)
	out := make([]*model.Place, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Place)
	}
	return out
}

// AddPlace validates and stores a new listing. Coordinates come from the
// draft's map link when it carries any, otherwise from geocoding the
// normalized city label.
func (s *Service) AddPlace(ctx context.Context, draft model.Draft) (*model.Place, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var lat, lng float64
	if c, ok := s.parser.Parse(ctx, draft.MapLink); ok {
		lat, lng = c.Lat, c.Lng
	} else {
		query, ok := normalize.Normalize(draft.City)
		if !ok {
			query = normalize.EnsureCountry(draft.City)
		}
		res := s.geocoder.Resolve(ctx, query)
		if !res.Matched {
			return nil, eris.Errorf("directory: cannot locate %q", draft.City)
		}
		lat, lng = res.Lat, res.Lng
	}

	channel, user := draft.Render()
	p, err := s.store.InsertPlace(ctx, model.Place{
		Name:        draft.Name,
		Lat:         lat,
		Lng:         lng,
		TextUser:    user,
		TextChannel: channel,
	})
	if err != nil {
		return nil, err
	}
	if err := s.cache.RefreshOne(ctx, p.ID); err != nil {
		zap.L().Warn("directory: cache refresh after insert", zap.Int64("id", p.ID), zap.Error(err))
	}
	zap.L().Info("directory: place added", zap.Int64("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

// EditField applies a listing lens to one place and persists every
// representation the lens changed. The caller serializes concurrent edits
// of the same id.
func (s *Service) EditField(ctx context.Context, id int64, field listing.Field, value string, index int) (*model.Place, error) {
	p, err := s.store.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}

	// A link edit moves the place: its coordinates come from the new link
	// and the edit is rejected when none can be derived.
	var coords *model.Coordinate
	if field == listing.FieldLocationLink {
		c, ok := s.linkCoordinates(ctx, value)
		if !ok {
			return nil, eris.Wrapf(listing.ErrBadValue, "no coordinates derivable from link %q", value)
		}
		coords = &c
	}

	beforeUser, beforeChannel := p.TextUser, p.TextChannel
	if err := listing.Edit(p, field, value, index); err != nil {
		return nil, err
	}

	if p.TextUser != beforeUser {
		if err := s.store.UpdatePlaceField(ctx, id, "text_user", p.TextUser); err != nil {
			return nil, err
		}
	}
	if p.TextChannel != beforeChannel {
		if err := s.store.UpdatePlaceField(ctx, id, "text_channel", p.TextChannel); err != nil {
			return nil, err
		}
	}
	if field == listing.FieldName {
		if err := s.store.UpdatePlaceField(ctx, id, "name", p.Name); err != nil {
			return nil, err
		}
	}
	if coords != nil {
		if err := s.store.UpdatePlaceField(ctx, id, "lat", coords.Lat); err != nil {
			return nil, err
		}
		if err := s.store.UpdatePlaceField(ctx, id, "lng", coords.Lng); err != nil {
			return nil, err
		}
		p.Lat, p.Lng = coords.Lat, coords.Lng
	}

	if err := s.cache.RefreshOne(ctx, id); err != nil {
		zap.L().Warn("directory: cache refresh after edit", zap.Int64("id", id), zap.Error(err))
	}
	return p, nil
}

// linkCoordinates derives a coordinate pair for a replacement map link:
// from the link itself, else by geocoding the /place/ name it carries.
func (s *Service) linkCoordinates(ctx context.Context, link string) (model.Coordinate, bool) {
	if c, ok := s.parser.Parse(ctx, link); ok {
		return c, true
	}
	if name := maplink.ExtractPlaceName(link); name != "" {
		if res := s.geocoder.Resolve(ctx, name); res.Matched {
			return model.Coordinate{Lat: res.Lat, Lng: res.Lng}, true
		}
	}
	return model.Coordinate{}, false
}

// SetCoordinates overwrites a place's coordinates, for listings whose map
// link moved.
func (s *Service) SetCoordinates(ctx context.Context, id int64, c model.Coordinate) error {
	if !c.Valid() {
		return eris.Errorf("directory: invalid coordinate (%v, %v)", c.Lat, c.Lng)
	}
	if err := s.store.UpdatePlaceField(ctx, id, "lat", c.Lat); err != nil {
		return err
	}
	if err := s.store.UpdatePlaceField(ctx, id, "lng", c.Lng); err != nil {
		return err
	}
	return s.cache.RefreshOne(ctx, id)
}

// DeletePlace removes a listing and drops it from the snapshot.
func (s *Service) DeletePlace(ctx context.Context, id int64) error {
	if err := s.store.DeletePlace(ctx, id); err != nil {
		return err
	}
	if err := s.cache.RefreshOne(ctx, id); err != nil {
		zap.L().Warn("directory: cache refresh after delete", zap.Int64("id", id), zap.Error(err))
	}
	zap.L().Info("directory: place deleted", zap.Int64("id", id))
	return nil
}

// Swap exchanges the content of two listings and refreshes both.
func (s *Service) Swap(ctx context.Context, idA, idB int64) error {
	if idA == idB {
		return eris.New("directory: swap needs two distinct ids")
	}
	if err := s.store.SwapPlaces(ctx, idA, idB); err != nil {
		return err
	}
	for _, id := range []int64{idA, idB} {
		if err := s.cache.RefreshOne(ctx, id); err != nil {
			zap.L().Warn("directory: cache refresh after swap", zap.Int64("id", id), zap.Error(err))
		}
	}
	return nil
}

// Blacklist reads the current blacklist.
func (s *Service) Blacklist(ctx context.Context) ([]string, error) {
	return s.store.ListBlacklist(ctx)
}

// BlockWord adds a word to the blacklist.
func (s *Service) BlockWord(ctx context.Context, word string) error {
	return s.store.AddBlacklistWord(ctx, word)
}

// UnblockWord removes a word from the blacklist.
func (s *Service) UnblockWord(ctx context.Context, word string) error {
	return s.store.RemoveBlacklistWord(ctx, word)
}

// Places returns the cached catalog in id order.
func (s *Service) Places() []*model.Place {
	return s.cache.Snapshot()
}

// Place returns one cached listing, or nil.
func (s *Service) Place(id int64) *model.Place {
	return s.cache.Get(id)
}
