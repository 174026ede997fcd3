package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhalal/directory/internal/catalog"
	"github.com/myhalal/directory/internal/directory"
	"github.com/myhalal/directory/internal/maplink"
	"github.com/myhalal/directory/internal/model"
	"github.com/myhalal/directory/internal/store"
	"github.com/myhalal/directory/pkg/geocode"
)

type stubGeocoder struct {
	known map[string]model.Coordinate
}

func (g *stubGeocoder) Resolve(_ context.Context, query string) *geocode.Result {
	if c, ok := g.known[query]; ok {
		return &geocode.Result{Lat: c.Lat, Lng: c.Lng, Matched: true, Source: "test"}
	}
	return &geocode.Result{Matched: false}
}

func sacramentoPlace() model.Place {
	return model.Place{
		Name: "CHAIHANA-AMIR", Lat: 38.617004, Lng: -121.537971,
		TextUser:    "🍽️ <b>CHAIHANA-AMIR</b>\n📍 <a href='https://www.google.com/maps?q=38.617004,-121.537971'>Sacramento, CA</a>\ndetails\n📋 <a href='https://t.me/myhalalmenu/8'>Меню</a>\n📞 +19167506977\n📱 Telegram: @MYHALAL_FOOD\n",
		TextChannel: "#️⃣1\n🍽️ <b>CHAIHANA-AMIR</b>\n📍 <a href='https://www.google.com/maps?q=38.617004,-121.537971'>Sacramento, CA</a>\ndetails\n📋 <a href='https://t.me/myhalalmenu/8'>Меню</a>\n📞 +19167506977\n📱 Telegram: @MYHALAL_FOOD\n",
	}
}

func orlandoPlace() model.Place {
	return model.Place{
		Name: "KEBAB-HOUSE", Lat: 28.538336, Lng: -81.379234,
		TextUser:    "🍽️ <b>KEBAB-HOUSE</b>\n📍 <a href='https://www.google.com/maps?q=28.538336,-81.379234'>Orlando, FL</a>\ndetails\n📋 <a href='https://t.me/myhalalmenu/12'>Меню</a>\n📞 +14075551234\n📱 Telegram: @MYHALAL_FOOD\n",
		TextChannel: "#️⃣2\n🍽️ <b>KEBAB-HOUSE</b>\n📍 <a href='https://www.google.com/maps?q=28.538336,-81.379234'>Orlando, FL</a>\ndetails\n📋 <a href='https://t.me/myhalalmenu/12'>Меню</a>\n📞 +14075551234\n📱 Telegram: @MYHALAL_FOOD\n",
	}
}

func newTestHandler(t *testing.T, g directory.Geocoder, places ...model.Place) (http.Handler, store.Store) {
	t.Helper()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	for _, p := range places {
		_, err := st.InsertPlace(context.Background(), p)
		require.NoError(t, err)
	}

	cache := catalog.New(st)
	require.NoError(t, cache.Reload(context.Background()))

	svc := directory.New(st, cache, g, nil, maplink.NewParser(time.Second), 100.0)
	return New(svc).Router(), st
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{})

	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestResolve_TextReturnsMatches(t *testing.T) {
	g := &stubGeocoder{known: map[string]model.Coordinate{
		"sacramento": {Lat: 38.58, Lng: -121.49},
	}}
	h, _ := newTestHandler(t, g, sacramentoPlace(), orlandoPlace())

	rec := doJSON(t, h, http.MethodPost, "/api/resolve", map[string]string{"text": "ovqat kerak sacramento"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "CHAIHANA-AMIR", resp.Places[0].Name)
}

func TestResolve_SilentTextIsNoContent(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	rec := doJSON(t, h, http.MethodPost, "/api/resolve", map[string]string{"text": "Buy now! https://promo.example.com"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestResolve_PointHappyPath(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	rec := doJSON(t, h, http.MethodPost, "/api/resolve", map[string]float64{"lat": 38.58, "lng": -121.49})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resolveResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Places, 1)
}

func TestResolve_PointNothingNearbyIsNotFound(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	// Boston is far outside the Sacramento listing's radius.
	rec := doJSON(t, h, http.MethodPost, "/api/resolve", map[string]float64{"lat": 42.36, "lng": -71.06})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolve_EmptyBodyIsBadRequest(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{})

	rec := doJSON(t, h, http.MethodPost, "/api/resolve", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaces_ListAndGet(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace(), orlandoPlace())

	rec := doJSON(t, h, http.MethodGet, "/api/places", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var places []model.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	require.Len(t, places, 2)
	assert.Equal(t, "CHAIHANA-AMIR", places[0].Name)

	rec = doJSON(t, h, http.MethodGet, "/api/places/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p model.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "KEBAB-HOUSE", p.Name)

	rec = doJSON(t, h, http.MethodGet, "/api/places/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaces_Add(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{})

	draft := model.Draft{
		Number:  "70",
		Name:    "SAMARKAND-PLOV",
		City:    "Sacramento, CA",
		MapLink: "https://www.google.com/maps?q=38.60,-121.50",
		Details: "Uzbek plov daily",
		MenuNum: "42",
		Phone:   "+1 916 555 0101",
		Handle:  "@samarkand_plov",
	}
	rec := doJSON(t, h, http.MethodPost, "/api/places", draft)
	require.Equal(t, http.StatusCreated, rec.Code)

	var p model.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "SAMARKAND-PLOV", p.Name)
	assert.InDelta(t, 38.60, p.Lat, 1e-9)
	assert.Contains(t, p.TextChannel, "#️⃣70")
	assert.NotContains(t, p.TextUser, "#️⃣")

	rec = doJSON(t, h, http.MethodGet, "/api/places", nil)
	var places []model.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &places))
	assert.Len(t, places, 1)
}

func TestPlaces_AddIncompleteDraft(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{})

	rec := doJSON(t, h, http.MethodPost, "/api/places", model.Draft{Name: "NO-FIELDS"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEditField_Phone(t *testing.T) {
	h, st := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	rec := doJSON(t, h, http.MethodPatch, "/api/places/1/fields/phone", editFieldRequest{Value: "+1 999 000 1122"})
	require.Equal(t, http.StatusOK, rec.Code)

	var p model.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Contains(t, p.TextUser, "📞 +1 999 000 1122")
	assert.NotContains(t, p.TextUser, "+19167506977")

	// The change is persisted, not just reflected in the response.
	stored, err := st.GetPlace(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, stored.TextChannel, "+1 999 000 1122")
}

func TestEditField_Errors(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	rec := doJSON(t, h, http.MethodPatch, "/api/places/1/fields/nonsense", editFieldRequest{Value: "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/places/99/fields/phone", editFieldRequest{Value: "+1 999"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/places/1/fields/handle", editFieldRequest{Value: "not-a-handle"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/places/1/fields/location_name", editFieldRequest{Value: "West Sac", Index: 5})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSetCoordinates(t *testing.T) {
	h, st := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	rec := doJSON(t, h, http.MethodPatch, "/api/places/1/coordinates", model.Coordinate{Lat: 38.70, Lng: -121.40})
	require.Equal(t, http.StatusNoContent, rec.Code)

	stored, err := st.GetPlace(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 38.70, stored.Lat, 1e-9)

	rec = doJSON(t, h, http.MethodPatch, "/api/places/1/coordinates", model.Coordinate{Lat: 200, Lng: 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeletePlace(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	rec := doJSON(t, h, http.MethodDelete, "/api/places/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/places/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/places/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwap(t *testing.T) {
	h, _ := newTestHandler(t, &stubGeocoder{}, sacramentoPlace(), orlandoPlace())

	rec := doJSON(t, h, http.MethodPost, "/api/places/swap", swapRequest{A: 1, B: 2})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/places/1", nil)
	var p model.Place
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "KEBAB-HOUSE", p.Name)

	rec = doJSON(t, h, http.MethodPost, "/api/places/swap", swapRequest{A: 1, B: 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlacklistRoundTrip(t *testing.T) {
	g := &stubGeocoder{known: map[string]model.Coordinate{
		"sacramento": {Lat: 38.58, Lng: -121.49},
	}}
	h, _ := newTestHandler(t, g, sacramentoPlace())

	rec := doJSON(t, h, http.MethodPost, "/api/blacklist", blacklistRequest{Word: "promo"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/blacklist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var words []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &words))
	assert.Equal(t, []string{"promo"}, words)

	// A blocked word silences resolution even when the text would match.
	rec = doJSON(t, h, http.MethodPost, "/api/resolve", map[string]string{"text": "promo ovqat sacramento"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, "/api/blacklist/promo", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/resolve", map[string]string{"text": "promo ovqat sacramento"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/blacklist", blacklistRequest{Word: "   "})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestConcurrentEditsSerialize(t *testing.T) {
	h, st := newTestHandler(t, &stubGeocoder{}, sacramentoPlace())

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			rec := doJSON(t, h, http.MethodPatch, "/api/places/1/fields/phone", editFieldRequest{Value: "+1 111 222 3344"})
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	stored, err := st.GetPlace(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, stored.TextUser, "📞 +1 111 222 3344")
}
