package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhalal/directory/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func testPlace(name string, lat, lng float64) model.Place {
	return model.Place{
		Name:        name,
		Lat:         lat,
		Lng:         lng,
		TextUser:    "🍽️ <b>" + name + "</b>\nuser text",
		TextChannel: "#️⃣1\n🍽️ <b>" + name + "</b>\nchannel text",
	}
}

func TestSQLite_InsertAndGetPlace(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	inserted, err := st.InsertPlace(ctx, testPlace("CHAIHANA-TEST", 38.61, -121.53))
	require.NoError(t, err)
	assert.Greater(t, inserted.ID, int64(0))

	got, err := st.GetPlace(ctx, inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "CHAIHANA-TEST", got.Name)
	assert.InDelta(t, 38.61, got.Lat, 1e-9)
	assert.Equal(t, inserted.TextChannel, got.TextChannel)
}

func TestSQLite_GetPlace_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)
	_, err := st.GetPlace(context.Background(), 12345)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestSQLite_ListPlaces_OrderedByID(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, name := range []string{"FIRST", "SECOND", "THIRD"} {
		_, err := st.InsertPlace(ctx, testPlace(name, 40.0, -75.0))
		require.NoError(t, err)
	}

	places, err := st.ListPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 3)
	assert.Equal(t, "FIRST", places[0].Name)
	assert.Equal(t, "THIRD", places[2].Name)
}

func TestSQLite_UpdatePlaceField(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	p, err := st.InsertPlace(ctx, testPlace("BEFORE", 40.0, -75.0))
	require.NoError(t, err)

	require.NoError(t, st.UpdatePlaceField(ctx, p.ID, "name", "AFTER"))
	require.NoError(t, st.UpdatePlaceField(ctx, p.ID, "lat", 41.5))

	got, err := st.GetPlace(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "AFTER", got.Name)
	assert.InDelta(t, 41.5, got.Lat, 1e-9)
}

func TestSQLite_UpdatePlaceField_Disallowed(t *testing.T) {
	st := newTestSQLiteStore(t)
	err := st.UpdatePlaceField(context.Background(), 1, "id", 9)
	assert.True(t, eris.Is(err, ErrFieldNotAllowed))
}

func TestSQLite_DeletePlace(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	p, err := st.InsertPlace(ctx, testPlace("GONE", 40.0, -75.0))
	require.NoError(t, err)

	require.NoError(t, st.DeletePlace(ctx, p.ID))
	_, err = st.GetPlace(ctx, p.ID)
	assert.True(t, eris.Is(err, ErrNotFound))

	assert.True(t, eris.Is(st.DeletePlace(ctx, p.ID), ErrNotFound))
}

func TestSQLite_SwapPlaces(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	a, err := st.InsertPlace(ctx, testPlace("ALPHA", 10.0, 20.0))
	require.NoError(t, err)
	b, err := st.InsertPlace(ctx, testPlace("BRAVO", 30.0, 40.0))
	require.NoError(t, err)

	require.NoError(t, st.SwapPlaces(ctx, a.ID, b.ID))

	gotA, err := st.GetPlace(ctx, a.ID)
	require.NoError(t, err)
	gotB, err := st.GetPlace(ctx, b.ID)
	require.NoError(t, err)

	assert.Equal(t, "BRAVO", gotA.Name)
	assert.InDelta(t, 30.0, gotA.Lat, 1e-9)
	assert.Contains(t, gotA.TextUser, "BRAVO")
	assert.Equal(t, "ALPHA", gotB.Name)
	assert.InDelta(t, 10.0, gotB.Lat, 1e-9)
}

func TestSQLite_SwapPlaces_MissingRow(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	a, err := st.InsertPlace(ctx, testPlace("ONLY", 10.0, 20.0))
	require.NoError(t, err)

	err = st.SwapPlaces(ctx, a.ID, a.ID+100)
	assert.True(t, eris.Is(err, ErrNotFound))

	// The surviving row is untouched.
	got, err := st.GetPlace(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "ONLY", got.Name)
}

func TestSQLite_Blacklist(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, st.AddBlacklistWord(ctx, "Реклама"))
	require.NoError(t, st.AddBlacklistWord(ctx, "spam"))
	// Duplicate is a no-op.
	require.NoError(t, st.AddBlacklistWord(ctx, "SPAM"))

	words, err := st.ListBlacklist(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"spam", "реклама"}, words)

	require.NoError(t, st.RemoveBlacklistWord(ctx, "spam"))
	assert.True(t, eris.Is(st.RemoveBlacklistWord(ctx, "spam"), ErrNotFound))
}

func TestSQLite_EnsureSeeded(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	seeded, err := st.EnsureSeeded(ctx, SeedPlaces)
	require.NoError(t, err)
	assert.True(t, seeded)

	places, err := st.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Len(t, places, len(SeedPlaces))

	// Second run is a no-op.
	seeded, err = st.EnsureSeeded(ctx, SeedPlaces)
	require.NoError(t, err)
	assert.False(t, seeded)
}
