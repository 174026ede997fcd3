package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myhalal/directory/internal/model"
	"github.com/myhalal/directory/internal/store"
)

// fakeStore serves a fixed set of places; only the read methods matter here.
type fakeStore struct {
	store.Store

	mu      sync.Mutex
	places  map[int64]model.Place
	listErr error
}

func newFakeStore(places ...model.Place) *fakeStore {
	f := &fakeStore{places: make(map[int64]model.Place)}
	for _, p := range places {
		f.places[p.ID] = p
	}
	return f
}

func (f *fakeStore) ListPlaces(_ context.Context) ([]model.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Place
	for id := int64(0); id < 1000; id++ {
		if p, ok := f.places[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeStore) GetPlace(_ context.Context, id int64) (*model.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.places[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (f *fakeStore) set(p model.Place) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.places[p.ID] = p
}

func (f *fakeStore) remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.places, id)
}

func place(id int64, name string) model.Place {
	return model.Place{ID: id, Name: name, Lat: 40.0, Lng: -75.0}
}

func TestCache_Reload(t *testing.T) {
	fs := newFakeStore(place(1, "A"), place(2, "B"), place(3, "C"))
	c := New(fs)

	require.NoError(t, c.Reload(context.Background()))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, uint64(1), c.Generation())

	snap := c.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "A", snap[0].Name)
	assert.Equal(t, "C", snap[2].Name)
}

func TestCache_ReloadError(t *testing.T) {
	fs := newFakeStore()
	fs.listErr = eris.New("connection lost")
	c := New(fs)

	err := c.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, uint64(0), c.Generation(), "failed reload must not bump the generation")
}

func TestCache_Get(t *testing.T) {
	fs := newFakeStore(place(7, "SEVEN"))
	c := New(fs)
	require.NoError(t, c.Reload(context.Background()))

	require.NotNil(t, c.Get(7))
	assert.Equal(t, "SEVEN", c.Get(7).Name)
	assert.Nil(t, c.Get(8))
}

func TestCache_RefreshOne_Update(t *testing.T) {
	fs := newFakeStore(place(1, "OLD"))
	c := New(fs)
	require.NoError(t, c.Reload(context.Background()))

	fs.set(place(1, "NEW"))
	require.NoError(t, c.RefreshOne(context.Background(), 1))

	assert.Equal(t, "NEW", c.Get(1).Name)
	assert.Equal(t, uint64(2), c.Generation())
}

func TestCache_RefreshOne_Insert(t *testing.T) {
	fs := newFakeStore(place(1, "A"))
	c := New(fs)
	require.NoError(t, c.Reload(context.Background()))

	fs.set(place(2, "B"))
	require.NoError(t, c.RefreshOne(context.Background(), 2))

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "B", snap[1].Name, "new entries append to the order")
}

func TestCache_RefreshOne_Deleted(t *testing.T) {
	fs := newFakeStore(place(1, "A"), place(2, "B"))
	c := New(fs)
	require.NoError(t, c.Reload(context.Background()))

	fs.remove(1)
	require.NoError(t, c.RefreshOne(context.Background(), 1))

	assert.Nil(t, c.Get(1))
	snap := c.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "B", snap[0].Name)
}

func TestCache_ConcurrentReaders(t *testing.T) {
	fs := newFakeStore(place(1, "A"), place(2, "B"))
	c := New(fs)
	require.NoError(t, c.Reload(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = c.Snapshot()
				_ = c.Get(1)
				_ = c.Generation()
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = c.Reload(context.Background())
				_ = c.RefreshOne(context.Background(), 2)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, c.Len())
}
