package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/myhalal/directory/internal/model"
)

// ErrNotFound is returned when a place or blacklist word does not exist.
var ErrNotFound = eris.New("store: not found")

// ErrFieldNotAllowed is returned by UpdatePlaceField for a column outside
// the allow-list.
var ErrFieldNotAllowed = eris.New("store: field not allowed")

// allowedPlaceFields is the set of columns UpdatePlaceField may touch.
// Field names are interpolated into SQL, so membership here is mandatory.
var allowedPlaceFields = map[string]bool{
	"name":         true,
	"lat":          true,
	"lng":          true,
	"text_user":    true,
	"text_channel": true,
}

// Store defines the persistence interface for the directory catalog.
type Store interface {
	// Places
	ListPlaces(ctx context.Context) ([]model.Place, error)
	GetPlace(ctx context.Context, id int64) (*model.Place, error)
	InsertPlace(ctx context.Context, p model.Place) (*model.Place, error)
	UpdatePlaceField(ctx context.Context, id int64, field string, value any) error
	DeletePlace(ctx context.Context, id int64) error
	// SwapPlaces exchanges the full content of two rows (name, coordinates
	// and both texts) in a single transaction; only the ids stay put.
	SwapPlaces(ctx context.Context, idA, idB int64) error

	// Blacklist
	ListBlacklist(ctx context.Context) ([]string, error)
	AddBlacklistWord(ctx context.Context, word string) error
	RemoveBlacklistWord(ctx context.Context, word string) error

	// Lifecycle
	// EnsureSeeded inserts seed rows if and only if the places table is
	// empty. The existence check and the inserts share one transaction.
	EnsureSeeded(ctx context.Context, seed []model.Place) (bool, error)
	Migrate(ctx context.Context) error
	Close() error
}
