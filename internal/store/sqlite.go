package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/myhalal/directory/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite. It backs local
// and single-node deployments; the schema mirrors the Postgres one.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS places (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	name         TEXT NOT NULL,
	lat          REAL NOT NULL,
	lng          REAL NOT NULL,
	text_user    TEXT NOT NULL DEFAULT '',
	text_channel TEXT NOT NULL DEFAULT '',
	created_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_places_name ON places(name);

CREATE TABLE IF NOT EXISTS blacklist (
	word       TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ListPlaces(ctx context.Context) ([]model.Place, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, lat, lng, text_user, text_channel FROM places ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list places")
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.TextUser, &p.TextChannel); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan place")
		}
		places = append(places, p)
	}
	return places, eris.Wrap(rows.Err(), "sqlite: list places")
}

func (s *SQLiteStore) GetPlace(ctx context.Context, id int64) (*model.Place, error) {
	var p model.Place
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, lat, lng, text_user, text_channel FROM places WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.TextUser, &p.TextChannel)
	if eris.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get place %d", id)
	}
	return &p, nil
}

func (s *SQLiteStore) InsertPlace(ctx context.Context, p model.Place) (*model.Place, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO places (name, lat, lng, text_user, text_channel, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Lat, p.Lng, p.TextUser, p.TextChannel, now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert place")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert place id")
	}
	p.ID = id
	return &p, nil
}

func (s *SQLiteStore) UpdatePlaceField(ctx context.Context, id int64, field string, value any) error {
	if !allowedPlaceFields[field] {
		return eris.Wrapf(ErrFieldNotAllowed, "%q", field)
	}
	query := fmt.Sprintf(`UPDATE places SET %s = ?, updated_at = ? WHERE id = ?`, field)
	res, err := s.db.ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update place %d field %s", id, field)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) DeletePlace(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM places WHERE id = ?`, id)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete place %d", id)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) SwapPlaces(ctx context.Context, idA, idB int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin swap")
	}
	defer tx.Rollback() //nolint:errcheck

	var a, b model.Place
	const sel = `SELECT id, name, lat, lng, text_user, text_channel FROM places WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, idA).Scan(&a.ID, &a.Name, &a.Lat, &a.Lng, &a.TextUser, &a.TextChannel); err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return eris.Wrapf(err, "sqlite: swap select %d", idA)
	}
	if err := tx.QueryRowContext(ctx, sel, idB).Scan(&b.ID, &b.Name, &b.Lat, &b.Lng, &b.TextUser, &b.TextChannel); err != nil {
		if eris.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return eris.Wrapf(err, "sqlite: swap select %d", idB)
	}

	const upd = `UPDATE places SET name = ?, lat = ?, lng = ?, text_user = ?, text_channel = ?, updated_at = ? WHERE id = ?`
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx, upd, b.Name, b.Lat, b.Lng, b.TextUser, b.TextChannel, now, idA); err != nil {
		return eris.Wrapf(err, "sqlite: swap update %d", idA)
	}
	if _, err := tx.ExecContext(ctx, upd, a.Name, a.Lat, a.Lng, a.TextUser, a.TextChannel, now, idB); err != nil {
		return eris.Wrapf(err, "sqlite: swap update %d", idB)
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit swap")
}

func (s *SQLiteStore) ListBlacklist(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM blacklist ORDER BY word`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list blacklist")
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan blacklist word")
		}
		words = append(words, w)
	}
	return words, eris.Wrap(rows.Err(), "sqlite: list blacklist")
}

func (s *SQLiteStore) AddBlacklistWord(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return eris.New("sqlite: empty blacklist word")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blacklist (word) VALUES (?) ON CONFLICT (word) DO NOTHING`, word)
	return eris.Wrapf(err, "sqlite: add blacklist word %q", word)
}

func (s *SQLiteStore) RemoveBlacklistWord(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	res, err := s.db.ExecContext(ctx, `DELETE FROM blacklist WHERE word = ?`, word)
	if err != nil {
		return eris.Wrapf(err, "sqlite: remove blacklist word %q", word)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) EnsureSeeded(ctx context.Context, seed []model.Place) (bool, error) {
	if len(seed) == 0 {
		return false, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, eris.Wrap(err, "sqlite: begin seed")
	}
	defer tx.Rollback() //nolint:errcheck

	var count int64
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM places`).Scan(&count); err != nil {
		return false, eris.Wrap(err, "sqlite: seed count")
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	const ins = `INSERT INTO places (name, lat, lng, text_user, text_channel, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for _, p := range seed {
		if _, err := tx.ExecContext(ctx, ins, p.Name, p.Lat, p.Lng, p.TextUser, p.TextChannel, now, now); err != nil {
			return false, eris.Wrapf(err, "sqlite: seed insert %q", p.Name)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, eris.Wrap(err, "sqlite: commit seed")
	}
	return true, nil
}

func checkRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
