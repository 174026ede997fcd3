package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/myhalal/directory/internal/db"
	"github.com/myhalal/directory/internal/model"
)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    db.Pool
	closeFn func()
}

// seedLockKey is the advisory lock id serializing catalog seeding.
// Arbitrary value, unique within this database.
const seedLockKey = int64(0x68616c616c5f31)

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the hot-path catalog reads.
var preparedStatements = map[string]string{
	"list_places": `SELECT id, name, lat, lng, text_user, text_channel FROM places ORDER BY id`,
	"get_place":   `SELECT id, name, lat, lng, text_user, text_channel FROM places WHERE id = $1`,
	"insert_place": `INSERT INTO places (name, lat, lng, text_user, text_channel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
	"delete_place":   `DELETE FROM places WHERE id = $1`,
	"list_blacklist": `SELECT word FROM blacklist ORDER BY word`,
	"add_blacklist":  `INSERT INTO blacklist (word) VALUES ($1) ON CONFLICT (word) DO NOTHING`,
	"del_blacklist":  `DELETE FROM blacklist WHERE word = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	// Prepare frequently-used statements on each new connection.
	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

// NewPostgresWithPool wraps an existing pool (tests).
func NewPostgresWithPool(pool db.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, closeFn: pool.Close}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS places (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	lat          DOUBLE PRECISION NOT NULL,
	lng          DOUBLE PRECISION NOT NULL,
	text_user    TEXT NOT NULL DEFAULT '',
	text_channel TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_places_name ON places(name);

CREATE TABLE IF NOT EXISTS blacklist (
	word       TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.pool.Ping(ctx), "postgres: ping")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) ListPlaces(ctx context.Context) ([]model.Place, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, lat, lng, text_user, text_channel FROM places ORDER BY id`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list places")
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		var p model.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.TextUser, &p.TextChannel); err != nil {
			return nil, eris.Wrap(err, "postgres: scan place")
		}
		places = append(places, p)
	}
	return places, eris.Wrap(rows.Err(), "postgres: list places")
}

func (s *PostgresStore) GetPlace(ctx context.Context, id int64) (*model.Place, error) {
	var p model.Place
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, lat, lng, text_user, text_channel FROM places WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Lat, &p.Lng, &p.TextUser, &p.TextChannel)
	if eris.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "postgres: get place %d", id)
	}
	return &p, nil
}

func (s *PostgresStore) InsertPlace(ctx context.Context, p model.Place) (*model.Place, error) {
	now := time.Now().UTC()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO places (name, lat, lng, text_user, text_channel, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`,
		p.Name, p.Lat, p.Lng, p.TextUser, p.TextChannel, now,
	).Scan(&p.ID)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert place")
	}
	return &p, nil
}

func (s *PostgresStore) UpdatePlaceField(ctx context.Context, id int64, field string, value any) error {
	if !allowedPlaceFields[field] {
		return eris.Wrapf(ErrFieldNotAllowed, "%q", field)
	}
	query := fmt.Sprintf(`UPDATE places SET %s = $1, updated_at = $2 WHERE id = $3`, field)
	tag, err := s.pool.Exec(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return eris.Wrapf(err, "postgres: update place %d field %s", id, field)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeletePlace(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete place %d", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) SwapPlaces(ctx context.Context, idA, idB int64) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return eris.Wrap(err, "postgres: begin swap")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var a, b model.Place
	const sel = `SELECT id, name, lat, lng, text_user, text_channel FROM places WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRow(ctx, sel, idA).Scan(&a.ID, &a.Name, &a.Lat, &a.Lng, &a.TextUser, &a.TextChannel); err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return eris.Wrapf(err, "postgres: swap select %d", idA)
	}
	if err := tx.QueryRow(ctx, sel, idB).Scan(&b.ID, &b.Name, &b.Lat, &b.Lng, &b.TextUser, &b.TextChannel); err != nil {
		if eris.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return eris.Wrapf(err, "postgres: swap select %d", idB)
	}

	const upd = `UPDATE places SET name = $1, lat = $2, lng = $3, text_user = $4, text_channel = $5, updated_at = $6 WHERE id = $7`
	now := time.Now().UTC()
	if _, err := tx.Exec(ctx, upd, b.Name, b.Lat, b.Lng, b.TextUser, b.TextChannel, now, idA); err != nil {
		return eris.Wrapf(err, "postgres: swap update %d", idA)
	}
	if _, err := tx.Exec(ctx, upd, a.Name, a.Lat, a.Lng, a.TextUser, a.TextChannel, now, idB); err != nil {
		return eris.Wrapf(err, "postgres: swap update %d", idB)
	}
	return eris.Wrap(tx.Commit(ctx), "postgres: commit swap")
}

func (s *PostgresStore) ListBlacklist(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT word FROM blacklist ORDER BY word`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list blacklist")
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, eris.Wrap(err, "postgres: scan blacklist word")
		}
		words = append(words, w)
	}
	return words, eris.Wrap(rows.Err(), "postgres: list blacklist")
}

func (s *PostgresStore) AddBlacklistWord(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return eris.New("postgres: empty blacklist word")
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO blacklist (word) VALUES ($1) ON CONFLICT (word) DO NOTHING`, word)
	return eris.Wrapf(err, "postgres: add blacklist word %q", word)
}

func (s *PostgresStore) RemoveBlacklistWord(ctx context.Context, word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	tag, err := s.pool.Exec(ctx, `DELETE FROM blacklist WHERE word = $1`, word)
	if err != nil {
		return eris.Wrapf(err, "postgres: remove blacklist word %q", word)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureSeeded bulk-loads the seed rows when the table is empty. An
// advisory lock taken for the transaction serializes the count check and
// the copy, so two concurrent starts cannot both seed.
func (s *PostgresStore) EnsureSeeded(ctx context.Context, seed []model.Place) (bool, error) {
	if len(seed) == 0 {
		return false, nil
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, eris.Wrap(err, "postgres: begin seed")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	// Serialize concurrent seeders: under READ COMMITTED two transactions
	// could otherwise both read count 0 and both copy. The lock is held to
	// the end of the transaction.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return false, eris.Wrap(err, "postgres: seed lock")
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT count(*) FROM places`).Scan(&count); err != nil {
		return false, eris.Wrap(err, "postgres: seed count")
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	rows := make([][]any, 0, len(seed))
	for _, p := range seed {
		rows = append(rows, []any{p.Name, p.Lat, p.Lng, p.TextUser, p.TextChannel, now, now})
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"places"},
		[]string{"name", "lat", "lng", "text_user", "text_channel", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return false, eris.Wrap(err, "postgres: seed copy")
	}
	if err := tx.Commit(ctx); err != nil {
		return false, eris.Wrap(err, "postgres: commit seed")
	}
	return true, nil
}
