package levels

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store over PostgreSQL.
//
// The pgx pool is owned by the caller; this store must not close it.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs a PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("levels: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

// All returns every level ordered by id.
func (s *PostgresStore) All(ctx context.Context) ([]Record, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, layout FROM level_data ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0, 16)
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Name, &r.Layout); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Random counts the table and picks an id in [1..count]. Level ids are
// contiguous (the table is seeded in bulk and never trimmed), so the
// picked id always resolves.
func (s *PostgresStore) Random(ctx context.Context) (Record, error) {
	var count int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM level_data`).Scan(&count); err != nil {
		return Record{}, err
	}
	if count == 0 {
		return Record{}, ErrNoLevels
	}

	id := rand.Int64N(count) + 1

	var r Record
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, layout FROM level_data WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Name, &r.Layout)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNoLevels
		}
		return Record{}, err
	}
	return r, nil
}
