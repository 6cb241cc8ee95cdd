package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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
		return nil, fmt.Errorf("users: nil pool")
	}
	return &PostgresStore{pool: pool}, nil
}

const userColumns = `id, username, pass, score, savegame`

func scanRecord(row pgx.Row) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.Username, &r.PasswordHash, &r.Score, &r.Savegame)
	return r, err
}

// FindByUsername returns the record for an exact username match.
func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (Record, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)

	r, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return r, nil
}

// UsernameTaken reports whether a row with this username exists.
func (s *PostgresStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var taken bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&taken)
	if err != nil {
		return false, err
	}
	return taken, nil
}

// Insert creates a new account row.
//
// A unique-constraint violation on username maps to ErrUsernameTaken so
// the registration race (pre-check passed, concurrent insert won) still
// surfaces as a duplicate, not a 500.
func (s *PostgresStore) Insert(ctx context.Context, username, passwordHash string) (Record, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, pass)
		 VALUES ($1, $2)
		 RETURNING `+userColumns,
		username, passwordHash,
	)

	r, err := scanRecord(row)
	if err != nil {
		if isUniqueViolation(err) {
			return Record{}, ErrUsernameTaken
		}
		return Record{}, err
	}
	return r, nil
}

// Update applies the non-nil fields of ch to the row identified by
// username. The hash swap is a single UPDATE, so a password change is
// atomic: readers see either the old hash or the new one, never a
// partial write.
func (s *PostgresStore) Update(ctx context.Context, username string, ch Changes) (Record, error) {
	if ch.IsEmpty() {
		return s.FindByUsername(ctx, username)
	}

	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if ch.Username != nil {
		add("username", *ch.Username)
	}
	if ch.PasswordHash != nil {
		add("pass", *ch.PasswordHash)
	}
	if ch.Score != nil {
		add("score", *ch.Score)
	}
	if ch.Savegame != nil {
		add("savegame", *ch.Savegame)
	}

	args = append(args, username)
	query := fmt.Sprintf(
		`UPDATE users SET %s WHERE username = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), userColumns,
	)

	r, err := scanRecord(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		if isUniqueViolation(err) {
			return Record{}, ErrUsernameTaken
		}
		return Record{}, err
	}
	return r, nil
}

// Delete removes the row identified by username.
func (s *PostgresStore) Delete(ctx context.Context, username string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" // unique_violation
}
