package users

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used when no database is configured
// (dev mode) and by handler tests. Not for production data.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]Record
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byName: make(map[string]Record)}
}

// Seed inserts records verbatim, keeping their ids. Test helper.
func (s *MemoryStore) Seed(records ...Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range records {
		s.byName[r.Username] = r
		if r.ID >= s.nextID {
			s.nextID = r.ID
		}
	}
}

func (s *MemoryStore) FindByUsername(ctx context.Context, username string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byName[username]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) UsernameTaken(ctx context.Context, username string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.byName[username]
	return ok, nil
}

func (s *MemoryStore) Insert(ctx context.Context, username, passwordHash string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; ok {
		return Record{}, ErrUsernameTaken
	}

	s.nextID++
	r := Record{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.byName[username] = r
	return r, nil
}

func (s *MemoryStore) Update(ctx context.Context, username string, ch Changes) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.byName[username]
	if !ok {
		return Record{}, ErrNotFound
	}

	if ch.Username != nil && *ch.Username != username {
		if _, taken := s.byName[*ch.Username]; taken {
			return Record{}, ErrUsernameTaken
		}
		delete(s.byName, username)
		r.Username = *ch.Username
	}
	if ch.PasswordHash != nil {
		r.PasswordHash = *ch.PasswordHash
	}
	if ch.Score != nil {
		r.Score = *ch.Score
	}
	if ch.Savegame != nil {
		r.Savegame = *ch.Savegame
	}

	s.byName[r.Username] = r
	return r, nil
}

func (s *MemoryStore) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[username]; !ok {
		return ErrNotFound
	}
	delete(s.byName, username)
	return nil
}
