package users

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStore_InsertAndFind(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	r, err := s.Insert(ctx, "alice", "hash-1")
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if r.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := s.FindByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if got != r {
		t.Fatalf("got=%+v want=%+v", got, r)
	}

	// Lookups are case-sensitive.
	if _, err := s.FindByUsername(ctx, "Alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for different case, got %v", err)
	}
}

func TestMemoryStore_InsertDuplicate(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Insert(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := s.Insert(ctx, "alice", "hash-2"); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	taken, err := s.UsernameTaken(ctx, "alice")
	if err != nil || !taken {
		t.Fatalf("UsernameTaken=%v,%v want true,nil", taken, err)
	}
}

func TestMemoryStore_UpdatePartial(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Insert(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	score := int64(42)
	updated, err := s.Update(ctx, "alice", Changes{Score: &score})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Score != 42 || updated.Username != "alice" || updated.PasswordHash != "hash-1" {
		t.Fatalf("unexpected record after partial update: %+v", updated)
	}

	name := "alicia"
	save := "level-3"
	updated, err = s.Update(ctx, "alice", Changes{Username: &name, Savegame: &save})
	if err != nil {
		t.Fatalf("Update rename: %v", err)
	}
	if updated.Username != "alicia" || updated.Savegame != "level-3" || updated.Score != 42 {
		t.Fatalf("unexpected record after rename: %+v", updated)
	}

	if _, err := s.FindByUsername(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("old username must be gone, got %v", err)
	}
}

func TestMemoryStore_UpdateConflictsAndMissing(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Insert(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := s.Insert(ctx, "bob", "hash-2"); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	name := "bob"
	if _, err := s.Update(ctx, "alice", Changes{Username: &name}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	score := int64(1)
	if _, err := s.Update(ctx, "nobody", Changes{Score: &score}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Insert(ctx, "alice", "hash-1"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Delete(ctx, "alice"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
