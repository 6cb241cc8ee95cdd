package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"spiritsforest/cmd/internal/levels"
)

func TestListLevels(t *testing.T) {
	env := newTestEnv(t,
		levels.Record{ID: 1, Name: "glade", Layout: json.RawMessage(`{"tiles":[1,2]}`)},
		levels.Record{ID: 2, Name: "hollow", Layout: json.RawMessage(`{"tiles":[3]}`)},
	)
	rec := env.seedUser(t, "alice")

	rr := env.do(t, http.MethodGet, "/api/levels", env.token(t, rec), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got []levels.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].Name != "glade" || got[1].Name != "hollow" {
		t.Fatalf("unexpected levels: %+v", got)
	}
}

func TestListLevelsEmptyIsArray(t *testing.T) {
	env := newTestEnv(t)
	rec := env.seedUser(t, "alice")

	rr := env.do(t, http.MethodGet, "/api/levels", env.token(t, rec), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("body = %q, want []", body)
	}
}

func TestRandomLevel(t *testing.T) {
	env := newTestEnv(t,
		levels.Record{ID: 1, Name: "glade", Layout: json.RawMessage(`{"tiles":[1]}`)},
	)
	rec := env.seedUser(t, "alice")

	rr := env.do(t, http.MethodGet, "/api/levels/random", env.token(t, rec), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got levels.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != "glade" {
		t.Fatalf("level = %+v, want glade", got)
	}
}

func TestRandomLevelNoneLoaded(t *testing.T) {
	env := newTestEnv(t)
	rec := env.seedUser(t, "alice")

	rr := env.do(t, http.MethodGet, "/api/levels/random", env.token(t, rec), "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if body := strings.TrimSpace(rr.Body.String()); body != "Level not found." {
		t.Fatalf("body = %q, want %q", body, "Level not found.")
	}
}
