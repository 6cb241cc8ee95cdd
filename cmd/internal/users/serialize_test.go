package users

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSerialize_OmitsPasswordHash(t *testing.T) {
	t.Parallel()

	r := Record{
		ID:           7,
		Username:     "alice",
		PasswordHash: "$2a$10$secret-hash",
		Score:        10,
		Savegame:     "forest-2",
	}

	body, err := json.Marshal(Serialize(r))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	s := string(body)
	if strings.Contains(s, "pass") || strings.Contains(s, "secret-hash") {
		t.Fatalf("serialized user leaks credentials: %s", s)
	}
	if !strings.Contains(s, `"username":"alice"`) || !strings.Contains(s, `"id":7`) {
		t.Fatalf("unexpected serialization: %s", s)
	}
}

func TestSerialize_EscapesMarkup(t *testing.T) {
	t.Parallel()

	got := Serialize(Record{
		Username: `<script>alert("u")</script>`,
		Savegame: `<img src=x>`,
	})

	if strings.ContainsAny(got.Username, "<>") || strings.ContainsAny(got.Savegame, "<>") {
		t.Fatalf("markup not escaped: %+v", got)
	}
}
