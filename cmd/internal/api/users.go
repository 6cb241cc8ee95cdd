package api

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"

	"spiritsforest/cmd/internal/auth"
	"spiritsforest/cmd/internal/users"
	"spiritsforest/cmd/security/password"
)

func (h *Handler) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.handleRegister(w, r)
	case http.MethodGet:
		h.requireAuth(h.handleGetUser)(w, r)
	case http.MethodPatch:
		h.requireAuth(h.handlePatchUser)(w, r)
	case http.MethodDelete:
		h.requireAuth(h.handleDeleteUser)(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PATCH, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgEmptyBody)
		return
	}
	for _, field := range []struct {
		name, value string
	}{
		{"username", req.Username},
		{"pass", req.Pass},
	} {
		if field.value == "" {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field.name))
			return
		}
	}
	if err := password.Validate(req.Pass); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	taken, err := h.users.UsernameTaken(r.Context(), req.Username)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if taken {
		writeError(w, http.StatusBadRequest, msgUsernameTaken)
		return
	}

	hash, err := h.hasher.Hash(req.Pass)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	rec, err := h.users.Insert(r.Context(), req.Username, hash)
	if err != nil {
		// Two registrations can race past the taken check; the unique
		// constraint settles it.
		if errors.Is(err, users.ErrUsernameTaken) {
			writeError(w, http.StatusBadRequest, msgUsernameTaken)
			return
		}
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Location", path.Join(r.URL.Path, strconv.FormatInt(rec.ID, 10)))
	writeJSON(w, http.StatusCreated, users.Serialize(rec))
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	rec, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, users.Serialize(rec))
}

func (h *Handler) handlePatchUser(w http.ResponseWriter, r *http.Request) {
	rec, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req patchRequest
	if err := decodeJSON(r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgEmptyBody)
		return
	}
	score, scoreSet, scoreErr := scoreFromBody(req.Score)
	if req.Username == "" && req.Pass == "" && req.Savegame == "" && !scoreSet {
		writeError(w, http.StatusBadRequest, msgEmptyBody)
		return
	}

	var changes users.Changes
	if req.Username != "" {
		taken, err := h.users.UsernameTaken(r.Context(), req.Username)
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		if taken {
			writeError(w, http.StatusBadRequest, msgUsernameTaken)
			return
		}
		changes.Username = &req.Username
	}
	if scoreSet {
		if scoreErr != nil {
			writeError(w, http.StatusBadRequest, msgScoreNotNumber)
			return
		}
		changes.Score = &score
	}
	if req.Pass != "" {
		if err := password.Validate(req.Pass); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		hash, err := h.hasher.Hash(req.Pass)
		if err != nil {
			h.serverError(w, r, err)
			return
		}
		changes.PasswordHash = &hash
	}
	if req.Savegame != "" {
		changes.Savegame = &req.Savegame
	}

	updated, err := h.users.Update(r.Context(), rec.Username, changes)
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			writeError(w, http.StatusBadRequest, msgUsernameTaken)
			return
		}
		h.serverError(w, r, err)
		return
	}

	// A renamed account needs a token matching its new identity, and
	// the client replaces its stored token either way.
	token, err := h.issuer.Issue(updated.Username, updated.ID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	rec, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	if err := h.users.Delete(r.Context(), rec.Username); err != nil && !errors.Is(err, users.ErrNotFound) {
		h.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// scoreFromBody applies the client convention that an absent, zero, or
// empty score means "leave it alone". Numbers are truncated toward zero
// and numeric strings are accepted; anything else is an error.
func scoreFromBody(v any) (score int64, set bool, err error) {
	switch val := v.(type) {
	case nil:
		return 0, false, nil
	case float64:
		if val == 0 {
			return 0, false, nil
		}
		return int64(val), true, nil
	case string:
		if val == "" {
			return 0, false, nil
		}
		f, perr := strconv.ParseFloat(val, 64)
		if perr != nil {
			return 0, true, perr
		}
		return int64(f), true, nil
	default:
		return 0, true, fmt.Errorf("score has type %T", v)
	}
}
