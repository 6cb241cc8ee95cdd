package api

import (
	"errors"
	"fmt"
	"net/http"

	"spiritsforest/cmd/internal/users"
)

// handleLogin exchanges username/pass for a bearer token. Every failure
// short of a storage fault answers 400 with the same credentials
// message so the response does not leak which half was wrong.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := decodeJSON(r, h.cfg.MaxBodyBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgBadCredentials)
		return
	}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"username", req.Username},
		{"pass", req.Pass},
	} {
		if field.value == nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field.name))
			return
		}
	}

	rec, err := h.users.FindByUsername(r.Context(), *req.Username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			writeError(w, http.StatusBadRequest, msgBadCredentials)
			return
		}
		h.serverError(w, r, err)
		return
	}
	if !h.hasher.Verify(*req.Pass, rec.PasswordHash) {
		writeError(w, http.StatusBadRequest, msgBadCredentials)
		return
	}

	token, err := h.issuer.Issue(rec.Username, rec.ID)
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}
