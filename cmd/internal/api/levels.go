package api

import (
	"errors"
	"net/http"

	"spiritsforest/cmd/internal/levels"
)

func (h *Handler) handleLevels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	all, err := h.levels.All(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	if all == nil {
		all = []levels.Record{}
	}
	writeJSON(w, http.StatusOK, all)
}

func (h *Handler) handleRandomLevel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rec, err := h.levels.Random(r.Context())
	if err != nil {
		if errors.Is(err, levels.ErrNoLevels) {
			// Plain text, matching what the client shows the player.
			http.Error(w, msgLevelNotFound, http.StatusNotFound)
			return
		}
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
