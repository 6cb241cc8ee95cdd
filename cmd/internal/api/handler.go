package api

import (
	"errors"
	"log/slog"
	"net/http"

	"spiritsforest/cmd/internal/auth"
	"spiritsforest/cmd/internal/levels"
	"spiritsforest/cmd/internal/users"
	"spiritsforest/cmd/security/password"
)

// Wire messages the game client matches on verbatim.
const (
	msgMissingToken   = "Missing bearer token"
	msgUnauthorized   = "Unauthorized request"
	msgBadCredentials = "Incorrect username or password"
	msgUsernameTaken  = "Username already taken"
	msgEmptyBody      = "Request body must contain data"
	msgScoreNotNumber = "score must be a number"
	msgServerError    = "Internal server error"
	msgLevelNotFound  = "Level not found."
)

// Handler owns the /api routes.
type Handler struct {
	log    *slog.Logger
	users  users.Store
	levels levels.Store
	issuer *auth.Issuer
	gate   *auth.Gate
	hasher *password.Hasher
	cfg    Config
}

func NewHandler(log *slog.Logger, us users.Store, ls levels.Store, issuer *auth.Issuer, gate *auth.Gate, hasher *password.Hasher, cfg Config) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{
		log:    log,
		users:  us,
		levels: ls,
		issuer: issuer,
		gate:   gate,
		hasher: hasher,
		cfg:    cfg,
	}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/login", h.handleLogin)
	mux.HandleFunc("/api/users", h.handleUsers)
	mux.HandleFunc("/api/levels", h.requireAuth(h.handleLevels))
	mux.HandleFunc("/api/levels/random", h.requireAuth(h.handleRandomLevel))
}

// requireAuth resolves the bearer token to a stored user before calling
// next. Failures map to the two fixed 401 messages so callers cannot
// distinguish a bad token from a deleted account.
func (h *Handler) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := h.gate.Authenticate(r)
		switch {
		case err == nil:
			next(w, r.WithContext(auth.WithIdentity(r.Context(), rec)))
		case errors.Is(err, auth.ErrMissingToken):
			writeError(w, http.StatusUnauthorized, msgMissingToken)
		case errors.Is(err, auth.ErrInvalidToken):
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
		default:
			h.serverError(w, r, err)
		}
	}
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, msgServerError)
}
