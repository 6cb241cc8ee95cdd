package api

type loginRequest struct {
	Username *string `json:"username"`
	Pass     *string `json:"pass"`
}

type registerRequest struct {
	Username string `json:"username"`
	Pass     string `json:"pass"`
}

// patchRequest carries the fields an authenticated user may change.
// Score stays untyped so a quoted number is accepted and a non-numeric
// value can answer with the score error instead of a decode failure.
type patchRequest struct {
	Username string `json:"username"`
	Pass     string `json:"pass"`
	Score    any    `json:"score"`
	Savegame string `json:"savegame"`
}

type tokenResponse struct {
	AuthToken string `json:"authToken"`
}
