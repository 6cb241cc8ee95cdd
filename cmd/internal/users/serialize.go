package users

import "html"

// Serialized is the client-facing projection of a Record. It never
// carries the password hash or any `pass` field.
type Serialized struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
	Savegame string `json:"savegame"`
}

// Serialize projects a Record for API responses. User-controlled text
// fields are HTML-escaped on the way out so a stored payload cannot be
// replayed into a browser as markup.
func Serialize(r Record) Serialized {
	return Serialized{
		ID:       r.ID,
		Username: html.EscapeString(r.Username),
		Score:    r.Score,
		Savegame: html.EscapeString(r.Savegame),
	}
}
