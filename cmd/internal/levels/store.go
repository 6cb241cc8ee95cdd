package levels

import (
	"context"
	"encoding/json"
	"errors"
)

// Record is a stored level row. Layout is the authored level payload,
// kept opaque to the server.
type Record struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Layout json.RawMessage `json:"layout"`
}

// ErrNoLevels is returned by Random when the table is empty.
var ErrNoLevels = errors.New("no levels available")

// Store is the level-data read boundary.
type Store interface {
	// All returns every level. An empty table yields an empty slice,
	// not an error.
	All(ctx context.Context) ([]Record, error)

	// Random picks one level pseudo-randomly, or ErrNoLevels.
	Random(ctx context.Context) (Record, error)
}
