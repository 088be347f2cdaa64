// Package ulid mints the identifiers that tag report runs and HTTP
// requests.
package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID returns a fresh ULID string. A package variable so tests can pin
// identifiers.
var NewULID = func() string {
	return ulid.Make().String()
}
