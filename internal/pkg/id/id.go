package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New returns a fresh ULID string for use as an entity id.
// ULIDs sort by creation time, which keeps user rows roughly
// insertion-ordered when scanned.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
