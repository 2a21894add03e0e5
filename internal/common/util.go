package common

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newRandomUUID is a test seam for uuid.NewRandom.
var newRandomUUID = uuid.NewRandom

// NewID returns a random UUID string. If the random source fails it falls
// back to the current time in milliseconds, which is unique enough for a
// single local user.
func NewID(now time.Time) string {
	id, err := newRandomUUID()
	if err != nil {
		return strconv.FormatInt(now.UnixMilli(), 10)
	}
	return id.String()
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// The result is the uniqueness and lookup key for users.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// WipeByteArray overwrites b with zeros. Used for password buffers read
// from the terminal. Nil is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
