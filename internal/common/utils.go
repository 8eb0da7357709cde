package common

import (
	"github.com/google/uuid"
)

// RequestIDHeaderName is the HTTP header carrying a per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"

// NewRequestID returns a fresh random correlation id for outbound requests.
func NewRequestID() string {
	return uuid.NewString()
}

// WipeByteArray overwrites b with zeros. Passwords read from the terminal are
// wiped with it once they have been sent. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
