package middleware

import (
	"crypto/rand"
)

type Middleware struct {
	csrfKey        []byte
	trustedOrigins []string
}

// NewMiddleware creates the console middleware with a random CSRF key.
// Requests from trustedOrigins pass the CSRF origin check.
func NewMiddleware(trustedOrigins ...string) *Middleware {
	csrfKey := make([]byte, 32)
	n, err := rand.Read(csrfKey)
	if err != nil {
		panic(err)
	}
	if n != 32 {
		panic("unable to read 32 bytes for CSRF key")
	}

	return &Middleware{
		csrfKey:        csrfKey,
		trustedOrigins: trustedOrigins,
	}
}
