package common

import (
	"crypto/rand"
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// NewID returns a fresh random identifier for stored records.
// Format: Base58(8 random bytes), short enough to be readable in the admin
// panel while unique enough for a single campus.
func NewID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base58.Encode(buf)
}

// NewSessionID returns a fresh session identifier.
// Format: Base58(SHA256(32 random bytes)), same shape as an API token so the
// value carries no structure worth guessing.
func NewSessionID() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	hash := sha256.Sum256(buf)
	return base58.Encode(hash[:])
}
