package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

const (
	// AuthKeyBytes is the entropy of an auth key in bytes (128 bits)
	AuthKeyBytes = 16
	// DefaultKeyTTL is how long an issued auth key stays valid
	DefaultKeyTTL = 7 * 24 * time.Hour
)

// KeyService issues the opaque bearer keys that identify a user on
// every request after login.
type KeyService struct {
	ttl time.Duration
}

// NewKeyService creates a KeyService with the given key lifetime.
// A zero ttl falls back to the 7-day default.
func NewKeyService(ttl time.Duration) *KeyService {
	if ttl == 0 {
		ttl = DefaultKeyTTL
	}
	return &KeyService{ttl: ttl}
}

// Generate returns a fresh random auth key: 16 bytes from crypto/rand,
// hex encoded to 32 characters.
func (s *KeyService) Generate() (string, error) {
	buf := make([]byte, AuthKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ExpiryFrom returns the expiry timestamp for a key issued at now
func (s *KeyService) ExpiryFrom(now time.Time) time.Time {
	return now.Add(s.ttl)
}

// TTL returns the configured key lifetime
func (s *KeyService) TTL() time.Duration {
	return s.ttl
}
