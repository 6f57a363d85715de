package cache

import "time"

// Cache is the key/value contract consumed by the service layer: string
// values with per-entry TTLs, JSON helpers, and glob-pattern bulk deletion.
// Implementations must never let a malformed stored payload reach the
// caller; GetJSON reports it as a miss.
type Cache interface {
	// Get retrieves the raw value for key. The second return value is false
	// when the key is absent or expired.
	Get(key string) (string, bool, error)

	// Set stores value under key with the given TTL.
	Set(key, value string, ttl time.Duration) error

	// GetJSON retrieves and deserializes the value for key into dst.
	// A malformed payload is treated as absent, never as an error.
	GetJSON(key string, dst interface{}) (bool, error)

	// SetJSON serializes value and stores it under key with the given TTL.
	SetJSON(key string, value interface{}, ttl time.Duration) error

	// Delete removes a single key. Deleting an absent key is a no-op.
	Delete(key string) error

	// DeletePattern removes every key matching the glob pattern
	// (path.Match syntax). A pattern matching nothing is a no-op.
	DeletePattern(pattern string) error
}
