// Package cache caches fetched directory pages so repeated scrape runs
// (and the inevitable restarts while tuning selectors) don't re-hit the
// site. A small memory layer fronts a disk layer keyed by URL hash.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the page cache contract.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a page URL.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "startupaz:v1:" + hex.EncodeToString(sum[:])
}
