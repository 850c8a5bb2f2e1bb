// Package cache is a small filesystem TTL cache for hot public listings:
// JSON blobs keyed by sha1(key), expiry judged from file mtime. Misses are
// never errors; callers fall through to the database.
package cache

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

type Cache struct {
	dir string
	ttl time.Duration
}

func New(dir string, ttl time.Duration) *Cache {
	_ = os.MkdirAll(dir, 0o755)
	return &Cache{dir: dir, ttl: ttl}
}

func (c *Cache) path(key string) string {
	sum := sha1.Sum([]byte("ncb_" + key))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}

// Get unmarshals the cached value into out and reports whether a fresh
// entry existed.
func (c *Cache) Get(key string, out any) bool {
	p := c.path(key)
	info, err := os.Stat(p)
	if err != nil || time.Since(info.ModTime()) >= c.ttl {
		return false
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// Set writes the value; failures are ignored (the cache is best-effort).
func (c *Cache) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = os.WriteFile(c.path(key), data, 0o644)
}

func (c *Cache) Delete(key string) {
	_ = os.Remove(c.path(key))
}
