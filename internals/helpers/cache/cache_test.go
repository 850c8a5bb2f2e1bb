package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ncb_backend/internals/helpers/cache"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSetGetRoundTrip(t *testing.T) {
	c := cache.New(t.TempDir(), time.Minute)

	c.Set("gallery", payload{Name: "hello", Count: 3})

	var out payload
	require.True(t, c.Get("gallery", &out))
	assert.Equal(t, payload{Name: "hello", Count: 3}, out)
}

func TestMissOnUnknownKey(t *testing.T) {
	c := cache.New(t.TempDir(), time.Minute)

	var out payload
	assert.False(t, c.Get("never-set", &out))
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	c := cache.New(t.TempDir(), 10*time.Millisecond)

	c.Set("short-lived", payload{Name: "gone"})
	time.Sleep(25 * time.Millisecond)

	var out payload
	assert.False(t, c.Get("short-lived", &out))
}

func TestDeleteRemovesEntry(t *testing.T) {
	c := cache.New(t.TempDir(), time.Minute)

	c.Set("k", payload{Name: "v"})
	c.Delete("k")

	var out payload
	assert.False(t, c.Get("k", &out))
}
