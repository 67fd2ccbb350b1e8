package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetTyped(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("price", 12.5, time.Minute)
	c.Set("name", "Blockchain Index", time.Minute)

	price, ok := GetTyped[float64](c, "price")
	assert.True(t, ok)
	assert.Equal(t, 12.5, price)

	_, ok = GetTyped[float64](c, "name")
	assert.False(t, ok, "wrong type is a miss")

	_, ok = GetTyped[string](c, "missing")
	assert.False(t, ok)
}

func TestCache_Expiration(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	c.Set("short", 1, time.Millisecond)

	time.Sleep(5 * time.Millisecond)

	_, ok := c.Get("short")
	assert.False(t, ok)
}
