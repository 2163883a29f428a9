package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v")

	got, found := c.GetValue("k")
	require.True(t, found)
	assert.Equal(t, "v", got)

	_, found = c.GetValue("missing")
	assert.False(t, found)
}

func TestExpiration(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v", 10*time.Millisecond)

	_, found := c.GetValue("k")
	require.True(t, found)

	time.Sleep(20 * time.Millisecond)
	_, found = c.GetValue("k")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)
	c.Set("k", "v")
	c.Delete("k")

	_, found := c.GetValue("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)
	c.Set("products:list", 1)
	c.Set("products:id:abc", 2)
	c.Set("users:list", 3)

	c.DeleteByPrefix("products:")

	assert.Equal(t, 1, c.Size())
	_, found := c.GetValue("users:list")
	assert.True(t, found)
}
