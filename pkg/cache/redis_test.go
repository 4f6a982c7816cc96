package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPost struct {
	Slug  string   `json:"slug"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

func newTestCache(t *testing.T) (*JSONCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewJSONCache(client, "cms:"), mr
}

func TestJSONCache_SetGet(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	in := cachedPost{Slug: "hello-world", Title: "Hello", Tags: []string{"go"}}
	require.NoError(t, c.Set(ctx, "full:post:hello-world", in, time.Minute))

	assert.True(t, mr.Exists("cms:full:post:hello-world"))

	var out cachedPost
	found, err := c.Get(ctx, "full:post:hello-world", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestJSONCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	var out cachedPost
	found, err := c.Get(context.Background(), "missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", cachedPost{Slug: "k"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var out cachedPost
	found, err := c.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJSONCache_Delete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", cachedPost{Slug: "a"}, time.Minute))
	require.NoError(t, c.Set(ctx, "b", cachedPost{Slug: "b"}, time.Minute))

	require.NoError(t, c.Delete(ctx, "a", "b", "never-set"))
	assert.False(t, mr.Exists("cms:a"))
	assert.False(t, mr.Exists("cms:b"))

	assert.NoError(t, c.Delete(ctx))
}

func TestJSONCache_CorruptValue(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("cms:bad", "{not json"))

	var out cachedPost
	found, err := c.Get(context.Background(), "bad", &out)
	assert.Error(t, err)
	assert.False(t, found)
}
