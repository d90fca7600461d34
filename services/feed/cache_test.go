package feed

import (
	"context"
	"testing"
	"time"

	"joino/models"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// unreachableRedis returns a client pointed at a closed port with retries
// disabled, so every call fails fast.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         "127.0.0.1:1",
		DialTimeout:  10 * time.Millisecond,
		ReadTimeout:  10 * time.Millisecond,
		WriteTimeout: 10 * time.Millisecond,
		MaxRetries:   -1,
	})
}

func TestPageKeyDistinguishesViews(t *testing.T) {
	base := pageKey("u1", models.FeedFilter{}, 0)

	require.NotEqual(t, base, pageKey("u1", models.FeedFilter{NearMe: true}, 0))
	require.NotEqual(t, base, pageKey("u1", models.FeedFilter{Tag: "music"}, 0))
	require.NotEqual(t, base, pageKey("u1", models.FeedFilter{Search: "jazz"}, 0))
	require.NotEqual(t, base, pageKey("u1", models.FeedFilter{}, 1))
	require.NotEqual(t, base, pageKey("u2", models.FeedFilter{}, 0))
	require.Equal(t, base, pageKey("u1", models.FeedFilter{}, 0))
}

func TestCacheMethodsFailSoft(t *testing.T) {
	c := NewCache(unreachableRedis(), unreachableRedis())
	ctx := context.Background()

	rotation, err := c.Rotation(ctx, "u1", false)
	require.Error(t, err)
	require.Zero(t, rotation)

	_, ok := c.GetPage(ctx, "u1", models.FeedFilter{}, 0)
	require.False(t, ok)

	require.Error(t, c.SetPage(ctx, "u1", models.FeedFilter{}, 0, &FeedPage{}))

	_, ok = c.GetTags(ctx)
	require.False(t, ok)
	require.Error(t, c.SetTags(ctx, []string{"music"}))
}

func TestCacheWithoutTagsClientMissesQuietly(t *testing.T) {
	c := NewCache(unreachableRedis(), nil)
	ctx := context.Background()

	_, ok := c.GetTags(ctx)
	require.False(t, ok)
	require.NoError(t, c.SetTags(ctx, []string{"music"}))
}
