package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"joino/models"

	"github.com/go-redis/redis/v8"
)

const (
	pageKeyPrefix     = "feed:page:"
	rotationKeyPrefix = "feed:rotation:"
	tagsKey           = "feed:tags"

	pageTTL = 5 * time.Minute
	tagsTTL = time.Hour
)

// Cache fronts the feed computation with Redis. It also owns the per-user
// rotation counter, which has to survive across refresh calls (the client
// no longer keeps it). Every method degrades gracefully: a cache miss or
// Redis error means recompute, never a failed feed.
//
// Pages and rotation counters live on the dedicated feed DB; the tags
// list, shared across users, lives on the generic cache DB.
type Cache struct {
	client *redis.Client
	tags   *redis.Client
}

func NewCache(client, tagsClient *redis.Client) *Cache {
	return &Cache{client: client, tags: tagsClient}
}

func pageKey(userID string, filter models.FeedFilter, rotation int) string {
	view := "all"
	switch {
	case filter.NearMe:
		view = "near_me"
	case filter.Tag != "":
		view = "tag:" + filter.Tag
	}
	if filter.Search != "" {
		view += ":q:" + filter.Search
	}
	return fmt.Sprintf("%s%s:%s:%d", pageKeyPrefix, userID, view, rotation)
}

// Rotation returns the user's rotation counter, incrementing it first when
// bump is set (one bump per user-initiated refresh).
func (c *Cache) Rotation(ctx context.Context, userID string, bump bool) (int, error) {
	key := rotationKeyPrefix + userID
	if bump {
		n, err := c.client.Incr(ctx, key).Result()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	}
	n, err := c.client.Get(ctx, key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (c *Cache) GetPage(ctx context.Context, userID string, filter models.FeedFilter, rotation int) (*FeedPage, bool) {
	data, err := c.client.Get(ctx, pageKey(userID, filter, rotation)).Bytes()
	if err != nil {
		return nil, false
	}
	var page FeedPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (c *Cache) SetPage(ctx context.Context, userID string, filter models.FeedFilter, rotation int, page *FeedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageKey(userID, filter, rotation), data, pageTTL).Err()
}

func (c *Cache) GetTags(ctx context.Context) ([]string, bool) {
	if c.tags == nil {
		return nil, false
	}
	data, err := c.tags.Get(ctx, tagsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, false
	}
	return tags, true
}

func (c *Cache) SetTags(ctx context.Context, tags []string) error {
	if c.tags == nil {
		return nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return err
	}
	return c.tags.Set(ctx, tagsKey, data, tagsTTL).Err()
}

// InvalidateUser drops the cached pages for one user, used by the warm
// worker before recomputing.
func (c *Cache) InvalidateUser(ctx context.Context, userID string) error {
	keys, err := c.client.Keys(ctx, pageKeyPrefix+userID+":*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
