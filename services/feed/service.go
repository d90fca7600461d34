package feed

import (
	"context"
	"fmt"
	"time"

	eventRepo "joino/database/repository/event"
	userRepo "joino/database/repository/user"
	"joino/models"
	"joino/utils"

	"go.uber.org/zap"
)

// BuildFeed runs the whole pipeline on an already-fetched pool: expand
// recurring events, deduplicate, rank the primary list for the filter,
// derive candidate shelves from the remainder, and mix. Pure with respect
// to its inputs; identical arguments produce identical output.
func BuildFeed(events []models.Event, profile *models.User, filter models.FeedFilter, rotation int, now models.Date) []models.FeedItem {
	pool := Dedupe(expandAll(events, now))
	primary := Rank(pool, profile, filter)

	primaryIDs := make(map[string]bool, len(primary))
	for i := range primary {
		primaryIDs[primary[i].ID] = true
	}

	candidates := BuildCandidates(pool, profile, primaryIDs)
	items, _ := Mix(primary, candidates, rotation)
	return items
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Today() models.Date {
	return models.DateOf(time.Now().UTC())
}

// DefaultFeedService assembles feeds from the event and user repositories,
// with a Redis-backed cache in front of the full computation.
type DefaultFeedService struct {
	Events eventRepo.EventRepository
	Users  userRepo.UserRepository
	Cache  *Cache
	Clock  Clock
}

func (s *DefaultFeedService) today() models.Date {
	if s.Clock == nil {
		return SystemClock{}.Today()
	}
	return s.Clock.Today()
}

// GetFeed implements FeedService.
func (s *DefaultFeedService) GetFeed(ctx context.Context, userID string, filter models.FeedFilter, refresh bool) (*FeedPage, error) {
	logger := utils.GetLogger()

	profile, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch profile for %s: %w", userID, err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	rotation := 0
	if s.Cache != nil {
		rotation, err = s.Cache.Rotation(ctx, userID, refresh)
		if err != nil {
			// Losing the counter only costs shelf variety.
			logger.Warn("feed: rotation counter unavailable", zap.String("user", userID), zap.Error(err))
			rotation = 0
		}
	}

	if s.Cache != nil && !refresh {
		if page, ok := s.Cache.GetPage(ctx, userID, filter, rotation); ok {
			return page, nil
		}
	}

	now := s.today()
	events, err := s.Events.FetchUpcoming(ctx, now, filter.Search)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}

	pool := Dedupe(expandAll(events, now))
	primary := Rank(pool, profile, filter)

	primaryIDs := make(map[string]bool, len(primary))
	for i := range primary {
		primaryIDs[primary[i].ID] = true
	}
	candidates := BuildCandidates(pool, profile, primaryIDs)
	items, headline := Mix(primary, candidates, rotation)

	page := &FeedPage{Items: items, Headline: headline, Rotation: rotation}
	if s.Cache != nil {
		if err := s.Cache.SetPage(ctx, userID, filter, rotation, page); err != nil {
			logger.Warn("feed: failed to cache page", zap.String("user", userID), zap.Error(err))
		}
	}
	return page, nil
}

// GetOccurrences implements FeedService.
func (s *DefaultFeedService) GetOccurrences(ctx context.Context, eventID string) ([]models.Occurrence, error) {
	event, err := s.Events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", eventID, err)
	}
	if event == nil {
		return nil, nil
	}
	return Expand(*event, s.today()), nil
}

// ListTags implements FeedService.
func (s *DefaultFeedService) ListTags(ctx context.Context) ([]string, error) {
	if s.Cache != nil {
		if tags, ok := s.Cache.GetTags(ctx); ok {
			return tags, nil
		}
	}
	tags, err := s.Events.DistinctTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if s.Cache != nil {
		if err := s.Cache.SetTags(ctx, tags); err != nil {
			utils.GetLogger().Warn("feed: failed to cache tags", zap.Error(err))
		}
	}
	return tags, nil
}
