package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"joino/config"
	userRepo "joino/database/repository/user"
	"joino/models"
	"joino/services/feed"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	// TypeFeedWarmSweep enumerates recently active users and fans out
	// one warm task per user.
	TypeFeedWarmSweep = "feed:warm:sweep"
	// TypeFeedWarm recomputes and caches the feed for one user.
	TypeFeedWarm = "feed:warm"
)

// FeedWarmPayload is the payload of a per-user warm task.
type FeedWarmPayload struct {
	UserID string `json:"userId"`
	RunID  string `json:"runId"`
}

// InitFeedWarmWorker starts the background worker and scheduler that keep
// the feed cache warm for recently active users, so the first pull after
// opening the app is served from Redis instead of a full recompute.
func InitFeedWarmWorker(feedSvc feed.FeedService, users userRepo.UserRepository, cache *feed.Cache) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkQueueDB,
	}

	client := asynq.NewClient(redisOpts)

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFeedWarmSweep, handleWarmSweep(client, users))
	mux.HandleFunc(TypeFeedWarm, handleWarmUser(feedSvc, cache))

	// Start async worker with retry logic
	go func() {
		log.Println("[FeedWarm] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FeedWarm] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FeedWarm] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Schedule the periodic sweep.
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register(config.AppConfig.FeedWarmInterval, asynq.NewTask(TypeFeedWarmSweep, nil)); err != nil {
		log.Printf("[FeedWarm] Failed to register sweep schedule: %v", err)
		return
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[FeedWarm] Scheduler stopped: %v", err)
		}
	}()
}

func handleWarmSweep(client *asynq.Client, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		runID := uuid.NewString()
		since := time.Now().Add(-24 * time.Hour)

		active, err := users.RecentlyActive(ctx, since, config.AppConfig.FeedWarmUserLimit)
		if err != nil {
			log.Printf("[FeedWarm] run %s: failed to list active users: %v", runID, err)
			return err
		}

		for _, u := range active {
			payload, err := json.Marshal(FeedWarmPayload{UserID: u.ID, RunID: runID})
			if err != nil {
				continue
			}
			if _, err := client.EnqueueContext(ctx, asynq.NewTask(TypeFeedWarm, payload)); err != nil {
				log.Printf("[FeedWarm] run %s: failed to enqueue warm for %s: %v", runID, u.ID, err)
			}
		}
		log.Printf("[FeedWarm] run %s: enqueued %d users", runID, len(active))
		return nil
	}
}

func handleWarmUser(feedSvc feed.FeedService, cache *feed.Cache) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p FeedWarmPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[FeedWarm] Invalid payload: %v", err)
			return err
		}

		if cache != nil {
			if err := cache.InvalidateUser(ctx, p.UserID); err != nil {
				log.Printf("[FeedWarm] run %s: failed to invalidate %s: %v", p.RunID, p.UserID, err)
			}
		}

		// Recompute the default view; GetFeed stores it in the cache.
		if _, err := feedSvc.GetFeed(ctx, p.UserID, models.FeedFilter{}, false); err != nil {
			log.Printf("[FeedWarm] run %s: failed to warm %s: %v", p.RunID, p.UserID, err)
			return err
		}
		return nil
	}
}
