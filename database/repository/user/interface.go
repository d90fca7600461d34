package userRepo

import (
	"context"
	"time"

	"joino/models"
)

// UserRepository exposes the profile fields the feed needs. Account
// management (registration, credentials) belongs to the identity service
// and is not represented here.
type UserRepository interface {
	// GetByID returns a user's profile, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// RecentlyActive lists users active since the given time, used by
	// the cache warm worker.
	RecentlyActive(ctx context.Context, since time.Time, limit int) ([]models.User, error)
}
