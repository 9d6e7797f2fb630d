// Package service contains the business logic of the application.
package service

import (
	"context"
	"fmt"
	"time"

	"tandem/internal/cache"
	"tandem/internal/models"
	"tandem/internal/observability"
	"tandem/internal/repository"

	"github.com/redis/go-redis/v9"
)

// recommendationTTL bounds how stale a cached recommendation list can get.
const recommendationTTL = 2 * time.Minute

// recommendationKey is the Redis key holding a user's cached recommendations.
func recommendationKey(userID uint) string {
	return fmt.Sprintf("recs:user:%d", userID)
}

// UserService provides user directory and partner recommendation logic.
type UserService struct {
	userRepo repository.UserRepository
	rdb      *redis.Client
}

// NewUserService returns a new UserService. rdb may be nil, in which case
// recommendation queries always hit the store.
func NewUserService(userRepo repository.UserRepository, rdb *redis.Client) *UserService {
	return &UserService{userRepo: userRepo, rdb: rdb}
}

// GetByID returns the user with the given ID.
func (s *UserService) GetByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Recommend returns onboarded users who are neither the requesting user nor
// already their friend. Results are cached briefly; the cache is invalidated
// whenever the user's friends set or onboarding state changes.
func (s *UserService) Recommend(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User

	key := recommendationKey(userID)
	hit, err := cache.CacheAside(ctx, s.rdb, key, &users, recommendationTTL, func() error {
		fetched, err := s.userRepo.Recommend(ctx, userID)
		if err != nil {
			return err
		}
		users = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	if hit {
		observability.RecommendationCacheHits.Inc()
	} else {
		observability.RecommendationCacheMisses.Inc()
	}
	return users, nil
}

// ListFriends returns the user's friends.
func (s *UserService) ListFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.userRepo.ListFriends(ctx, userID)
}

// InvalidateRecommendations drops the cached recommendation lists for the
// given users. Called after onboarding and after a friendship is recorded.
func (s *UserService) InvalidateRecommendations(ctx context.Context, userIDs ...uint) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, recommendationKey(id))
	}
	cache.Invalidate(ctx, s.rdb, keys...)
}
