package service

import (
	"context"
	"testing"

	"tandem/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedUserService(t *testing.T) (*UserService, *miniredis.Miniredis, *FriendService) {
	t.Helper()
	db := newTestDB(t)
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewFriendRequestRepository(db)
	userService := NewUserService(userRepo, rdb)
	friendService := NewFriendService(db, requestRepo, userRepo, userService, nil)
	return userService, mr, friendService
}

func TestRecommendCachesResults(t *testing.T) {
	userService, mr, friendService := newCachedUserService(t)
	db := friendService.db
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	recs, err := userService.Recommend(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	assert.True(t, mr.Exists(recommendationKey(alice.ID)), "expected recommendation list cached")

	// A new user does not appear while the cached list is fresh.
	seedUser(t, db, "carol")
	recs, err = userService.Recommend(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, recs, 1)

	// After expiry the read goes back to the store.
	mr.FastForward(recommendationTTL * 2)
	recs, err = userService.Recommend(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestAcceptInvalidatesRecommendationCache(t *testing.T) {
	userService, mr, friendService := newCachedUserService(t)
	db := friendService.db
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	// Warm both caches.
	_, err := userService.Recommend(context.Background(), alice.ID)
	require.NoError(t, err)
	_, err = userService.Recommend(context.Background(), bob.ID)
	require.NoError(t, err)

	request, err := friendService.SendFriendRequest(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	_, err = friendService.AcceptFriendRequest(context.Background(), bob.ID, request.ID)
	require.NoError(t, err)

	assert.False(t, mr.Exists(recommendationKey(alice.ID)), "expected sender's cache invalidated")
	assert.False(t, mr.Exists(recommendationKey(bob.ID)), "expected recipient's cache invalidated")

	// Fresh read reflects the new friendship immediately.
	recs, err := userService.Recommend(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommendWorksWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	userService := NewUserService(userRepo, nil)
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")

	recs, err := userService.Recommend(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
