// Package cache provides Redis connection management and cache-aside helpers.
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is the global Redis client. It is nil when Redis is unreachable;
// callers treat a nil client as "no cache".
var Client *redis.Client

// InitRedis connects to Redis at the given address. The application runs
// without a cache when the connection fails.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection warning: %v (continuing without cache)", err)
		Client = nil
	} else {
		log.Println("Redis connected successfully")
	}
}

// GetClient returns the global Redis client, which may be nil.
func GetClient() *redis.Client {
	return Client
}
