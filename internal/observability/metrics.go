// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FriendRequestsSent counts successfully created friend requests.
	FriendRequestsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tandem_friend_requests_sent_total",
		Help: "Total number of friend requests created",
	})

	// FriendRequestsAccepted counts successfully accepted friend requests.
	FriendRequestsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tandem_friend_requests_accepted_total",
		Help: "Total number of friend requests accepted",
	})

	// FriendRequestsRejected counts friend-request operations rejected by
	// validation, labeled with the rejection reason (error code).
	FriendRequestsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tandem_friend_requests_rejected_total",
		Help: "Total number of friend-request operations rejected, by reason",
	}, []string{"reason"})

	// RecommendationCacheHits counts recommendation reads served from Redis.
	RecommendationCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tandem_recommendation_cache_hits_total",
		Help: "Total number of recommendation queries served from cache",
	})

	// RecommendationCacheMisses counts recommendation reads served from the store.
	RecommendationCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tandem_recommendation_cache_misses_total",
		Help: "Total number of recommendation queries served from the database",
	})

	// WebSocketConnections is the gauge of active notification connections.
	WebSocketConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tandem_websocket_connections_total",
		Help: "Total number of active WebSocket notification connections",
	})

	// WebSocketBackpressureDrops counts notifications dropped because a
	// client's send queue was full or already closed.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tandem_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped, by reason",
	}, []string{"reason"})
)
