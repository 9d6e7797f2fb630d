// Package notifications wires friend-request events from Redis pub/sub to
// connected WebSocket clients.
package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Event types published on a user's notification channel.
const (
	EventFriendRequestCreated  = "friend.request.created"
	EventFriendRequestAccepted = "friend.request.accepted"
)

// FriendRequestEvent is the payload delivered to the affected user.
type FriendRequestEvent struct {
	Type        string `json:"type"`
	RequestID   uint   `json:"request_id"`
	SenderID    uint   `json:"sender_id"`
	RecipientID uint   `json:"recipient_id"`
	SenderName  string `json:"sender_name,omitempty"`
}

// Notifier provides helpers to publish notifications into Redis channels
type Notifier struct {
	rdb *redis.Client
}

// NewNotifier returns a Notifier backed by the given Redis client.
func NewNotifier(rdb *redis.Client) *Notifier {
	return &Notifier{rdb: rdb}
}

// PublishUser sends a notification payload to a user's channel.
func (n *Notifier) PublishUser(ctx context.Context, userID uint, payload string) error {
	if n.rdb == nil {
		return nil
	}
	channel := fmt.Sprintf("notifications:user:%d", userID)
	return n.rdb.Publish(ctx, channel, payload).Err()
}

// PublishFriendRequestEvent marshals the event and publishes it to the
// channel of the user who should be notified.
func (n *Notifier) PublishFriendRequestEvent(ctx context.Context, notifyUserID uint, event FriendRequestEvent) error {
	if n.rdb == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.PublishUser(ctx, notifyUserID, string(payload))
}

// StartPatternSubscriber subscribes to pattern `notifications:user:*` and calls
// onMessage for each incoming message. onMessage receives channel and payload.
func (n *Notifier) StartPatternSubscriber(ctx context.Context, onMessage func(channel string, payload string)) error {
	if n.rdb == nil {
		return nil
	}
	sub := n.rdb.PSubscribe(ctx, "notifications:user:*")
	ch := sub.Channel()

	go func() {
		for msg := range ch {
			// Example channel: notifications:user:123
			onMessage(msg.Channel, msg.Payload)
		}
	}()

	return nil
}
