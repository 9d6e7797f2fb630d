package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()

	assert.Equal(t, 0, hub.ConnectionCount(10))

	client := NewClient(hub, nil, 10)
	hub.Register(client)
	assert.Equal(t, 1, hub.ConnectionCount(10))

	// Registering the same client twice still counts one entry
	hub.Register(client)
	assert.Equal(t, 1, hub.ConnectionCount(10))

	// A second tab for the same user is a distinct client
	second := NewClient(hub, nil, 10)
	hub.Register(second)
	assert.Equal(t, 2, hub.ConnectionCount(10))

	hub.Unregister(client)
	hub.Unregister(second)
	assert.Equal(t, 0, hub.ConnectionCount(10))

	// Unregistering an unknown client is a no-op
	hub.Unregister(client)
	assert.Equal(t, 0, hub.ConnectionCount(10))
}

func TestHubBroadcastNoConnections(t *testing.T) {
	hub := NewHub()
	// Must not panic when nobody is connected
	hub.Broadcast(99, "payload")
}

func TestBroadcastQueuesOnClientSendChannel(t *testing.T) {
	hub := NewHub()
	client := NewClient(hub, nil, 7)
	hub.Register(client)

	// Broadcast only queues; the connection (nil here) is untouched because
	// the write pump is the connection's single writer.
	hub.Broadcast(7, `{"type":"greeting"}`)

	select {
	case msg := <-client.send:
		assert.JSONEq(t, `{"type":"greeting"}`, string(msg))
	default:
		t.Fatal("expected message queued on client send channel")
	}
}

func TestTrySendDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	client := NewClient(hub, nil, 7)
	hub.Register(client)

	// Fill the buffer; the overflow message must be dropped without blocking.
	for i := 0; i < cap(client.send); i++ {
		client.TrySend([]byte("m"))
	}
	done := make(chan struct{})
	go func() {
		client.TrySend([]byte("overflow"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("TrySend blocked on a full buffer")
	}
	assert.Len(t, client.send, cap(client.send))
}

func TestHubShutdownClosesSendQueues(t *testing.T) {
	hub := NewHub()
	client := NewClient(hub, nil, 5)
	hub.Register(client)

	require.NoError(t, hub.Shutdown(context.Background()))
	assert.Equal(t, 0, hub.ConnectionCount(5))

	_, open := <-client.send
	assert.False(t, open)

	// Sending after shutdown must not panic
	client.TrySend([]byte("late"))
}

func TestHubWiringDeliversToUserChannel(t *testing.T) {
	hub := NewHub()
	n := newTestNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, hub.StartWiring(ctx, n))

	client := NewClient(hub, nil, 42)
	hub.Register(client)

	// Pub/sub delivery is asynchronous; retry briefly.
	deadline := time.After(2 * time.Second)
	for {
		require.NoError(t, n.PublishUser(context.Background(), 42, "hello"))
		select {
		case msg := <-client.send:
			assert.Equal(t, "hello", string(msg))
			require.NoError(t, hub.Shutdown(context.Background()))
			return
		case <-deadline:
			t.Fatal("expected published message delivered to client")
		case <-time.After(20 * time.Millisecond):
		}
	}
}
