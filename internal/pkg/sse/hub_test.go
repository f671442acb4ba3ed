package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubPublishToSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-1", Event{Event: "attendance.recorded", Data: "payload"})

	select {
	case ev := <-ch:
		assert.Equal(t, "attendance.recorded", ev.Event)
		assert.Equal(t, "payload", ev.Data)
	default:
		t.Fatal("expected event to be delivered")
	}
}

func TestHubNoDeliveryToOtherUsers(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	defer cleanup()

	hub.Publish("user-2", Event{Event: "attendance.recorded"})

	select {
	case <-ch:
		t.Fatal("event for user-2 delivered to user-1")
	default:
	}
}

func TestHubStopsAfterUnsubscribe(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-1")
	require.Equal(t, 1, hub.SubscriberCount("user-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user-1"))

	// Publish after cancellation must not panic or deliver.
	hub.Publish("user-1", Event{Event: "attendance.recorded"})

	_, open := <-ch
	assert.False(t, open, "channel should be closed after unsubscribe")
}

func TestHubPublishToMany(t *testing.T) {
	hub := NewHub()
	ch1, cleanup1 := hub.Subscribe("a")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("b")
	defer cleanup2()

	hub.PublishToMany([]string{"a", "b"}, Event{Event: "request.updated"})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, "a", ev1.UserID)
	assert.Equal(t, "b", ev2.UserID)
}
