package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeBeforeFirstPublish(t *testing.T) {
	n := New[int]()

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	select {
	case v := <-ch:
		t.Fatalf("expected no value before first publish, got %d", v)
	default:
	}

	_, ok := n.Latest()
	assert.False(t, ok)
}

func TestSubscribeReplaysLatest(t *testing.T) {
	n := New[string]()
	n.Publish("first")
	n.Publish("second")

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	assert.Equal(t, "second", <-ch)

	latest, ok := n.Latest()
	require.True(t, ok)
	assert.Equal(t, "second", latest)
}

func TestPublishReachesSubscriber(t *testing.T) {
	n := New[int]()

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	n.Publish(1)
	assert.Equal(t, 1, <-ch)

	n.Publish(2)
	assert.Equal(t, 2, <-ch)
}

func TestSlowSubscriberSeesNewestOnly(t *testing.T) {
	n := New[int]()

	ch, unsubscribe := n.Subscribe()
	defer unsubscribe()

	// Three publishes without a read in between, only the last survives
	n.Publish(1)
	n.Publish(2)
	n.Publish(3)

	assert.Equal(t, 3, <-ch)

	select {
	case v := <-ch:
		t.Fatalf("expected no further value, got %d", v)
	default:
	}
}

func TestMultipleSubscribers(t *testing.T) {
	n := New[int]()

	ch1, unsubscribe1 := n.Subscribe()
	defer unsubscribe1()
	ch2, unsubscribe2 := n.Subscribe()
	defer unsubscribe2()

	n.Publish(42)

	assert.Equal(t, 42, <-ch1)
	assert.Equal(t, 42, <-ch2)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	n := New[int]()

	ch, unsubscribe := n.Subscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Safe to call again, and publishes no longer reach the channel
	unsubscribe()
	n.Publish(7)
}
