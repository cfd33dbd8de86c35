package pubsub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func TestBusFansOutToAllSubscribers(t *testing.T) {
	bus := NewBus[string]()
	a, cancelA := bus.Subscribe()
	b, cancelB := bus.Subscribe()
	defer cancelA()
	defer cancelB()

	bus.Publish("hello")

	assert.Equal(t, "hello", recv(t, a))
	assert.Equal(t, "hello", recv(t, b))
}

func TestBusCancelStopsDelivery(t *testing.T) {
	bus := NewBus[string]()
	ch, cancel := bus.Subscribe()
	cancel()

	bus.Publish("after-cancel")

	// The channel is closed on cancel; nothing was delivered.
	msg, open := <-ch
	assert.False(t, open)
	assert.Empty(t, msg)
}

func TestBusSlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	bus := NewBus[string]()
	_, cancel := bus.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Overflow the subscriber buffer; publishes past it are dropped.
		for i := 0; i < 100; i++ {
			bus.Publish("burst")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}

func TestBusSubscribeAfterClose(t *testing.T) {
	bus := NewBus[string]()
	bus.Close()

	ch, cancel := bus.Subscribe()
	require.NotNil(t, cancel)

	_, open := <-ch
	assert.False(t, open)
}

func TestBusCloseClosesSubscribers(t *testing.T) {
	bus := NewBus[string]()
	ch, _ := bus.Subscribe()

	bus.Close()
	bus.Close() // idempotent

	_, open := <-ch
	assert.False(t, open)
}
