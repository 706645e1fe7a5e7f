package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func take(t *testing.T, sub *Subscription) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msg, ok := sub.Next(ctx)
	require.True(t, ok)
	return msg
}

func TestPublishThenSubscribeFIFO(t *testing.T) {
	d := NewDispatcher(0)

	d.Publish(1, "M1")
	d.Publish(1, "M2")

	sub := d.Subscribe(1)
	assert.Equal(t, "M1", take(t, sub))
	assert.Equal(t, "M2", take(t, sub))
}

func TestMessagesSurviveWithNoSubscriber(t *testing.T) {
	d := NewDispatcher(0)

	d.Publish(7, "queued while offline")

	// A later subscriber still receives the earlier message.
	sub := d.Subscribe(7)
	assert.Equal(t, "queued while offline", take(t, sub))
}

func TestSubscribeBlocksUntilPublish(t *testing.T) {
	d := NewDispatcher(0)
	sub := d.Subscribe(3)

	got := make(chan string, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if msg, ok := sub.Next(ctx); ok {
			got <- msg
		}
	}()

	time.Sleep(50 * time.Millisecond)
	d.Publish(3, "wake up")

	select {
	case msg := <-got:
		assert.Equal(t, "wake up", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber never woke up")
	}
}

func TestCancelReleasesWithoutDestroyingMailbox(t *testing.T) {
	d := NewDispatcher(0)
	sub := d.Subscribe(4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan bool, 1)
	go func() {
		_, ok := sub.Next(ctx)
		done <- ok
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case ok := <-done:
		assert.False(t, ok, "cancelled read should report no delivery")
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled subscriber never returned")
	}

	// Publishing still works and a fresh subscriber drains the mailbox.
	d.Publish(4, "after disconnect")
	assert.Equal(t, "after disconnect", take(t, d.Subscribe(4)))
}

func TestPerRecipientIsolation(t *testing.T) {
	d := NewDispatcher(0)

	d.Publish(1, "for one")
	d.Publish(2, "for two")

	assert.Equal(t, "for two", take(t, d.Subscribe(2)))
	assert.Equal(t, "for one", take(t, d.Subscribe(1)))
}

func TestRegistryEvictsIdleMailboxes(t *testing.T) {
	d := NewDispatcher(2)

	d.Publish(1, "a")
	d.Publish(2, "b")
	d.Publish(3, "c")

	assert.Equal(t, 2, d.Len(), "registry should stay at its cap")

	// The newest mailbox is always present.
	assert.Equal(t, "c", take(t, d.Subscribe(3)))
}

func TestEvictionSkipsWaitingSubscribers(t *testing.T) {
	d := NewDispatcher(1)

	sub := d.Subscribe(1)
	got := make(chan string, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if msg, ok := sub.Next(ctx); ok {
			got <- msg
		}
	}()
	time.Sleep(50 * time.Millisecond)

	// Over-cap creation must not evict the mailbox someone is blocked on.
	d.Publish(2, "other")
	d.Publish(1, "delivered")

	select {
	case msg := <-got:
		assert.Equal(t, "delivered", msg)
	case <-time.After(5 * time.Second):
		t.Fatal("waiting subscriber lost its mailbox")
	}
}
