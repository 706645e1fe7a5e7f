package services

import (
	"context"
	"sync"
	"time"
)

const DefaultMaxRecipients = 4096

// Dispatcher owns one FIFO mailbox per recipient. Mailboxes are created
// lazily on first publish or subscribe and survive subscriber disconnects,
// so a message published while nobody listens is read by the next
// subscriber. The registry is bounded: once it holds more than
// maxRecipients mailboxes, the least recently used idle mailbox is evicted.
type Dispatcher struct {
	mu            sync.Mutex
	boxes         map[uint]*mailbox
	maxRecipients int
}

type mailbox struct {
	mu         sync.Mutex
	cond       *sync.Cond
	queue      []string
	waiters    int
	lastActive time.Time
}

func newMailbox() *mailbox {
	m := &mailbox{lastActive: time.Now()}
	m.cond = sync.NewCond(&m.mu)
	return m
}

func NewDispatcher(maxRecipients int) *Dispatcher {
	if maxRecipients <= 0 {
		maxRecipients = DefaultMaxRecipients
	}
	return &Dispatcher{
		boxes:         make(map[uint]*mailbox),
		maxRecipients: maxRecipients,
	}
}

// box returns the recipient's mailbox, creating it if needed and evicting
// the stalest idle mailbox when the registry is over capacity.
func (d *Dispatcher) box(recipientID uint) *mailbox {
	d.mu.Lock()
	defer d.mu.Unlock()

	if m, ok := d.boxes[recipientID]; ok {
		return m
	}
	if len(d.boxes) >= d.maxRecipients {
		d.evictLocked()
	}
	m := newMailbox()
	d.boxes[recipientID] = m
	return m
}

// evictLocked drops the least recently used mailbox that has no waiting
// subscriber. A mailbox someone is blocked on is never evicted.
func (d *Dispatcher) evictLocked() {
	var (
		victimID uint
		victim   *mailbox
	)
	for id, m := range d.boxes {
		m.mu.Lock()
		idle := m.waiters == 0
		active := m.lastActive
		m.mu.Unlock()
		if !idle {
			continue
		}
		if victim == nil || active.Before(victim.lastActive) {
			victimID, victim = id, m
		}
	}
	if victim != nil {
		delete(d.boxes, victimID)
	}
}

// Publish enqueues a message for the recipient. It never blocks: the queue
// is unbounded and the message waits for the next read if nobody is
// currently subscribed.
func (d *Dispatcher) Publish(recipientID uint, message string) {
	m := d.box(recipientID)
	m.mu.Lock()
	m.queue = append(m.queue, message)
	m.lastActive = time.Now()
	m.mu.Unlock()
	m.cond.Signal()
}

// Subscribe returns the recipient's live message stream. Only one active
// subscriber per recipient is expected; concurrent subscribers race for
// messages.
func (d *Dispatcher) Subscribe(recipientID uint) *Subscription {
	return &Subscription{box: d.box(recipientID)}
}

// Len reports how many recipient mailboxes exist.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.boxes)
}

// Subscription reads a single recipient's mailbox in publish order.
type Subscription struct {
	box *mailbox
}

// Next blocks until a message is available or ctx is done. It returns
// (message, true) on delivery and ("", false) on cancellation. Cancelling
// releases the read position without destroying the mailbox; queued and
// future messages remain for later subscribers.
func (s *Subscription) Next(ctx context.Context) (string, bool) {
	m := s.box

	// Acquiring the mutex first guarantees the waiter is parked inside
	// Wait before Broadcast fires, so the wakeup cannot be missed.
	stop := context.AfterFunc(ctx, func() {
		m.mu.Lock()
		m.mu.Unlock()
		m.cond.Broadcast()
	})
	defer stop()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.waiters++
	for len(m.queue) == 0 && ctx.Err() == nil {
		m.cond.Wait()
	}
	m.waiters--
	m.lastActive = time.Now()

	if ctx.Err() != nil {
		return "", false
	}
	msg := m.queue[0]
	m.queue = m.queue[1:]
	return msg, true
}
