package session

import (
	"sync"

	"github.com/baseldt/lms/core"
)

const DefaultOutboxLimit = 50

// Outbox queues notifications until the client drains them. Past limit, the oldest are dropped.
type Outbox struct {
	mu    sync.Mutex
	queue []core.Notification
	limit int
}

var _ core.Notifier = (*Outbox)(nil)

func NewOutbox(limit int) *Outbox {
	if limit <= 0 {
		limit = DefaultOutboxLimit
	}
	return &Outbox{limit: limit}
}

func (o *Outbox) Notify(n core.Notification) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.queue = append(o.queue, n)
	if over := len(o.queue) - o.limit; over > 0 {
		o.queue = append(o.queue[:0], o.queue[over:]...)
	}
}

// Drain returns the queued notifications, oldest first, and empties the queue.
func (o *Outbox) Drain() []core.Notification {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]core.Notification, len(o.queue))
	copy(out, o.queue)
	o.queue = o.queue[:0]
	return out
}

func (o *Outbox) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.queue)
}
