package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/user"
	"github.com/baseldt/lms/storage/kv"
)

// Browser is one browser context: its own session store and pending notifications.
type Browser struct {
	ID     string
	Store  *Store
	Outbox *Outbox
	// Notifier feeds Outbox and the notifier shared by all contexts.
	Notifier core.Notifier

	lastSeen time.Time // guarded by the Manager
}

var nowFunc = time.Now

// Manager hands out one Browser per context id. All of them share the roster and the
// durable storage, each under its own key namespace.
type Manager struct {
	roster  *user.Roster
	storage kv.Store
	opts    Options

	mu       sync.Mutex
	browsers map[string]*Browser
}

// NewManager builds a Manager. opts.Notifier, if set, receives every browser's notifications
// in addition to its outbox.
func NewManager(roster *user.Roster, storage kv.Store, opts Options) *Manager {
	return &Manager{
		roster:   roster,
		storage:  storage,
		opts:     opts,
		browsers: make(map[string]*Browser),
	}
}

// Browser returns the context identified by id, restoring its session on first use.
func (m *Manager) Browser(ctx context.Context, id string) *Browser {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := nowFunc()
	if b, ok := m.browsers[id]; ok {
		b.lastSeen = now
		return b
	}

	outbox := NewOutbox(DefaultOutboxLimit)
	opts := m.opts
	opts.Notifier = core.MultiNotifier(outbox, m.opts.Notifier)

	b := &Browser{
		ID:       id,
		Store:    NewStore(ctx, m.roster, kv.Namespace(m.storage, namespace(id)), opts),
		Outbox:   outbox,
		Notifier: opts.Notifier,
		lastSeen: now,
	}
	m.browsers[id] = b
	return b
}

// Forget drops the in-memory state of a context. Its durable entry is kept, so the next
// Browser call with the same id restores the session. Undrained notifications are lost.
func (m *Manager) Forget(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.browsers, id)
}

// Reap forgets every context not used for idle or longer and returns how many it dropped.
func (m *Manager) Reap(idle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := nowFunc().Add(-idle)
	n := 0
	for id, b := range m.browsers {
		if !b.lastSeen.After(cutoff) {
			delete(m.browsers, id)
			n++
		}
	}
	return n
}

// RunReaper calls Reap every interval until ctx is done.
func (m *Manager) RunReaper(ctx context.Context, every, idle time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := m.Reap(idle); n > 0 && m.opts.Logger != nil {
				m.opts.Logger.Debug("reaped idle browser contexts: " + strconv.Itoa(n))
			}
		}
	}
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.browsers)
}

func (m *Manager) Roster() *user.Roster {
	return m.roster
}

func namespace(id string) string {
	return "ctx:" + id + ":"
}
