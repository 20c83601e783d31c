package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/baseldt/lms/core"
	"github.com/baseldt/lms/core/user"
	"github.com/baseldt/lms/storage/kv"
)

const (
	DefaultKey   = "lms-user"
	DefaultDelay = time.Second
)

type Options struct {
	// Key is the durable storage key of the session entry. Defaults to DefaultKey.
	Key string
	// Delay emulates the latency of a login/register round-trip. Zero resolves inline.
	Delay    time.Duration
	Notifier core.Notifier
	Logger   core.Logger
}

// DefaultOptions mirror the latency of the hosted app.
func DefaultOptions() Options {
	return Options{Key: DefaultKey, Delay: DefaultDelay}
}

// Store is the single source of truth for who the current user is.
type Store struct {
	roster   *user.Roster
	storage  kv.Store
	key      string
	delay    time.Duration
	notifier core.Notifier
	logger   core.Logger

	mu      sync.RWMutex
	current *user.Identity
}

// NewStore builds a Store and restores the session persisted in storage, if any.
func NewStore(ctx context.Context, roster *user.Roster, storage kv.Store, opts Options) *Store {
	s := &Store{
		roster:   roster,
		storage:  storage,
		key:      opts.Key,
		delay:    opts.Delay,
		notifier: opts.Notifier,
		logger:   opts.Logger,
	}
	if s.key == "" {
		s.key = DefaultKey
	}
	if s.notifier == nil {
		s.notifier = core.NopNotifier
	}
	if s.logger == nil {
		s.logger = core.NopLogger
	}
	s.restore(ctx)
	return s
}

// restore never fails: anything unreadable leaves the store logged out.
func (s *Store) restore(ctx context.Context) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			s.logger.Error("restoring session", errors.Wrap(err, "reading stored session"))
		}
		return
	}

	var ident user.Identity
	if err = json.Unmarshal(data, &ident); err == nil {
		err = ident.Validate()
	}
	if err != nil {
		s.logger.Warn("discarding stored session", errors.Wrap(err, "parsing stored session"))
		if err = s.storage.Delete(ctx, s.key); err != nil {
			s.logger.Error("discarding stored session", errors.Wrap(err, "deleting stored session"))
		}
		return
	}

	s.roster.Observe(ident.ID)
	s.mu.Lock()
	s.current = &ident
	s.mu.Unlock()
}

// Current returns the authenticated identity, if any.
func (s *Store) Current() (user.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return user.Identity{}, false
	}
	return *s.current, true
}

// Identity is Current as a pointer: nil when logged out.
func (s *Store) Identity() *user.Identity {
	if ident, ok := s.Current(); ok {
		return &ident
	}
	return nil
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Login resolves true when email and secret exactly match a roster credential.
// On failure the session is left untouched.
func (s *Store) Login(email, secret string) *Pending {
	return s.schedule(func() *user.Identity { return s.login(email, secret) })
}

// Register creates a new identity and logs it in. It fails when the email is taken.
func (s *Store) Register(name, email, secret string, role user.Role) *Pending {
	return s.schedule(func() *user.Identity { return s.register(name, email, secret, role) })
}

// Logout clears the session and its durable entry. Calling it when logged out is harmless.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	if err := s.storage.Delete(ctx, s.key); err != nil {
		s.logger.Error("logging out", errors.Wrap(err, "deleting stored session"))
	}
	s.mu.Unlock()

	s.notifier.Notify(core.NewNotification("Logged out", "You have been logged out successfully", core.SeverityDefault))
}

func (s *Store) schedule(op func() *user.Identity) *Pending {
	if s.delay <= 0 {
		return resolved(op())
	}
	p := newPending()
	time.AfterFunc(s.delay, func() { p.resolve(op()) })
	return p
}

func (s *Store) login(email, secret string) *user.Identity {
	ident, err := s.roster.Authenticate(email, secret)
	if err != nil {
		s.notifier.Notify(core.NewNotification("Login failed", "Invalid email or password", core.SeverityDestructive))
		return nil
	}

	s.set(ident)
	s.notifier.Notify(core.NewNotification("Login successful", "Welcome back, "+ident.Name+"!", core.SeverityDefault))
	return &ident
}

func (s *Store) register(name, email, secret string, role user.Role) *user.Identity {
	ident, err := s.roster.Register(name, email, secret, role)
	if err != nil {
		desc := "Email already exists"
		if !errors.Is(err, user.ErrEmailExists) {
			s.logger.Error("registering", errors.Wrap(err, "adding credential"))
			desc = "An unexpected error occurred"
		}
		s.notifier.Notify(core.NewNotification("Registration failed", desc, core.SeverityDestructive))
		return nil
	}

	s.set(ident)
	s.notifier.Notify(core.NewNotification("Registration successful", "Your account has been created", core.SeverityDefault))
	return &ident
}

// set makes ident the session and persists it. A failed write is logged only: the
// in-memory session stays authoritative for this process.
func (s *Store) set(ident user.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &ident
	data, err := json.Marshal(ident)
	if err == nil {
		err = s.storage.Set(context.Background(), s.key, data)
	}
	if err != nil {
		s.logger.Error("persisting session", errors.Wrap(err, "writing stored session"), ident)
	}
}
