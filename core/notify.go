package core

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	switch s {
	case SeverityDefault:
		return "default"
	case SeverityDestructive:
		return "destructive"
	}
	return "unknown"
}

func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityDefault, SeverityDestructive:
		return []byte(s.String()), nil
	}
	return nil, errors.Errorf("invalid severity %d", int(s))
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "default", "":
		*s = SeverityDefault
	case "destructive":
		*s = SeverityDestructive
	default:
		return errors.Errorf("invalid severity %q", text)
	}
	return nil
}

// Notification is a transient, user-visible message (a toast).
type Notification struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewNotification(title, description string, severity Severity) Notification {
	now := time.Now().UTC()
	return Notification{
		ID:          ulid.MustNew(ulid.Timestamp(now), rand.Reader).String(),
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   now,
	}
}

// Notifier displays notifications. It is fire-and-forget.
type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// NopNotifier drops every notification.
var NopNotifier Notifier = NotifierFunc(func(Notification) {})

// LogNotifier forwards notifications to a Logger. Destructive ones are logged as warnings.
func LogNotifier(logger Logger) Notifier {
	return NotifierFunc(func(n Notification) {
		switch n.Severity {
		case SeverityDestructive:
			logger.Warn(n.Title + ": " + n.Description)
		default:
			logger.Info(n.Title + ": " + n.Description)
		}
	})
}

// MultiNotifier fans a notification out to every notifier, in order.
func MultiNotifier(notifiers ...Notifier) Notifier {
	return NotifierFunc(func(n Notification) {
		for _, ntf := range notifiers {
			if ntf != nil {
				ntf.Notify(n)
			}
		}
	})
}
