package session

import (
	"context"

	"github.com/baseldt/lms/core/user"
)

// Pending is the eventual result of a Login or Register call.
// It always resolves; there is no way to abort the underlying operation.
type Pending struct {
	done  chan struct{}
	ident *user.Identity
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

func resolved(ident *user.Identity) *Pending {
	p := newPending()
	p.resolve(ident)
	return p
}

// resolve records the identity the operation logged in; nil means it failed.
func (p *Pending) resolve(ident *user.Identity) {
	p.ident = ident
	close(p.done)
}

// Done is closed once the result is available.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the operation resolves and reports whether it succeeded.
func (p *Pending) Wait() bool {
	<-p.done
	return p.ident != nil
}

// WaitContext is Wait bounded by ctx. Giving up waiting does not stop the operation.
func (p *Pending) WaitContext(ctx context.Context) (bool, error) {
	select {
	case <-p.done:
		return p.ident != nil, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Identity blocks until the operation resolves and returns the identity it logged in,
// nil on failure. It does not change if the session is logged out afterwards.
func (p *Pending) Identity() *user.Identity {
	<-p.done
	if p.ident == nil {
		return nil
	}
	ident := *p.ident
	return &ident
}
