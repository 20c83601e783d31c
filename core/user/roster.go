package user

import (
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrNotFound           = errors.New("user not found")
)

// Roster is the in-memory credential list searched by login.
// It is shared by every session and safe for concurrent use.
type Roster struct {
	mu    sync.RWMutex
	creds []Credential
	// highest numeric id handed out or seen in a restored session
	lastID int
}

func NewRoster(seed ...Credential) *Roster {
	r := &Roster{creds: make([]Credential, len(seed))}
	copy(r.creds, seed)
	for _, c := range seed {
		r.observe(c.ID)
	}
	return r
}

// NewSeededRoster returns a Roster holding the mock credentials.
func NewSeededRoster() *Roster {
	return NewRoster(MockCredentials()...)
}

// Authenticate finds the credential whose email and secret match exactly (case-sensitive).
func (r *Roster) Authenticate(email, secret string) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.creds {
		if c.Email == email && c.Secret == secret {
			return c.Identity, nil
		}
	}
	return Identity{}, ErrInvalidCredentials
}

// Register appends a new credential. The id is the roster size + 1, moved past any id
// already seen so a restored session never shares its id with a new user.
func (r *Roster) Register(name, email, secret string, role Role) (Identity, error) {
	if !role.IsValid() {
		return Identity{}, errors.Wrapf(ErrInvalidRole, "%d", int(role))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(email) >= 0 {
		return Identity{}, ErrEmailExists
	}
	id := len(r.creds) + 1
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	ident := Identity{
		ID:    strconv.Itoa(id),
		Name:  name,
		Email: email,
		Role:  role,
	}
	r.creds = append(r.creds, Credential{Identity: ident, Secret: secret})
	return ident, nil
}

// Observe reserves the id of an identity known from outside the roster, such as a session
// restored from durable storage. Non-numeric ids are ignored.
func (r *Roster) Observe(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observe(id)
}

// caller must hold the lock
func (r *Roster) observe(id string) {
	if n, err := strconv.Atoi(id); err == nil && n > r.lastID {
		r.lastID = n
	}
}

func (r *Roster) EmailExists(email string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(email) >= 0
}

func (r *Roster) GetByID(id string) (Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.creds {
		if c.ID == id {
			return c.Identity, nil
		}
	}
	return Identity{}, ErrNotFound
}

func (r *Roster) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.creds)
}

// Identities returns every identity, secrets stripped, in registration order.
func (r *Roster) Identities() []Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idents := make([]Identity, 0, len(r.creds))
	for _, c := range r.creds {
		idents = append(idents, c.Identity)
	}
	return idents
}

// caller must hold the lock
func (r *Roster) indexOf(email string) int {
	for i, c := range r.creds {
		if c.Email == email {
			return i
		}
	}
	return -1
}
