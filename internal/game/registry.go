package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var ErrSessionNotFound = errors.New("session not found")

type registryEntry struct {
	mu      sync.Mutex
	session *Session
}

// Registry holds the in-memory sessions of a long-running process. Sessions
// live until deleted, until they sit idle longer than the registry's idle
// timeout, or until the process exits.
type Registry struct {
	sessions *cache.Cache
	opts     []Option
	newID    func() string
}

// NewRegistry returns an empty registry whose sessions never expire. opts
// are applied to every session it creates, so a source passed with
// WithSource is shared between sessions and must tolerate concurrent use.
func NewRegistry(opts ...Option) *Registry {
	return NewExpiringRegistry(0, opts...)
}

// NewExpiringRegistry is like NewRegistry but drops sessions that have not
// been touched for idle. A non-positive idle disables expiry.
func NewExpiringRegistry(idle time.Duration, opts ...Option) *Registry {
	expiration, cleanup := cache.NoExpiration, time.Duration(0)
	if idle > 0 {
		expiration, cleanup = idle, idle/2
	}
	return &Registry{
		sessions: cache.New(expiration, cleanup),
		opts:     opts,
		newID:    uuid.NewString,
	}
}

// Create starts a new session and returns its id.
func (r *Registry) Create(settings Settings) string {
	entry := &registryEntry{session: New(settings, r.opts...)}

	for {
		id := r.newID()
		if err := r.sessions.Add(id, entry, cache.DefaultExpiration); err == nil {
			return id
		}
	}
}

// With runs fn while holding the lock of session id and restarts its idle
// timer.
func (r *Registry) With(id string, fn func(*Session) error) error {
	value, ok := r.sessions.Get(id)
	if !ok {
		return ErrSessionNotFound
	}
	entry := value.(*registryEntry)
	// Replace fails for a session deleted in the meantime, so it is not
	// brought back.
	_ = r.sessions.Replace(id, entry, cache.DefaultExpiration)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.session)
}

// Delete removes session id.
func (r *Registry) Delete(id string) error {
	if _, ok := r.sessions.Get(id); !ok {
		return ErrSessionNotFound
	}
	r.sessions.Delete(id)
	return nil
}

// Len returns the number of stored sessions. Expired sessions count until
// the next cleanup pass.
func (r *Registry) Len() int {
	return r.sessions.ItemCount()
}
