package session

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultRegistryCapacity bounds how many peer sessions a registry tracks at
// once before the least recently used are evicted.
const DefaultRegistryCapacity = 1024

// Registry tracks one Session per peer so concurrent independent sessions
// never share phase state. Thread-safe for concurrent access, though each
// returned Session must still be driven by one goroutine at a time.
type Registry interface {
	// Get returns the session for a peer, creating one in PhaseInit on
	// first use.
	Get(id string) *Session

	// Remove discards a peer's session. Returns false if none existed.
	Remove(id string) bool

	// Len returns the number of tracked sessions.
	Len() int

	// Reset discards all tracked sessions.
	Reset()
}

// RegistryImpl is the concrete implementation of Registry. Sessions are held
// in an LRU so an unbounded stream of peers cannot pin memory: evicting a
// session is equivalent to resetting it to PhaseInit, since a session holds
// no resources beyond its phase.
type RegistryImpl struct {
	mu       sync.Mutex
	cfg      Config
	sessions *lru.Cache[string, *Session]
}

// NewRegistry creates a registry whose sessions all use cfg. A capacity of
// zero or less uses DefaultRegistryCapacity.
func NewRegistry(cfg Config, capacity int) (*RegistryImpl, error) {
	if capacity <= 0 {
		capacity = DefaultRegistryCapacity
	}
	sessions, err := lru.New[string, *Session](capacity)
	if err != nil {
		return nil, err
	}
	return &RegistryImpl{cfg: cfg, sessions: sessions}, nil
}

// Get returns the session for a peer, creating one in PhaseInit on first use.
func (r *RegistryImpl) Get(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions.Get(id); ok {
		return s
	}

	s := NewWithConfig(r.cfg)
	r.sessions.Add(id, s)
	return s
}

// Remove discards a peer's session. Returns false if none existed.
func (r *RegistryImpl) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Remove(id)
}

// Len returns the number of tracked sessions.
func (r *RegistryImpl) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions.Len()
}

// Reset discards all tracked sessions.
func (r *RegistryImpl) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions.Purge()
}
