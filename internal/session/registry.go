// Package session keeps the transient per-visitor state: an admin gate and
// a cart. Nothing here is persisted; a restart starts every visitor over.
package session

import (
	"sync"
	"time"

	"github.com/labstack/gommon/random"
	"github.com/talkincode/storefront/internal/auth"
	"github.com/talkincode/storefront/internal/cart"
	"github.com/talkincode/storefront/internal/events"
	"go.uber.org/zap"
)

const idLength = 32

// Session is one visitor's transient state.
type Session struct {
	ID   string
	Gate *auth.Gate
	Cart *cart.Cart

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen returns the time of the last lookup.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Registry maps session ids to sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	pins     auth.PinSource
	bus      *events.Bus
	currency string
	now      func() time.Time
}

// NewRegistry returns an empty registry whose gates check against pins.
func NewRegistry(pins auth.PinSource, bus *events.Bus, currency string) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		pins:     pins,
		bus:      bus,
		currency: currency,
		now:      time.Now,
	}
}

// Get returns the session for id, or creates a fresh one under a new id
// when id is empty or unknown.
func (r *Registry) Get(id string) *Session {
	now := r.now()
	if id != "" {
		r.mu.RLock()
		s, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			s.touch(now)
			return s
		}
	}
	s := &Session{
		ID:       random.String(idLength),
		Gate:     auth.NewGate(r.pins, auth.WithBus(r.bus)),
		Cart:     cart.New(cart.WithBus(r.bus), cart.WithCurrency(r.currency)),
		lastSeen: now,
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	zap.L().Debug("session: created", zap.String("id", s.ID[:8]))
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than ttl and returns how many.
func (r *Registry) Sweep(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
