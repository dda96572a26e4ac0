// Package auth implements the admin gate: a PIN comparison that flips an
// in-memory flag. It is not a security boundary; the PIN lives in the same
// store as the data it guards.
package auth

import (
	"sync"

	"github.com/talkincode/storefront/internal/events"
	"go.uber.org/zap"
)

// PinSource supplies the current admin PIN.
type PinSource interface {
	AdminPin() string
}

// Option configures a Gate.
type Option func(*Gate)

// WithBus publishes an auth change on every successful attempt.
func WithBus(bus *events.Bus) Option {
	return func(g *Gate) { g.bus = bus }
}

// Gate tracks whether the current session entered the right PIN.
// The flag is never persisted.
type Gate struct {
	mu         sync.RWMutex
	pins       PinSource
	authorized bool
	bus        *events.Bus
}

// NewGate returns an unauthorised gate.
func NewGate(pins PinSource, opts ...Option) *Gate {
	g := &Gate{pins: pins}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Attempt compares secret with the stored PIN. A match authorises the gate;
// a mismatch leaves the flag as it was. There is no lockout.
func (g *Gate) Attempt(secret string) bool {
	if secret != g.pins.AdminPin() {
		zap.L().Info("auth: access denied")
		return false
	}
	g.mu.Lock()
	g.authorized = true
	g.mu.Unlock()
	zap.L().Info("auth: admin authorized")
	g.bus.Publish(events.TopicAuth, "login", 0)
	return true
}

// IsAuthorized reports the current flag.
func (g *Gate) IsAuthorized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authorized
}
