package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/storefront/internal/events"
)

type staticPin string

func (p *staticPin) AdminPin() string { return string(*p) }

func TestAttemptWithCorrectPin(t *testing.T) {
	pin := staticPin("1313")
	g := NewGate(&pin)
	assert.False(t, g.IsAuthorized())

	assert.True(t, g.Attempt("1313"))
	assert.True(t, g.IsAuthorized())
}

func TestAttemptWithWrongPinOnFreshGate(t *testing.T) {
	pin := staticPin("1313")
	g := NewGate(&pin)

	assert.False(t, g.Attempt("0000"))
	assert.False(t, g.Attempt(" 1313"))
	assert.False(t, g.IsAuthorized())
}

func TestWrongPinDoesNotRevokeAuthorization(t *testing.T) {
	pin := staticPin("1313")
	g := NewGate(&pin)
	require.True(t, g.Attempt("1313"))

	assert.False(t, g.Attempt("nope"))
	assert.True(t, g.IsAuthorized())
}

func TestAttemptReadsCurrentPin(t *testing.T) {
	pin := staticPin("1313")
	g := NewGate(&pin)
	pin = "2468"

	assert.False(t, g.Attempt("1313"))
	assert.True(t, g.Attempt("2468"))
}

func TestEmptyPinMatchesEmptySecret(t *testing.T) {
	pin := staticPin("")
	g := NewGate(&pin)
	assert.True(t, g.Attempt(""))
}

func TestAttemptPublishesOnSuccess(t *testing.T) {
	bus := events.New()
	logins := 0
	require.NoError(t, bus.Subscribe(events.TopicAuth, func(events.Change) { logins++ }))
	pin := staticPin("1313")
	g := NewGate(&pin, WithBus(bus))

	g.Attempt("bad")
	g.Attempt("1313")
	assert.Equal(t, 1, logins)
}
