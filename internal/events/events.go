// Package events carries change notifications from the stores to whoever
// renders their state. Subscribers receive a Change and re-pull a snapshot
// from the store; the notification itself carries no state.
package events

import (
	"time"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// Topics published by the stores.
const (
	TopicCatalog    = "catalog:changed"
	TopicSiteConfig = "siteconfig:changed"
	TopicCart       = "cart:changed"
	TopicAuth       = "auth:changed"
)

// Change describes one applied mutation.
type Change struct {
	Topic  string
	Action string // create, update, delete, add, quantity, remove, save, login
	ID     int64  // affected product id, zero when not applicable
	At     time.Time
}

// Bus dispatches changes synchronously in publication order.
// A nil *Bus is valid and drops every change.
type Bus struct {
	bus evbus.Bus
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{bus: evbus.New()}
}

// Subscribe registers fn for topic.
func (b *Bus) Subscribe(topic string, fn func(Change)) error {
	if b == nil {
		return nil
	}
	return b.bus.Subscribe(topic, fn)
}

// Unsubscribe removes a handler previously passed to Subscribe.
func (b *Bus) Unsubscribe(topic string, fn func(Change)) error {
	if b == nil {
		return nil
	}
	return b.bus.Unsubscribe(topic, fn)
}

// Publish notifies every subscriber of topic.
func (b *Bus) Publish(topic, action string, id int64) {
	if b == nil {
		return
	}
	if !b.bus.HasCallback(topic) {
		return
	}
	zap.L().Debug("events: publish", zap.String("topic", topic), zap.String("action", action), zap.Int64("id", id))
	b.bus.Publish(topic, Change{Topic: topic, Action: action, ID: id, At: time.Now()})
}
