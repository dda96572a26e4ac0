// Package siteconfig owns the site content document, the admin PIN and the
// checkout contact identifier. Each is persisted under its own key.
//
// The PIN is stored in plain text next to every other record, so anyone
// with access to the store can read or replace it. It gates the admin
// screens, it does not protect them.
package siteconfig

import (
	"sync"

	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/events"
	"github.com/talkincode/storefront/internal/kvstore"
	"go.uber.org/zap"
)

// Defaults are used for every record missing from the store.
type Defaults struct {
	AdminPin          string
	ContactIdentifier string
	SiteContent       domain.SiteContent
}

// FactoryDefaults returns the built-in defaults.
func FactoryDefaults() Defaults {
	return Defaults{
		AdminPin:          domain.DefaultAdminPin,
		ContactIdentifier: domain.DefaultContactIdentifier,
		SiteContent:       domain.DefaultSiteContent(),
	}
}

// Store holds the site configuration.
type Store struct {
	mu       sync.RWMutex
	settings domain.Settings
	kv       kvstore.Store
	bus      *events.Bus
}

// Open loads each record independently and writes the loaded values back
// once. The returned error, if any, is the first failed write.
func Open(kv kvstore.Store, bus *events.Bus, def Defaults) (*Store, error) {
	s := &Store{
		kv:  kv,
		bus: bus,
		settings: domain.Settings{
			SiteContent:       kvstore.Load(kv, kvstore.KeySiteContent, def.SiteContent),
			AdminPin:          kvstore.LoadString(kv, kvstore.KeyAdminPin, def.AdminPin),
			ContactIdentifier: kvstore.LoadString(kv, kvstore.KeyContactIdentifier, def.ContactIdentifier),
		},
	}
	zap.L().Info("siteconfig: loaded", zap.String("store_name", s.settings.SiteContent.StoreName))
	return s, s.persist(s.settings)
}

// SaveSettings overwrites the three records. The new values are visible to
// readers immediately, even when a write fails.
func (s *Store) SaveSettings(pin, contact string, content domain.SiteContent) error {
	next := domain.Settings{AdminPin: pin, ContactIdentifier: contact, SiteContent: content}
	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	err := s.persist(next)
	zap.L().Info("siteconfig: settings saved", zap.String("store_name", content.StoreName), zap.Bool("persisted", err == nil))
	s.bus.Publish(events.TopicSiteConfig, "save", 0)
	return err
}

// SiteContent returns the current site document.
func (s *Store) SiteContent() domain.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.SiteContent
}

// AdminPin returns the current admin PIN.
func (s *Store) AdminPin() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.AdminPin
}

// ContactIdentifier returns the checkout destination.
func (s *Store) ContactIdentifier() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.ContactIdentifier
}

// Settings returns all three values at once.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// persist attempts all three writes and returns the first failure.
func (s *Store) persist(v domain.Settings) error {
	var first error
	keep := func(err error) {
		if err != nil {
			zap.L().Error("siteconfig: persist failed", zap.Error(err))
			if first == nil {
				first = err
			}
		}
	}
	keep(kvstore.Save(s.kv, kvstore.KeySiteContent, v.SiteContent))
	keep(kvstore.SaveString(s.kv, kvstore.KeyAdminPin, v.AdminPin))
	keep(kvstore.SaveString(s.kv, kvstore.KeyContactIdentifier, v.ContactIdentifier))
	return first
}
