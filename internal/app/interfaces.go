package app

import (
	"github.com/robfig/cron/v3"
	"github.com/talkincode/storefront/config"
	"github.com/talkincode/storefront/internal/catalog"
	"github.com/talkincode/storefront/internal/events"
	"github.com/talkincode/storefront/internal/kvstore"
	"github.com/talkincode/storefront/internal/session"
	"github.com/talkincode/storefront/internal/siteconfig"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the durable key-value store
type StoreProvider interface {
	Store() kvstore.Store
}

// CatalogProvider provides the product store
type CatalogProvider interface {
	Catalog() *catalog.Catalog
}

// SiteConfigProvider provides site content, admin PIN and contact
type SiteConfigProvider interface {
	SiteConfig() *siteconfig.Store
}

// SessionProvider provides the per-visitor session registry
type SessionProvider interface {
	Sessions() *session.Registry
}

// EventsProvider provides the change notification bus
type EventsProvider interface {
	Events() *events.Bus
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context
// Handlers should depend on specific providers or this combined interface
type AppContext interface {
	ConfigProvider
	StoreProvider
	CatalogProvider
	SiteConfigProvider
	SessionProvider
	EventsProvider
	SchedulerProvider
}
