package app

import (
	"os"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/talkincode/storefront/config"
	"github.com/talkincode/storefront/internal/catalog"
	"github.com/talkincode/storefront/internal/events"
	"github.com/talkincode/storefront/internal/kvstore"
	"github.com/talkincode/storefront/internal/session"
	"github.com/talkincode/storefront/internal/siteconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Application struct {
	appConfig  *config.AppConfig
	kv         kvstore.Store
	bus        *events.Bus
	catalog    *catalog.Catalog
	siteConfig *siteconfig.Store
	sessions   *session.Registry
	sched      *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider     = (*Application)(nil)
	_ StoreProvider      = (*Application)(nil)
	_ CatalogProvider    = (*Application)(nil)
	_ SiteConfigProvider = (*Application)(nil)
	_ SessionProvider    = (*Application)(nil)
	_ EventsProvider     = (*Application)(nil)
	_ SchedulerProvider  = (*Application)(nil)
	_ AppContext         = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig, bus: events.New()}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Store() kvstore.Store {
	return a.kv
}

// OverrideStore replaces the key-value backend before OpenStores (used in tests).
func (a *Application) OverrideStore(kv kvstore.Store) {
	a.kv = kv
}

func (a *Application) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *Application) SiteConfig() *siteconfig.Store {
	return a.siteConfig
}

func (a *Application) Sessions() *session.Registry {
	return a.sessions
}

func (a *Application) Events() *events.Bus {
	return a.bus
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// Init sets up logging, opens the stores and starts the background jobs.
func (a *Application) Init(cfg *config.AppConfig) error {
	a.appConfig = cfg
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	InitLogger(cfg.Logger)

	if err := cfg.InitDirs(); err != nil {
		return errors.Wrap(err, "init workdir")
	}
	if err := a.OpenStores(); err != nil {
		return err
	}

	a.checkAdminPin()
	a.checkCatalog()

	a.initJob()
	return nil
}

// InitLogger installs the global zap logger, optionally teeing JSON to a
// rotating file.
func InitLogger(cfg config.LogConfig) {
	var zapConfig zap.Config
	if cfg.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// OpenStores opens the key-value backend (unless overridden) and the stores
// on top of it. A failed boot write is logged and the process keeps the
// loaded state.
func (a *Application) OpenStores() error {
	cfg := a.appConfig
	if a.kv == nil {
		kv, err := kvstore.Open(cfg)
		if err != nil {
			return err
		}
		a.kv = kv
	}

	ids, err := catalog.NewSnowflakeIDs(cfg.Shop.NodeID)
	if err != nil {
		return err
	}
	a.catalog, err = catalog.Open(a.kv, a.bus, ids)
	if err != nil {
		zap.L().Error("catalog: boot write failed", zap.Error(err))
	}

	a.siteConfig, err = siteconfig.Open(a.kv, a.bus, a.siteDefaults())
	if err != nil {
		zap.L().Error("siteconfig: boot write failed", zap.Error(err))
	}

	a.sessions = session.NewRegistry(a.siteConfig, a.bus, cfg.Shop.Currency)
	a.subscribeAudit()
	return nil
}

func (a *Application) siteDefaults() siteconfig.Defaults {
	def := siteconfig.FactoryDefaults()
	if a.appConfig.Shop.DefaultPin != "" {
		def.AdminPin = a.appConfig.Shop.DefaultPin
	}
	if a.appConfig.Shop.DefaultContact != "" {
		def.ContactIdentifier = a.appConfig.Shop.DefaultContact
	}
	return def
}

// subscribeAudit logs every admin-side change.
func (a *Application) subscribeAudit() {
	audit := func(ch events.Change) {
		zap.L().Info("audit",
			zap.String("topic", ch.Topic),
			zap.String("action", ch.Action),
			zap.Int64("id", ch.ID))
	}
	for _, topic := range []string{events.TopicCatalog, events.TopicSiteConfig, events.TopicAuth} {
		if err := a.bus.Subscribe(topic, audit); err != nil {
			zap.L().Warn("audit subscribe failed", zap.String("topic", topic), zap.Error(err))
		}
	}
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			zap.L().Warn("kvstore close failed", zap.Error(err))
		}
	}
	_ = zap.L().Sync()
}

