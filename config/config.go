package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// SysConfig system configuration
type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

// WebConfig web server configuration
type WebConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Secret string `yaml:"secret"` // cookie signing key
}

// LogConfig logger configuration
type LogConfig struct {
	Mode       string `yaml:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

// StorageConfig selects the durable key-value backend.
type StorageConfig struct {
	Type          string `yaml:"type"` // bolt | redis | postgres | memory
	Path          string `yaml:"path"` // bolt file, relative to workdir
	Dsn           string `yaml:"dsn"`  // postgres
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
	Prefix        string `yaml:"prefix"` // redis key namespace
}

// ShopConfig storefront defaults
type ShopConfig struct {
	DefaultPin     string        `yaml:"default_pin"`
	DefaultContact string        `yaml:"default_contact"`
	Currency       string        `yaml:"currency"`
	NodeID         int64         `yaml:"node_id"` // snowflake node for product ids
	SessionTTL     time.Duration `yaml:"session_ttl"`
}

// AppConfig application configuration
type AppConfig struct {
	System  SysConfig     `yaml:"system"`
	Web     WebConfig     `yaml:"web"`
	Logger  LogConfig     `yaml:"logger"`
	Storage StorageConfig `yaml:"storage"`
	Shop    ShopConfig    `yaml:"shop"`
}

// GetDataDir returns the directory holding the bolt file.
func (c *AppConfig) GetDataDir() string {
	return filepath.Join(c.System.Workdir, "data")
}

// GetBackupDir returns the directory receiving store snapshots.
func (c *AppConfig) GetBackupDir() string {
	return filepath.Join(c.System.Workdir, "backup")
}

// GetLogDir returns the log directory.
func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

// InitDirs creates the working directories.
func (c *AppConfig) InitDirs() error {
	for _, dir := range []string{c.GetDataDir(), c.GetBackupDir(), c.GetLogDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	return nil
}

// DefaultAppConfig returns the configuration used when no file is given.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Appid:    "Storefront",
			Location: "Africa/Nouakchott",
			Workdir:  "/var/storefront",
		},
		Web: WebConfig{
			Host:   "0.0.0.0",
			Port:   1818,
			Secret: "9b6de5cc-0731-4bf1-storefront-cookie",
		},
		Logger: LogConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/storefront/logs/storefront.log",
		},
		Storage: StorageConfig{
			Type:   "bolt",
			Path:   "storefront.db",
			Prefix: "storefront:",
		},
		Shop: ShopConfig{
			DefaultPin:     "1313",
			DefaultContact: "22200000000",
			Currency:       "MRU",
			NodeID:         1,
			SessionTTL:     12 * time.Hour,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults and applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func setEnvValue(name string, fn func(v string)) {
	if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
		fn(strings.TrimSpace(v))
	}
}

func applyEnv(cfg *AppConfig) {
	setEnvValue("STOREFRONT_SYSTEM_WORKER_DIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("STOREFRONT_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvValue("STOREFRONT_SYSTEM_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })

	setEnvValue("STOREFRONT_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("STOREFRONT_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("STOREFRONT_WEB_SECRET", func(v string) { cfg.Web.Secret = v })

	setEnvValue("STOREFRONT_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("STOREFRONT_LOGGER_FILE_ENABLE", func(v string) { cfg.Logger.FileEnable = cast.ToBool(v) })
	setEnvValue("STOREFRONT_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })

	setEnvValue("STOREFRONT_STORAGE_TYPE", func(v string) { cfg.Storage.Type = strings.ToLower(v) })
	setEnvValue("STOREFRONT_STORAGE_PATH", func(v string) { cfg.Storage.Path = v })
	setEnvValue("STOREFRONT_STORAGE_DSN", func(v string) { cfg.Storage.Dsn = v })
	setEnvValue("STOREFRONT_STORAGE_REDIS_ADDR", func(v string) { cfg.Storage.RedisAddr = v })
	setEnvValue("STOREFRONT_STORAGE_REDIS_PASSWORD", func(v string) { cfg.Storage.RedisPassword = v })
	setEnvValue("STOREFRONT_STORAGE_REDIS_DB", func(v string) { cfg.Storage.RedisDB = cast.ToInt(v) })

	setEnvValue("STOREFRONT_SHOP_DEFAULT_PIN", func(v string) { cfg.Shop.DefaultPin = v })
	setEnvValue("STOREFRONT_SHOP_DEFAULT_CONTACT", func(v string) { cfg.Shop.DefaultContact = v })
	setEnvValue("STOREFRONT_SHOP_CURRENCY", func(v string) { cfg.Shop.Currency = v })
	setEnvValue("STOREFRONT_SHOP_NODE_ID", func(v string) { cfg.Shop.NodeID = cast.ToInt64(v) })
	setEnvValue("STOREFRONT_SHOP_SESSION_TTL", func(v string) { cfg.Shop.SessionTTL = cast.ToDuration(v) })
}
