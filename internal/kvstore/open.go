package kvstore

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/talkincode/storefront/config"
	"go.uber.org/zap"
)

// Open selects and opens the backend named by cfg.Storage.Type.
func Open(cfg *config.AppConfig) (Store, error) {
	st := cfg.Storage
	switch strings.ToLower(strings.TrimSpace(st.Type)) {
	case "", "bolt":
		path := BoltPath(cfg)
		zap.L().Info("kvstore: using bolt", zap.String("path", path))
		return OpenBolt(path)
	case "redis":
		zap.L().Info("kvstore: using redis", zap.String("addr", st.RedisAddr))
		return OpenRedis(st.RedisAddr, st.RedisPassword, st.RedisDB, st.Prefix)
	case "postgres", "postgresql":
		zap.L().Info("kvstore: using postgres")
		return OpenPostgres(st.Dsn, cfg.System.Debug)
	case "memory":
		zap.L().Warn("kvstore: using memory storage, nothing survives a restart")
		return NewMemoryStore(), nil
	default:
		return nil, errors.Errorf("unsupported storage type %q", st.Type)
	}
}

// OpenReadOnly opens the configured backend for reading only. A bolt file
// is opened read-only and a missing one yields an empty memory store; the
// postgres table is not migrated.
func OpenReadOnly(cfg *config.AppConfig) (Store, error) {
	st := cfg.Storage
	switch strings.ToLower(strings.TrimSpace(st.Type)) {
	case "", "bolt":
		kv, err := OpenBoltReadOnly(BoltPath(cfg))
		if errors.Is(err, os.ErrNotExist) {
			return NewMemoryStore(), nil
		}
		if err != nil {
			return nil, err
		}
		return kv, nil
	case "postgres", "postgresql":
		db, err := openGorm(st.Dsn, cfg.System.Debug)
		if err != nil {
			return nil, err
		}
		return &GormStore{db: db}, nil
	default:
		return Open(cfg)
	}
}

// BoltPath resolves the bolt file, relative paths living under the data dir.
func BoltPath(cfg *config.AppConfig) string {
	path := cfg.Storage.Path
	if path == "" {
		path = "storefront.db"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.GetDataDir(), path)
	}
	return path
}

// Backuper is implemented by backends able to write a full snapshot.
type Backuper interface {
	Backup(w io.Writer) (int64, error)
}
