package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/talkincode/storefront/internal/kvstore"
	"go.uber.org/zap"
)

const (
	backupPrefix = "storefront-"
	backupSuffix = ".db"
	backupKeep   = 7
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	_, err = a.sched.AddFunc("@every 1h", a.SchedLowStockReport)
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@every 10m", a.SchedSessionSweep)
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		if _, err := a.SchedBackupTask(); err != nil {
			zap.L().Error("backup failed", zap.Error(err))
		}
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedLowStockReport logs every product at or under its alert threshold.
func (a *Application) SchedLowStockReport() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	for _, p := range a.catalog.LowStock() {
		zap.L().Warn("low stock",
			zap.Int64("id", p.ID),
			zap.String("title", p.TitleFr),
			zap.Int("stock", p.Stock),
			zap.Int("alert", p.StockAlert))
	}
}

// SchedSessionSweep drops visitor sessions idle past the configured TTL.
func (a *Application) SchedSessionSweep() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()
	if n := a.sessions.Sweep(a.appConfig.Shop.SessionTTL); n > 0 {
		zap.L().Info("swept idle sessions", zap.Int("count", n), zap.Int("live", a.sessions.Len()))
	}
}

// SchedBackupTask writes a snapshot of the store into the backup directory
// and prunes old snapshots. Backends without snapshot support are skipped
// and yield an empty path.
func (a *Application) SchedBackupTask() (string, error) {
	b, ok := a.kv.(kvstore.Backuper)
	if !ok {
		zap.L().Debug("backup skipped, backend has no snapshot support")
		return "", nil
	}
	dir := a.appConfig.GetBackupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create backup dir")
	}
	name := filepath.Join(dir, fmt.Sprintf("%s%s%s", backupPrefix, time.Now().Format("20060102150405"), backupSuffix))
	f, err := os.Create(name)
	if err != nil {
		return "", errors.Wrap(err, "create backup file")
	}
	n, err := b.Backup(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(name)
		return "", errors.Wrapf(err, "write backup %s", name)
	}
	zap.L().Info("backup written", zap.String("file", name), zap.Int64("bytes", n))
	pruneBackups(dir, backupKeep)
	return name, nil
}

func pruneBackups(dir string, keep int) {
	files, err := filepath.Glob(filepath.Join(dir, backupPrefix+"*"+backupSuffix))
	if err != nil || len(files) <= keep {
		return
	}
	// timestamped names sort chronologically
	sort.Strings(files)
	for _, f := range files[:len(files)-keep] {
		if err := os.Remove(f); err != nil {
			zap.L().Warn("remove old backup failed", zap.String("file", f), zap.Error(err))
		}
	}
}
