package kvstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// KvRecord is one persisted record in the relational backend.
type KvRecord struct {
	RecordKey string    `gorm:"column:record_key;primaryKey;size:128"`
	Value     string    `gorm:"column:value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName Specify table name
func (KvRecord) TableName() string {
	return "kv_record"
}

// GormStore persists records in a single relational table.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore migrates the record table on db.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&KvRecord{}); err != nil {
		return nil, errors.Wrap(err, "migrate kv_record")
	}
	return &GormStore{db: db}, nil
}

// OpenPostgres connects with dsn and migrates the record table.
func OpenPostgres(dsn string, debug bool) (*GormStore, error) {
	db, err := openGorm(dsn, debug)
	if err != nil {
		return nil, err
	}
	return NewGormStore(db)
}

func openGorm(dsn string, debug bool) (*gorm.DB, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	return db, nil
}

func (g *GormStore) Get(key string) ([]byte, bool, error) {
	var rec KvRecord
	err := g.db.Where("record_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "select %s", key)
	}
	return []byte(rec.Value), true, nil
}

func (g *GormStore) Put(key string, value []byte) error {
	rec := KvRecord{RecordKey: key, Value: string(value), UpdatedAt: time.Now()}
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	return errors.Wrapf(err, "upsert %s", key)
}

func (g *GormStore) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
