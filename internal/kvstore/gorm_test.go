package kvstore

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	selectRecordSQL = `SELECT \* FROM "kv_record" WHERE record_key = \$1`
	upsertRecordSQL = `INSERT INTO "kv_record" \("record_key","value","updated_at"\) VALUES \(\$1,\$2,\$3\) ON CONFLICT \("record_key"\) DO UPDATE SET "value"=.*"updated_at"=`
)

var recordColumns = []string{"record_key", "value", "updated_at"}

func newMockGormStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &GormStore{db: db}, mock
}

func TestGormStoreMissingRecord(t *testing.T) {
	s, mock := newMockGormStore(t)
	mock.ExpectQuery(selectRecordSQL).WillReturnRows(sqlmock.NewRows(recordColumns))

	v, found, err := s.Get(KeyProducts)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStorePutUpsertsThenGetReturnsValue(t *testing.T) {
	s, mock := newMockGormStore(t)
	mock.ExpectExec(upsertRecordSQL).
		WithArgs(KeyAdminPin, "2468", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectRecordSQL).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(KeyAdminPin, "2468", time.Now()))

	require.NoError(t, s.Put(KeyAdminPin, []byte("2468")))
	v, found, err := s.Get(KeyAdminPin)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "2468", string(v))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreErrorsSurface(t *testing.T) {
	s, mock := newMockGormStore(t)
	down := errors.New("connection reset")
	mock.ExpectQuery(selectRecordSQL).WillReturnError(down)
	mock.ExpectExec(upsertRecordSQL).WillReturnError(down)

	_, found, err := s.Get(KeyProducts)
	require.Error(t, err)
	assert.False(t, found)

	err = Save(s, KeyProducts, []int{1})
	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "write", pe.Op)
	assert.True(t, errors.Is(err, down))
	assert.NoError(t, mock.ExpectationsWereMet())
}
