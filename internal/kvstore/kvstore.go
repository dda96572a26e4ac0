// Package kvstore is the durable key-value layer every persisted store
// writes through. Values are whole-document blobs; there is no partial
// update and no transaction spanning several keys.
package kvstore

import (
	"bytes"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// Persisted record names.
const (
	KeyProducts          = "products"
	KeyAdminPin          = "adminPin"
	KeyContactIdentifier = "contactIdentifier"
	KeySiteContent       = "siteContent"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is a durable string-keyed blob store.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) ([]byte, bool, error)
	// Put replaces any prior content for key.
	Put(key string, value []byte) error
	Close() error
}

// PersistenceError reports a failed serialisation or write. In-memory state
// of the caller has already been changed when it is returned.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Load decodes the value stored under key. A missing key, a JSON null, a
// read error or an undecodable blob yields fallback; Load never writes.
func Load[T any](s Store, key string, fallback T) T {
	data, found, err := s.Get(key)
	if err != nil {
		zap.L().Warn("kvstore: read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !found || isNull(data) {
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		zap.L().Warn("kvstore: undecodable record, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	return v
}

var jsonNull = []byte("null")

func isNull(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) == 0 || bytes.Equal(data, jsonNull)
}

// Save encodes value and writes it under key unconditionally.
func Save[T any](s Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	if err := s.Put(key, data); err != nil {
		return &PersistenceError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// LoadString returns the raw string stored under key, or fallback when the
// key is absent, empty or unreadable.
func LoadString(s Store, key, fallback string) string {
	data, found, err := s.Get(key)
	if err != nil {
		zap.L().Warn("kvstore: read failed, using fallback", zap.String("key", key), zap.Error(err))
		return fallback
	}
	if !found || len(data) == 0 {
		return fallback
	}
	return string(data)
}

// SaveString writes a plain string record.
func SaveString(s Store, key, value string) error {
	if err := s.Put(key, []byte(value)); err != nil {
		return &PersistenceError{Op: "write", Key: key, Err: err}
	}
	return nil
}
