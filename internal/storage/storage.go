// Package storage persists JSON documents under string keys on the local machine.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Get when no document is stored under the key
var ErrNotFound = errors.New("document not found")

// Store is a key/value store for whole JSON documents. Put replaces any
// previous document atomically; the last write wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Open returns the store for the named backend rooted at dataDir
func Open(backend, dataDir string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(dataDir)
	case BackendSQLite:
		return OpenSQLite(dataDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

func checkKey(key string) error {
	if !keyPattern.MatchString(key) {
		return &StoreError{Op: "key", Key: key, Message: "invalid key"}
	}
	return nil
}
