// Package cache persists reconstruction results keyed by document
// fingerprint, so re-processing an unchanged document is a lookup
// instead of a full pipeline run.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"go.etcd.io/bbolt"

	"github.com/tsawler/tablature"
)

const bucketName = "results"

// ErrNotFound is returned when no entry exists for a key.
var ErrNotFound = errors.New("cache: entry not found")

// Entry is one cached reconstruction.
type Entry struct {
	Key       string            `json:"key"`
	CreatedAt time.Time         `json:"created_at"`
	Result    *tablature.Result `json:"result"`
}

// Store is a bbolt-backed result cache.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) a cache store at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Key derives a cache key from raw document bytes.
func Key(document []byte) string {
	sum := sha256.Sum256(document)
	return hex.EncodeToString(sum[:])
}

// Put stores a result under key, overwriting any previous entry.
func (s *Store) Put(key string, result *tablature.Result) error {
	entry := Entry{Key: key, CreatedAt: time.Now().UTC(), Result: result}
	data, err := sonic.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), data)
	})
}

// Get retrieves the result cached under key, or ErrNotFound.
func (s *Store) Get(key string) (*tablature.Result, error) {
	var entry Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if data == nil {
			return ErrNotFound
		}
		return sonic.Unmarshal(data, &entry)
	})
	if err != nil {
		return nil, err
	}
	return entry.Result, nil
}

// Delete removes the entry under key. Deleting a missing key is not an
// error.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
}

// Keys lists all cached keys.
func (s *Store) Keys() ([]string, error) {
	keys := make([]string, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
