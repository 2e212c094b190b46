// Package bboltstore implements ports.BaselineStore using bbolt (embedded
// B+ tree). Each named baseline gets its own top-level bucket; within it,
// one key per analyzed file holds that file's serialized report. Writes are
// transactional — a crash mid-save cannot corrupt a previously saved
// baseline.
package bboltstore

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Store implements ports.BaselineStore backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveBaseline replaces the named baseline with the given per-file reports.
// The replacement is atomic: readers see either the old baseline or the new
// one, never a mix.
func (s *Store) SaveBaseline(name string, files map[string][]byte) error {
	if name == "" {
		return fmt.Errorf("empty baseline name")
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(name)); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket([]byte(name))
		if err != nil {
			return err
		}
		for path, report := range files {
			if err := b.Put([]byte(path), report); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadBaseline retrieves the named baseline.
// Returns nil, nil if no baseline exists under that name.
func (s *Store) LoadBaseline(name string) (map[string][]byte, error) {
	var files map[string][]byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(name))
		if b == nil {
			return nil
		}
		files = make(map[string][]byte)
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		return b.ForEach(func(k, v []byte) error {
			report := make([]byte, len(v))
			copy(report, v)
			files[string(k)] = report
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteBaseline removes the named baseline.
// Idempotent: deleting a nonexistent baseline is not an error.
func (s *Store) DeleteBaseline(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket([]byte(name)); err == bolt.ErrBucketNotFound {
			return nil // idempotent
		} else {
			return err
		}
	})
}
