package storage

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

var localStorageBucket = []byte("local_storage")

// BoltStore keeps every key in a single bbolt bucket
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the bbolt file at path
func NewBoltStore(path string, timeout time.Duration) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(localStorageBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Get returns a copy of the stored value
func (s *BoltStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	var (
		value []byte
		found bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(localStorageBucket).Get([]byte(key))
		if data != nil {
			// bbolt memory is only valid inside the transaction
			value = make([]byte, len(data))
			copy(value, data)
			found = true
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

// Set overwrites key
func (s *BoltStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(localStorageBucket).Put([]byte(key), value)
	})
}

// Delete removes key
func (s *BoltStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(localStorageBucket).Delete([]byte(key))
	})
}

// Close closes the underlying file
func (s *BoltStore) Close() error {
	return s.db.Close()
}
