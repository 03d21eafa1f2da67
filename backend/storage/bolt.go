package storage

import (
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var stateBucket = []byte("State")

// BoltStore keeps the state blob in a local bbolt file. This is the default
// backend: no server, one file next to the app.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the DB file and ensures the state bucket exists.
func OpenBolt(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() ([]byte, bool, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(stateBucket).Get([]byte(StateKey))
		if v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return data, data != nil, nil
}

func (s *BoltStore) Save(data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(StateKey), data)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
