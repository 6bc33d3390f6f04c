package store

import (
	"encoding/json"
	"log"

	bolt "go.etcd.io/bbolt"
)

// Collection keys. Every collection is stored as one JSON-encoded value
// under its own key, mirroring the layout the dashboards agree on.
const (
	KeyUsers      = "users"
	KeyDevoirs    = "devoirs"
	KeyNotes      = "notes"
	KeyEmploi     = "emploiDuTemps"
	KeyAppels     = "appels"
	KeySession    = "session"
	recordsBucket = "records"
)

// Store is the record store: a synchronous, string-keyed persistence layer
// where each value is one JSON-serialized collection. All reads and writes
// go through Load/Save; there is no partial update of a collection.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(recordsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the collection stored under key into v. It returns false when
// the key is absent or holds malformed JSON; v is left untouched so callers
// fall back to their documented default shape. A parse failure is logged
// and never propagated.
func (s *Store) Load(key string, v interface{}) bool {
	var raw []byte
	s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket([]byte(recordsBucket)).Get([]byte(key)); data != nil {
			raw = make([]byte, len(data))
			copy(raw, data)
		}
		return nil
	})
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("Malformed data under %q, using defaults: %v", key, err)
		return false
	}
	return true
}

// Save serializes v and persists it under key synchronously.
func (s *Store) Save(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Put([]byte(key), raw)
	})
}

// Delete removes the value stored under key, if any.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(recordsBucket)).Delete([]byte(key))
	})
}

// NextID returns a store-assigned stable identifier. Every user record gets
// one at creation time; nothing else generates identity.
func (s *Store) NextID() (int64, error) {
	var id uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		var err error
		id, err = tx.Bucket([]byte(recordsBucket)).NextSequence()
		return err
	})
	return int64(id), err
}
