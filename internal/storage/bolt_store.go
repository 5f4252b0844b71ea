package storage

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	placeBucket = "places"
	// value layout: expiry unix (8 bytes) | saved unix (8 bytes) | body
	headerBytes = 16
)

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db              *bolt.DB
	cleanupMu       sync.Mutex
	lastCleanup     atomic.Int64
	ttl             time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string, opts Options) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(placeBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	store := &boltStore{
		db:              db,
		ttl:             opts.TTL,
		cleanupInterval: opts.CleanupInterval,
		now:             time.Now,
	}
	store.lastCleanup.Store(store.now().Unix())
	return store, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// SavePlace archives body under id, replacing any earlier record.
func (b *boltStore) SavePlace(id string, body []byte) error {
	if b == nil || b.db == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("save place: empty place id")
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(placeBucket))
		if bucket == nil {
			return fmt.Errorf("place bucket missing")
		}
		return bucket.Put([]byte(id), encodeRecord(now.Add(b.ttl), now, body))
	})
}

// Place returns the live record for id, or ErrNotFound.
func (b *boltStore) Place(id string) (Record, error) {
	if b == nil || b.db == nil {
		return Record{}, ErrNotFound
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return Record{}, err
	}

	var (
		rec   Record
		found bool
	)
	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(placeBucket))
		if bucket == nil {
			return fmt.Errorf("place bucket missing")
		}

		key := []byte(id)
		value := bucket.Get(key)
		if value == nil {
			return nil
		}

		decoded, ok := decodeRecord(id, value)
		if !ok || !decoded.ExpiresAt.After(now) {
			return bucket.Delete(key)
		}
		rec, found = decoded, true
		return nil
	})
	if err != nil {
		return Record{}, err
	}
	if !found {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Places lists live records, newest first.
func (b *boltStore) Places() ([]Record, error) {
	if b == nil || b.db == nil {
		return nil, nil
	}

	now := b.now()
	if err := b.maybeCleanupExpired(now); err != nil {
		return nil, err
	}

	var out []Record
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(placeBucket))
		if bucket == nil {
			return fmt.Errorf("place bucket missing")
		}
		return bucket.ForEach(func(k, v []byte) error {
			rec, ok := decodeRecord(string(k), v)
			if ok && rec.ExpiresAt.After(now) {
				out = append(out, rec)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].PlaceID < out[j].PlaceID
		}
		return out[i].SavedAt.After(out[j].SavedAt)
	})
	return out, nil
}

// maybeCleanupExpired removes expired records on a fixed cadence to avoid unbounded growth.
func (b *boltStore) maybeCleanupExpired(now time.Time) error {
	if b == nil || b.db == nil {
		return nil
	}

	last := time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	b.cleanupMu.Lock()
	defer b.cleanupMu.Unlock()

	last = time.Unix(b.lastCleanup.Load(), 0)
	if now.Sub(last) < b.cleanupInterval {
		return nil
	}

	err := b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(placeBucket))
		if bucket == nil {
			return fmt.Errorf("place bucket missing")
		}

		cursor := bucket.Cursor()
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			expiry, ok := decodeExpiry(v)
			if !ok || !expiry.After(now) {
				if err := cursor.Delete(); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err == nil {
		b.lastCleanup.Store(now.Unix())
	}
	return err
}

func encodeRecord(expiry, saved time.Time, body []byte) []byte {
	buf := make([]byte, headerBytes+len(body))
	binary.BigEndian.PutUint64(buf[0:8], uint64(expiry.Unix()))
	binary.BigEndian.PutUint64(buf[8:16], uint64(saved.Unix()))
	copy(buf[headerBytes:], body)
	return buf
}

// decodeRecord copies value out of the bbolt page; the slice is only valid
// for the life of the transaction.
func decodeRecord(id string, value []byte) (Record, bool) {
	expiry, ok := decodeExpiry(value)
	if !ok {
		return Record{}, false
	}
	saved := int64(binary.BigEndian.Uint64(value[8:16]))
	body := make([]byte, len(value)-headerBytes)
	copy(body, value[headerBytes:])
	return Record{
		PlaceID:   id,
		SavedAt:   time.Unix(saved, 0),
		ExpiresAt: expiry,
		Body:      body,
	}, true
}

// decodeExpiry decodes the expiry time from the stored byte slice.
func decodeExpiry(value []byte) (time.Time, bool) {
	if len(value) < headerBytes {
		return time.Time{}, false
	}
	unix := int64(binary.BigEndian.Uint64(value[0:8]))
	if unix <= 0 {
		return time.Time{}, false
	}
	return time.Unix(unix, 0), true
}
