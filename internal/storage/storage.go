// Package storage keeps a local archive of fetched place details.
package storage

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned when no live record exists for a place ID.
var ErrNotFound = errors.New("place not archived")

// Record is one archived Place Details body.
type Record struct {
	PlaceID   string    `json:"place_id" yaml:"place_id"`
	SavedAt   time.Time `json:"saved_at" yaml:"saved_at"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
	Body      []byte    `json:"-" yaml:"-"`
}

// Store archives raw Place Details bodies by place ID.
type Store interface {
	Close() error
	SavePlace(id string, body []byte) error
	Place(id string) (Record, error)
	Places() ([]Record, error)
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	TTL             time.Duration
	CleanupInterval time.Duration
}

const (
	defaultTTL             = 30 * 24 * time.Hour
	defaultCleanupInterval = 12 * time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ, path string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "", "none", "disabled":
		return noopStore{}, nil
	case "bbolt":
		if strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("bbolt storage requires a path")
		}
		return openBolt(path, opts)
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                   { return nil }
func (noopStore) SavePlace(string, []byte) error { return nil }
func (noopStore) Place(string) (Record, error)   { return Record{}, ErrNotFound }
func (noopStore) Places() ([]Record, error)      { return nil, nil }
