package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samvad-hq/gmaps/internal/config"
	"github.com/samvad-hq/gmaps/internal/logger"
	"github.com/samvad-hq/gmaps/internal/storage"
	"github.com/samvad-hq/gmaps/pkg/gmaps"
	"github.com/samvad-hq/gmaps/pkg/gmaps/places/details"
	"github.com/samvad-hq/gmaps/pkg/httpclient"
)

// Lookup is the place details runtime. It owns the details service and the
// lookup archive, and logs what it fetched.
type Lookup struct {
	cfg     *config.Config
	service *details.Service
	store   storage.Store
	log     logger.Logger
}

// Result is one fetched or archived Place Details reply.
type Result struct {
	Response *details.Response
	Raw      []byte
	Saved    bool
	// Archived is set when the result came from the local archive.
	Archived *storage.Record
}

// NewLookup builds the runtime from config. A nil transport selects the resty
// client configured with the http timeout and user agent.
func NewLookup(cfg *config.Config, transport httpclient.Client, log logger.Logger) (*Lookup, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if transport == nil {
		transport = httpclient.NewRestyClient(cfg.HTTPTimeout, httpclient.WithUserAgent(cfg.UserAgent))
	}

	creds := gmaps.Credentials{
		APIKey:     cfg.APIKey,
		ClientID:   cfg.ClientID,
		SigningKey: cfg.SigningKey,
	}
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("validate credentials: %w", err)
	}

	service := details.NewService(transport, cfg.BaseURI(), gmaps.WithCredentials(creds))
	log.InfoObj("details service initialized", "service_config", map[string]any{
		"base_uri":         service.BaseURI().String(),
		"client_signing":   creds.ClientID != "",
		"timeout_seconds":  int(cfg.HTTPTimeout.Seconds()),
		"user_agent":       cfg.UserAgent,
		"api_key_provided": creds.APIKey != "",
	})

	storeOpts := storage.Options{
		TTL:             cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	}
	store, err := storage.NewStore(cfg.StorageType, cfg.BBoltPath, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.DebugObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"path":                     cfg.BBoltPath,
		"ttl_seconds":              int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	return &Lookup{
		cfg:     cfg,
		service: service,
		store:   store,
		log:     log,
	}, nil
}

// Service exposes the underlying details service.
func (l *Lookup) Service() *details.Service { return l.service }

// Details fetches req once and decodes the body. With save set, OK replies
// are written to the archive under the returned place ID.
func (l *Lookup) Details(ctx context.Context, req *details.Request, save bool) (*Result, error) {
	if l == nil || l.service == nil {
		return nil, fmt.Errorf("lookup is not initialized")
	}

	wrapper, err := l.service.Response(req)
	if err != nil {
		return nil, fmt.Errorf("build details request: %w", err)
	}

	start := time.Now()
	text, err := wrapper.AsText(ctx)
	if err != nil {
		l.log.ErrorObj("place details fetch failed", "fetch_error", map[string]any{
			"uri":   httpclient.RedactURL(wrapper.URI()),
			"error": err.Error(),
		})
		return nil, fmt.Errorf("fetch place details: %w", err)
	}
	raw := []byte(text)

	resp, err := details.DecodeResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("decode place details: %w", err)
	}

	meta := map[string]any{
		"uri":        httpclient.RedactURL(wrapper.URI()),
		"status":     resp.Status.String(),
		"place_id":   resp.Result.PlaceID,
		"elapsed_ms": time.Since(start).Milliseconds(),
	}
	if resp.Status != gmaps.StatusOK {
		meta["error_message"] = resp.ErrorMessage
		meta["temporary"] = resp.Status.Temporary()
		l.log.WarnObj("place details returned non-OK status", "lookup_meta", meta)
		return &Result{Response: resp, Raw: raw}, nil
	}
	l.log.InfoObj("place details fetched", "lookup_meta", meta)

	result := &Result{Response: resp, Raw: raw}
	if save {
		id := resp.Result.PlaceID
		if id == "" {
			id = req.PlaceID
		}
		if err := l.store.SavePlace(id, raw); err != nil {
			return nil, fmt.Errorf("archive place %s: %w", id, err)
		}
		result.Saved = true
		l.log.DebugObj("place archived", "place_id", id)
	}
	return result, nil
}

// History lists archived places, newest first.
func (l *Lookup) History() ([]storage.Record, error) {
	if l == nil || l.store == nil {
		return nil, fmt.Errorf("lookup is not initialized")
	}
	recs, err := l.store.Places()
	if err != nil {
		return nil, fmt.Errorf("list archive: %w", err)
	}
	return recs, nil
}

// Archived decodes the archived reply for placeID.
func (l *Lookup) Archived(placeID string) (*Result, error) {
	if l == nil || l.store == nil {
		return nil, fmt.Errorf("lookup is not initialized")
	}
	placeID = strings.TrimSpace(placeID)
	rec, err := l.store.Place(placeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			l.log.DebugObj("archive miss", "place_id", placeID)
		}
		return nil, fmt.Errorf("load archived place %s: %w", placeID, err)
	}
	resp, err := details.DecodeResponse(rec.Body)
	if err != nil {
		return nil, fmt.Errorf("decode archived place %s: %w", placeID, err)
	}
	return &Result{Response: resp, Raw: rec.Body, Archived: &rec}, nil
}

// Close releases the archive, logging any errors encountered.
func (l *Lookup) Close() error {
	if l == nil || l.store == nil {
		return nil
	}
	if err := l.store.Close(); err != nil {
		l.log.ErrorObj("storage close failed", "error", err)
		return err
	}
	return nil
}
