package assets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/harbourspace/emails/pkg/logger"
)

// Loader loads the manifest from a store at most once and publishes the
// result as a shared read-only snapshot.
//
// Loading fails soft: a missing, unreadable or malformed manifest yields an
// empty snapshot, and the cause is logged once and kept in Err.
type Loader struct {
	store ManifestStore
	log   *slog.Logger

	once     sync.Once
	snapshot *Manifest
	err      error
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLogger sets the logger used to report load failures.
func WithLogger(l *slog.Logger) LoaderOption {
	return func(ld *Loader) {
		if l != nil {
			ld.log = l
		}
	}
}

// NewLoader creates a Loader reading from store.
func NewLoader(store ManifestStore, opts ...LoaderOption) *Loader {
	l := &Loader{store: store, log: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Snapshot returns the manifest, loading it on the first call. Subsequent
// calls return the same snapshot without touching the store.
func (l *Loader) Snapshot(ctx context.Context) *Manifest {
	l.once.Do(func() { l.load(ctx) })
	return l.snapshot
}

// Err returns the load failure, wrapped with ErrManifestUnavailable, or nil
// if the manifest loaded or has not been requested yet.
func (l *Loader) Err() error {
	return l.err
}

func (l *Loader) load(ctx context.Context) {
	log := l.log.With(logger.Component("assets.loader"))

	if l.store == nil {
		l.snapshot = NewManifest()
		l.err = fmt.Errorf("%w: no manifest store configured", ErrManifestUnavailable)
		log.WarnContext(ctx, "asset manifest store not configured, using empty manifest")
		return
	}

	m, err := l.store.Load(ctx)
	if err != nil {
		l.snapshot = NewManifest()
		l.err = errors.Join(ErrManifestUnavailable, err)
		if errors.Is(err, ErrManifestNotFound) {
			log.DebugContext(ctx, "asset manifest not found, using empty manifest", logger.Error(err))
			return
		}
		log.WarnContext(ctx, "failed to load asset manifest, using empty manifest", logger.Error(l.err))
		return
	}

	l.snapshot = m.Clone()
	log.DebugContext(ctx, "asset manifest loaded", logger.Count(l.snapshot.Len()))
}

// NewStore returns the manifest store described by cfg: an S3Store when a
// bucket is configured, a FileStore otherwise.
func NewStore(ctx context.Context, cfg Config, opts ...S3StoreOption) (ManifestStore, error) {
	if cfg.ManifestBucket == "" {
		return NewFileStore(cfg.ManifestPath), nil
	}
	return NewS3Store(ctx, S3StoreConfig{
		Bucket:         cfg.ManifestBucket,
		Key:            cfg.ManifestKey,
		Region:         cfg.ManifestRegion,
		Endpoint:       cfg.ManifestEndpoint,
		ForcePathStyle: cfg.ManifestEndpoint != "",
	}, opts...)
}
