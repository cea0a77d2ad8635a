package upload

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/harbourspace/emails/pkg/assets"
	"github.com/harbourspace/emails/pkg/logger"
)

// Result summarizes an UploadAll run.
type Result struct {
	// Created is set when the static directory did not exist and was
	// created. Nothing is uploaded in that case.
	Created  bool
	Uploaded []Mapping
	Skipped  []Mapping
	Manifest *assets.Manifest
}

// Entry is one manifest record as returned by List.
type Entry struct {
	ID   string
	Info assets.AssetInfo
}

// Service coordinates uploads and manifest persistence.
type Service struct {
	uploader Uploader
	store    assets.ManifestStore
	mappings []Mapping
	baseURL  string
	log      *slog.Logger
	now      func() time.Time
}

// ServiceOption configures Service.
type ServiceOption func(*Service)

// WithMappings replaces DefaultMappings.
func WithMappings(m []Mapping) ServiceOption {
	return func(s *Service) {
		if len(m) > 0 {
			s.mappings = m
		}
	}
}

// WithBaseURL sets the account base URL recorded in the manifest.
func WithBaseURL(u string) ServiceOption {
	return func(s *Service) { s.baseURL = u }
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source used for manifest timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates an upload service.
func NewService(u Uploader, store assets.ManifestStore, opts ...ServiceOption) *Service {
	s := &Service{
		uploader: u,
		store:    store,
		mappings: DefaultMappings(),
		baseURL:  assets.NewCDN("").BaseURL(),
		log:      logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("assets.upload"))
	return s
}

// UploadAll uploads every mapped file found in staticDir and replaces the
// stored manifest with the results.
func (s *Service) UploadAll(ctx context.Context, staticDir string) (*Result, error) {
	if _, err := os.Stat(staticDir); errors.Is(err, fs.ErrNotExist) {
		s.log.InfoContext(ctx, "static directory not found, creating it", logger.Path(staticDir))
		if err := os.MkdirAll(staticDir, 0o755); err != nil {
			return nil, fmt.Errorf("create static directory: %w", err)
		}
		return &Result{Created: true}, nil
	} else if err != nil {
		return nil, fmt.Errorf("stat static directory: %w", err)
	}

	manifest := s.newManifest()
	res := &Result{Manifest: manifest}

	for _, m := range s.mappings {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		localPath := filepath.Join(staticDir, m.Local)
		if !fileExists(localPath) {
			s.log.WarnContext(ctx, "file not found, skipping", logger.Path(localPath))
			res.Skipped = append(res.Skipped, m)
			continue
		}

		info, err := s.upload(ctx, localPath, m.PublicID)
		if err != nil {
			return nil, err
		}
		manifest.Set(m.PublicID, info)
		res.Uploaded = append(res.Uploaded, m)
	}

	if err := s.store.Save(ctx, manifest); err != nil {
		return nil, errors.Join(ErrManifestSave, err)
	}
	s.log.InfoContext(ctx, "asset manifest saved", logger.Count(manifest.Len()))
	return res, nil
}

// UploadFile uploads a single file and merges it into the stored manifest.
func (s *Service) UploadFile(ctx context.Context, localPath, publicID string) (assets.AssetInfo, error) {
	if !fileExists(localPath) {
		return assets.AssetInfo{}, fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
	}

	manifest, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, assets.ErrManifestNotFound) {
			return assets.AssetInfo{}, err
		}
		manifest = s.newManifest()
	}

	info, err := s.upload(ctx, localPath, publicID)
	if err != nil {
		return assets.AssetInfo{}, err
	}

	manifest.Set(publicID, info)
	manifest.LastUpdated = s.timestamp()
	if manifest.BaseURL == "" {
		manifest.BaseURL = s.baseURL
	}
	if err := s.store.Save(ctx, manifest); err != nil {
		return assets.AssetInfo{}, errors.Join(ErrManifestSave, err)
	}
	return info, nil
}

// List returns the stored manifest records ordered by identifier.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	manifest, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, assets.ErrManifestNotFound) {
			return nil, ErrNoManifest
		}
		return nil, err
	}

	entries := make([]Entry, 0, manifest.Len())
	for _, id := range manifest.IDs() {
		info, _ := manifest.Lookup(id)
		entries = append(entries, Entry{ID: id, Info: info})
	}
	return entries, nil
}

func (s *Service) upload(ctx context.Context, localPath, publicID string) (assets.AssetInfo, error) {
	log := s.log.With(logger.Path(localPath), logger.AssetID(publicID))
	log.InfoContext(ctx, "uploading asset")

	info, err := s.uploader.Upload(ctx, localPath, publicID)
	if err != nil {
		log.ErrorContext(ctx, "asset upload failed", logger.Error(err))
		return assets.AssetInfo{}, err
	}
	if info.UploadedAt == "" {
		info.UploadedAt = s.timestamp()
	}

	log.InfoContext(ctx, "asset uploaded", slog.String("url", info.URL))
	return info, nil
}

func (s *Service) newManifest() *assets.Manifest {
	m := assets.NewManifest()
	m.LastUpdated = s.timestamp()
	m.BaseURL = s.baseURL
	return m
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
