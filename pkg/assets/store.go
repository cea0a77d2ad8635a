package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ManifestStore persists the asset manifest.
type ManifestStore interface {
	// Load reads the manifest. It returns ErrManifestNotFound when nothing
	// has been stored yet.
	Load(ctx context.Context) (*Manifest, error)
	// Save replaces the stored manifest.
	Save(ctx context.Context, m *Manifest) error
}

// FileStore keeps the manifest as a JSON file on local disk.
type FileStore struct {
	path string
}

// NewFileStore creates a store for the file at path. An empty path falls
// back to DefaultManifestPath.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultManifestPath
	}
	return &FileStore{path: path}
}

// Path returns the manifest file path.
func (s *FileStore) Path() string { return s.path }

// Load reads and decodes the manifest file.
func (s *FileStore) Load(ctx context.Context) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, s.path)
		}
		return nil, fmt.Errorf("read manifest %s: %w", s.path, err)
	}

	return decodeManifest(data)
}

// Save writes the manifest as indented JSON. The file is replaced
// atomically so concurrent readers never observe a partial document.
func (s *FileStore) Save(ctx context.Context, m *Manifest) error {
	if m == nil {
		return ErrNilManifest
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeManifest(m)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".assets-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	return nil
}

func decodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Assets == nil {
		m.Assets = map[string]AssetInfo{}
	}
	return &m, nil
}

func encodeManifest(m *Manifest) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return append(data, '\n'), nil
}
