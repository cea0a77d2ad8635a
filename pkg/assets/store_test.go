package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourspace/emails/pkg/assets"
)

const sampleManifest = `{
  "lastUpdated": "2025-01-15T10:00:00Z",
  "baseUrl": "https://res.cloudinary.com/demo",
  "assets": {
    "logos/harbour-space-logo": {
      "url": "https://res.cloudinary.com/demo/image/upload/v1/harbour-space-emails/logos/harbour-space-logo.svg",
      "publicId": "harbour-space-emails/logos/harbour-space-logo",
      "width": 200,
      "height": 48,
      "format": "svg",
      "bytes": 5120,
      "uploadedAt": "2025-01-15T10:00:00Z"
    }
  }
}`

func TestFileStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "assets.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

		m, err := assets.NewFileStore(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo", m.BaseURL)
		assert.Equal(t, 1, m.Len())

		info, ok := m.Lookup("logos/harbour-space-logo")
		require.True(t, ok)
		assert.Equal(t, "harbour-space-emails/logos/harbour-space-logo", info.PublicID)
		require.NotNil(t, info.Width)
		assert.Equal(t, 200, *info.Width)
		assert.Equal(t, int64(5120), info.Bytes)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := assets.NewFileStore(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
		assert.ErrorIs(t, err, assets.ErrManifestNotFound)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "assets.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := assets.NewFileStore(path).Load(context.Background())
		assert.ErrorIs(t, err, assets.ErrInvalidManifest)
	})

	t.Run("assets key absent", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "assets.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"lastUpdated":"x"}`), 0o644))

		m, err := assets.NewFileStore(path).Load(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, m.Assets)
		assert.Equal(t, 0, m.Len())
	})
}

func TestFileStore_SaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "assets.json")
	store := assets.NewFileStore(path)

	w := 24
	m := assets.NewManifest()
	m.LastUpdated = "2025-01-15T10:00:00Z"
	m.BaseURL = "https://res.cloudinary.com/demo"
	m.Set("icons/facebook", assets.AssetInfo{PublicID: "harbour-space-emails/icons/facebook", Width: &w, Format: "svg"})

	require.NoError(t, store.Save(context.Background(), m))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"publicId": "harbour-space-emails/icons/facebook"`)
	assert.NotContains(t, string(raw), `"height"`)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestFileStore_SaveNil(t *testing.T) {
	t.Parallel()

	err := assets.NewFileStore(filepath.Join(t.TempDir(), "a.json")).Save(context.Background(), nil)
	assert.ErrorIs(t, err, assets.ErrNilManifest)
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "assets.json", assets.NewFileStore("").Path())
}

func TestManifest_NilSafe(t *testing.T) {
	t.Parallel()

	var m *assets.Manifest
	_, ok := m.Lookup("x")
	assert.False(t, ok)
	assert.Empty(t, m.All())
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.IDs())
	assert.NotNil(t, m.Clone())
}

func TestManifest_AllAndCloneAreCopies(t *testing.T) {
	t.Parallel()

	h := 48
	m := assets.NewManifest()
	m.Set("b", assets.AssetInfo{PublicID: "f/b", Height: &h})
	m.Set("a", assets.AssetInfo{PublicID: "f/a"})

	all := m.All()
	delete(all, "a")
	assert.Equal(t, 2, m.Len())

	clone := m.Clone()
	*clone.Assets["b"].Height = 10
	assert.Equal(t, 48, *m.Assets["b"].Height)

	assert.Equal(t, []string{"a", "b"}, m.IDs())
}
