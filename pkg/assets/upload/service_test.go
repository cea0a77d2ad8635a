package upload_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harbourspace/emails/pkg/assets"
	"github.com/harbourspace/emails/pkg/assets/upload"
)

// MockUploader is a mock implementation of the Uploader interface
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, localPath, publicID string) (assets.AssetInfo, error) {
	args := m.Called(ctx, localPath, publicID)
	return args.Get(0).(assets.AssetInfo), args.Error(1)
}

var fixedNow = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func newService(up upload.Uploader, store assets.ManifestStore, opts ...upload.ServiceOption) *upload.Service {
	opts = append([]upload.ServiceOption{
		upload.WithClock(func() time.Time { return fixedNow }),
		upload.WithBaseURL("https://res.cloudinary.com/demo"),
	}, opts...)
	return upload.NewService(up, store, opts...)
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	return path
}

func TestService_UploadAll(t *testing.T) {
	t.Parallel()

	t.Run("uploads present files and skips missing", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		logo := touch(t, dir, "logo.svg")
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))

		up := new(MockUploader)
		up.On("Upload", mock.Anything, logo, "logos/main").
			Return(assets.AssetInfo{URL: "https://cdn/logo.svg", PublicID: "harbour-space-emails/logos/main"}, nil)

		svc := newService(up, store, upload.WithMappings([]upload.Mapping{
			{Local: "logo.svg", PublicID: "logos/main"},
			{Local: "absent.png", PublicID: "images/absent"},
		}))

		res, err := svc.UploadAll(context.Background(), dir)
		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, []upload.Mapping{{Local: "logo.svg", PublicID: "logos/main"}}, res.Uploaded)
		assert.Equal(t, []upload.Mapping{{Local: "absent.png", PublicID: "images/absent"}}, res.Skipped)
		up.AssertExpectations(t)

		saved, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "2025-01-15T10:00:00Z", saved.LastUpdated)
		assert.Equal(t, "https://res.cloudinary.com/demo", saved.BaseURL)
		info, ok := saved.Lookup("logos/main")
		require.True(t, ok)
		assert.Equal(t, "harbour-space-emails/logos/main", info.PublicID)
		assert.Equal(t, "2025-01-15T10:00:00Z", info.UploadedAt)
	})

	t.Run("missing static directory is created", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "emails", "static")
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))
		up := new(MockUploader)

		res, err := newService(up, store).UploadAll(context.Background(), dir)
		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.DirExists(t, dir)
		up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)

		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, assets.ErrManifestNotFound)
	})

	t.Run("upload failure aborts without saving", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		touch(t, dir, "a.png")
		touch(t, dir, "b.png")
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))

		up := new(MockUploader)
		up.On("Upload", mock.Anything, filepath.Join(dir, "a.png"), "images/a").
			Return(assets.AssetInfo{}, upload.ErrUploadFailed)

		svc := newService(up, store, upload.WithMappings([]upload.Mapping{
			{Local: "a.png", PublicID: "images/a"},
			{Local: "b.png", PublicID: "images/b"},
		}))

		_, err := svc.UploadAll(context.Background(), dir)
		assert.ErrorIs(t, err, upload.ErrUploadFailed)
		up.AssertNumberOfCalls(t, "Upload", 1)

		_, err = store.Load(context.Background())
		assert.ErrorIs(t, err, assets.ErrManifestNotFound)
	})
}

type failingStore struct {
	assets.ManifestStore
}

func (failingStore) Save(context.Context, *assets.Manifest) error { return errors.New("read-only") }

func TestService_UploadAll_SaveError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	svc := newService(new(MockUploader), failingStore{}, upload.WithMappings([]upload.Mapping{
		{Local: "none.png", PublicID: "images/none"},
	}))

	_, err := svc.UploadAll(context.Background(), dir)
	assert.ErrorIs(t, err, upload.ErrManifestSave)
}

func TestService_UploadFile(t *testing.T) {
	t.Parallel()

	t.Run("merges into existing manifest", func(t *testing.T) {
		t.Parallel()
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))
		existing := assets.NewManifest()
		existing.BaseURL = "https://res.cloudinary.com/demo"
		existing.Set("icons/map", assets.AssetInfo{PublicID: "harbour-space-emails/icons/map"})
		require.NoError(t, store.Save(context.Background(), existing))

		path := touch(t, t.TempDir(), "new-logo.png")
		up := new(MockUploader)
		up.On("Upload", mock.Anything, path, "logos/new-logo").
			Return(assets.AssetInfo{PublicID: "harbour-space-emails/logos/new-logo"}, nil)

		info, err := newService(up, store).UploadFile(context.Background(), path, "logos/new-logo")
		require.NoError(t, err)
		assert.Equal(t, "harbour-space-emails/logos/new-logo", info.PublicID)

		saved, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"icons/map", "logos/new-logo"}, saved.IDs())
		assert.Equal(t, "2025-01-15T10:00:00Z", saved.LastUpdated)
	})

	t.Run("creates manifest when none exists", func(t *testing.T) {
		t.Parallel()
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))
		path := touch(t, t.TempDir(), "x.png")
		up := new(MockUploader)
		up.On("Upload", mock.Anything, path, "images/x").Return(assets.AssetInfo{PublicID: "f/x"}, nil)

		_, err := newService(up, store).UploadFile(context.Background(), path, "images/x")
		require.NoError(t, err)

		saved, err := store.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://res.cloudinary.com/demo", saved.BaseURL)
		assert.Equal(t, 1, saved.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))
		up := new(MockUploader)

		_, err := newService(up, store).UploadFile(context.Background(), filepath.Join(t.TempDir(), "nope.png"), "images/nope")
		assert.ErrorIs(t, err, upload.ErrFileNotFound)
		up.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_List(t *testing.T) {
	t.Parallel()

	t.Run("sorted entries", func(t *testing.T) {
		t.Parallel()
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))
		m := assets.NewManifest()
		m.Set("logos/harbour-space-logo", assets.AssetInfo{URL: "https://cdn/logo"})
		m.Set("icons/facebook", assets.AssetInfo{URL: "https://cdn/fb"})
		require.NoError(t, store.Save(context.Background(), m))

		entries, err := newService(new(MockUploader), store).List(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "icons/facebook", entries[0].ID)
		assert.Equal(t, "https://cdn/fb", entries[0].Info.URL)
		assert.Equal(t, "logos/harbour-space-logo", entries[1].ID)
	})

	t.Run("no manifest", func(t *testing.T) {
		t.Parallel()
		store := assets.NewFileStore(filepath.Join(t.TempDir(), "assets.json"))
		_, err := newService(new(MockUploader), store).List(context.Background())
		assert.ErrorIs(t, err, upload.ErrNoManifest)
	})
}
