package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/harbourspace/emails/pkg/assets"
)

// Uploader uploads one local file under a logical identifier.
type Uploader interface {
	Upload(ctx context.Context, localPath, publicID string) (assets.AssetInfo, error)
}

// CloudinaryAPI is the part of the Cloudinary upload API used here.
// *uploader.API satisfies it.
type CloudinaryAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader uploads assets into a fixed Cloudinary folder with
// automatic resource type detection and overwrite enabled.
type CloudinaryUploader struct {
	api     CloudinaryAPI
	folder  string
	quality string
}

// CloudinaryOption configures CloudinaryUploader.
type CloudinaryOption func(*CloudinaryUploader)

// WithCloudinaryAPI replaces the SDK client. Useful for testing with mocks.
func WithCloudinaryAPI(a CloudinaryAPI) CloudinaryOption {
	return func(u *CloudinaryUploader) {
		u.api = a
	}
}

// NewCloudinaryUploader creates an uploader from cfg.
func NewCloudinaryUploader(cfg Config, opts ...CloudinaryOption) (*CloudinaryUploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	u := &CloudinaryUploader{
		folder:  strings.Trim(cfg.Folder, "/"),
		quality: cfg.Quality,
	}
	if u.folder == "" {
		u.folder = assets.DefaultFolder
	}
	for _, opt := range opts {
		opt(u)
	}

	if u.api == nil {
		cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		u.api = &cld.Upload
	}

	return u, nil
}

// MustNewCloudinaryUploader is like NewCloudinaryUploader but panics on error.
func MustNewCloudinaryUploader(cfg Config, opts ...CloudinaryOption) *CloudinaryUploader {
	u, err := NewCloudinaryUploader(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Upload sends localPath to Cloudinary as <folder>/<publicID>.
func (u *CloudinaryUploader) Upload(ctx context.Context, localPath, publicID string) (assets.AssetInfo, error) {
	publicID = strings.Trim(publicID, "/")
	if publicID == "" || strings.Contains(publicID, "..") {
		return assets.AssetInfo{}, fmt.Errorf("%w: %q", ErrInvalidPublicID, publicID)
	}

	params := uploader.UploadParams{
		PublicID:     publicID,
		Folder:       u.folder,
		ResourceType: "auto",
		Overwrite:    api.Bool(true),
	}
	if u.quality != "" {
		params.Transformation = "q_" + u.quality
	}

	res, err := u.api.Upload(ctx, localPath, params)
	if err != nil {
		return assets.AssetInfo{}, fmt.Errorf("%w: %s: %v", ErrUploadFailed, localPath, err)
	}
	if res == nil {
		return assets.AssetInfo{}, fmt.Errorf("%w: %s: empty response", ErrUploadFailed, localPath)
	}
	if res.Error.Message != "" {
		return assets.AssetInfo{}, fmt.Errorf("%w: %s: %s", ErrUploadFailed, localPath, res.Error.Message)
	}

	info := assets.AssetInfo{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Format:   res.Format,
		Bytes:    int64(res.Bytes),
	}
	if res.Width > 0 {
		w := res.Width
		info.Width = &w
	}
	if res.Height > 0 {
		h := res.Height
		info.Height = &h
	}
	return info, nil
}
