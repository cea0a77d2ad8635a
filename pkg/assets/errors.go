package assets

import "errors"

var (
	// Manifest errors
	ErrManifestUnavailable = errors.New("asset manifest unavailable")
	ErrManifestNotFound    = errors.New("asset manifest not found")
	ErrInvalidManifest     = errors.New("invalid asset manifest")
	ErrNilManifest         = errors.New("asset manifest is nil")

	// Store errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrAccessDenied       = errors.New("access denied")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
	ErrFailedToWrite      = errors.New("failed to write asset manifest")
)
