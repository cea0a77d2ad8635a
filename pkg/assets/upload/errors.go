package upload

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid cloudinary configuration")
	ErrInvalidMapping  = errors.New("invalid asset mapping")
	ErrFileNotFound    = errors.New("file not found")
	ErrUploadFailed    = errors.New("asset upload failed")
	ErrNoManifest      = errors.New("no manifest found, run upload first")
	ErrManifestSave    = errors.New("failed to save asset manifest")
	ErrInvalidPublicID = errors.New("invalid public id")
)
