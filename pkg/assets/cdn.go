package assets

import "strings"

const cloudinaryBaseURL = "https://res.cloudinary.com"

// CDN builds Cloudinary image delivery URLs for a single cloud.
type CDN struct {
	cloudName string
	defaults  Transforms
}

// NewCDN creates a URL builder for the given cloud. An empty cloud name
// falls back to DefaultCloudName.
func NewCDN(cloudName string) *CDN {
	cloudName = strings.TrimSpace(cloudName)
	if cloudName == "" {
		cloudName = DefaultCloudName
	}
	return &CDN{cloudName: cloudName, defaults: DefaultTransforms()}
}

// CloudName returns the cloud the builder targets.
func (c *CDN) CloudName() string { return c.cloudName }

// BaseURL returns the account root, as recorded in the manifest.
func (c *CDN) BaseURL() string {
	return cloudinaryBaseURL + "/" + c.cloudName
}

// UploadBaseURL returns the image delivery root without transformations.
func (c *CDN) UploadBaseURL() string {
	return c.BaseURL() + "/image/upload"
}

// URL returns the delivery URL for publicID with the default transforms
// merged with the given ones. When no transform serializes to a token the
// segment is omitted entirely.
func (c *CDN) URL(publicID string, transforms ...Transform) string {
	segment := c.defaults.Merge(transforms...).Segment()
	if segment == "" {
		return c.UploadBaseURL() + "/" + publicID
	}
	return c.UploadBaseURL() + "/" + segment + "/" + publicID
}
