package assets

import "strings"

// devResolver maps every asset to a file under the local static prefix.
type devResolver struct {
	prefix string
}

func newDevResolver(cfg Config) *devResolver {
	prefix := strings.TrimSuffix(cfg.StaticPrefix, "/")
	if cfg.StaticPrefix == "" {
		prefix = DefaultStaticPrefix
	}
	return &devResolver{prefix: prefix}
}

func (r *devResolver) static(name string) string {
	return r.prefix + "/" + name
}

func (r *devResolver) Asset(id string, _ ...Transform) string {
	return r.static(lastSegment(id) + ".png")
}

// Logo returns raster files for every field. The white file stands in for
// the icon variant, which has no local copy.
func (r *devResolver) Logo(variant LogoVariant) Bundle {
	name := "harbour-space-logo.png"
	if variant != LogoMain {
		name = "harbour-space-logo-white.png"
	}
	url := r.static(name)
	return Bundle{SVG: url, PNG: url, Default: url}
}

func (r *devResolver) Icon(name IconName, _ int) Bundle {
	png := r.static("mdi_" + string(name) + ".png")
	return Bundle{
		SVG:     r.static("mdi_" + string(name) + ".svg"),
		PNG:     png,
		Default: png,
	}
}

func (r *devResolver) Image(id string, _, _ int) string {
	return r.Asset(id)
}

func (r *devResolver) Critical() map[string]Bundle {
	return critical(r)
}

func (r *devResolver) Uploaded(string) bool { return false }
