package assets

import "strings"

// cdnResolver maps assets to Cloudinary delivery URLs under a fixed folder.
type cdnResolver struct {
	cdn      *CDN
	folder   string
	manifest *Manifest
}

func newCDNResolver(cfg Config, manifest *Manifest) *cdnResolver {
	folder := strings.Trim(cfg.Folder, "/")
	if folder == "" {
		folder = DefaultFolder
	}
	if manifest == nil {
		manifest = NewManifest()
	}
	return &cdnResolver{
		cdn:      NewCDN(cfg.CloudName),
		folder:   folder,
		manifest: manifest,
	}
}

// publicID returns <folder>/<id>. A manifest hit and a miss produce the
// same remote id; the manifest only tells whether the asset was uploaded.
func (r *cdnResolver) publicID(id string) string {
	return r.folder + "/" + id
}

func (r *cdnResolver) Uploaded(id string) bool {
	_, ok := r.manifest.Lookup(id)
	return ok
}

func (r *cdnResolver) Asset(id string, transforms ...Transform) string {
	return r.cdn.URL(r.publicID(id), transforms...)
}

func (r *cdnResolver) Logo(variant LogoVariant) Bundle {
	svgID, ok := logoIDs[variant]
	if !ok {
		svgID = logoIDs[LogoMain]
	}
	pngID := svgID + fallbackSuffix

	return Bundle{
		SVG:     r.Asset(svgID, Format("svg")),
		PNG:     r.Asset(pngID, Height(LogoHeight), Format("png"), Quality("auto:best"), Flag("png8")),
		Default: r.Asset(pngID, Height(LogoHeight), Format("png"), Quality("auto:best")),
	}
}

func (r *cdnResolver) Icon(name IconName, size int) Bundle {
	if size <= 0 {
		size = DefaultIconSize
	}
	svgID := "icons/" + string(name)
	pngID := svgID + fallbackSuffix

	return Bundle{
		SVG:     r.Asset(svgID, Format("svg"), Width(size), Height(size)),
		PNG:     r.Asset(pngID, Format("png"), Width(size), Height(size), Quality("auto:good")),
		Default: r.Asset(pngID, Format("png"), Width(size), Height(size)),
	}
}

func (r *cdnResolver) Image(id string, width, height int) string {
	transforms := make([]Transform, 0, 4)
	if width > 0 {
		transforms = append(transforms, Width(width))
	}
	if height > 0 {
		transforms = append(transforms, Height(height))
	}
	transforms = append(transforms, Crop("fill"), Gravity("auto"))
	return r.Asset(id, transforms...)
}

func (r *cdnResolver) Critical() map[string]Bundle {
	return critical(r)
}
