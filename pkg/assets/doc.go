// Package assets resolves logical asset identifiers into URLs that are
// correct for the running environment.
//
// In development every asset maps to a local path under the static prefix
// (by default /static), so emails render against files served by the preview
// server. In production identifiers become Cloudinary delivery URLs with an
// ordered transformation segment (automatic format, good quality, automatic
// device pixel ratio, plus caller transforms).
//
// The strategy is chosen once, when the Resolver is constructed:
//
//	cfg := config.MustLoad[assets.Config]()
//	manifest := assets.NewLoader(assets.NewFileStore(cfg.ManifestPath)).Snapshot(ctx)
//	resolver := assets.New(cfg, manifest)
//
//	logo := resolver.Logo(assets.LogoMain)
//	icon := resolver.Icon(assets.IconFacebook, 32)
//	hero := resolver.Image("images/events/test-asset", 600, 300)
//
// Resolution never fails. A missing or unreadable manifest is treated as
// empty and identifiers are mapped to the default folder instead.
//
// The manifest is a JSON document produced by the upload tool (see package
// upload). It can live on local disk (FileStore) or in an S3 bucket
// (S3Store). Loader memoizes the first load and publishes a read-only
// snapshot that is safe to share between goroutines.
package assets
