// Package upload pushes local static assets to Cloudinary and records the
// results in the asset manifest consumed by package assets.
//
// A Service walks a list of Mappings (local file name to logical asset
// identifier), uploads every file that exists, and saves the manifest to a
// ManifestStore once all uploads succeed:
//
//	cfg := config.MustLoad[upload.Config]()
//	up, err := upload.NewCloudinaryUploader(cfg)
//	if err != nil {
//		return err
//	}
//	svc := upload.NewService(up, assets.NewFileStore("assets.json"),
//		upload.WithBaseURL(assets.NewCDN(cfg.CloudName).BaseURL()),
//	)
//	res, err := svc.UploadAll(ctx, "emails/static")
//
// Missing files are skipped with a warning. The first failed upload aborts
// the run and leaves the stored manifest untouched.
package upload
