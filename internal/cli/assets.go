package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harbourspace/emails/pkg/assets"
	"github.com/harbourspace/emails/pkg/assets/upload"
	"github.com/harbourspace/emails/pkg/config"
)

func newAssetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage CDN assets and the asset manifest",
		Long: `Upload email assets to Cloudinary and inspect the asset manifest.

The manifest is stored in ASSET_MANIFEST_PATH, or in S3 when
ASSET_MANIFEST_BUCKET is set.`,
	}
	cmd.AddCommand(newAssetsUploadCommand(a), newAssetsListCommand(a))
	return cmd
}

func newAssetsUploadCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload [file public-id]",
		Short: "Upload all static assets, or a single file",
		Long: `Without arguments every mapped file in ASSET_STATIC_DIR is uploaded and
the manifest is replaced with the results. Missing files are skipped.

With a file and a public id only that file is uploaded and merged into
the existing manifest.`,
		Example: `  hsmail assets upload
  hsmail assets upload logo.png logos/new-logo`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or <file> <public-id>, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var cfg upload.Config
			if err := config.Load(&cfg); err != nil {
				return fmt.Errorf("%w: %v", upload.ErrInvalidConfig, err)
			}
			svc, err := a.uploadService(cmd, cfg)
			if err != nil {
				return err
			}

			if len(args) == 2 {
				info, err := svc.UploadFile(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(a.out, formatSuccess("Uploaded: "+info.URL))
				fmt.Fprintln(a.out, formatSuccess("Single file upload complete!"))
				return nil
			}

			fmt.Fprintln(a.out, formatRocket("Starting asset upload to Cloudinary..."))
			res, err := svc.UploadAll(ctx, cfg.StaticDir)
			if err != nil {
				return err
			}
			if res.Created {
				fmt.Fprintln(a.out, formatInfo("No static directory found, created "+cfg.StaticDir))
				return nil
			}
			for _, m := range res.Uploaded {
				info, _ := res.Manifest.Lookup(m.PublicID)
				fmt.Fprintln(a.out, formatSuccess("Uploaded: "+info.URL))
			}
			for _, m := range res.Skipped {
				fmt.Fprintln(a.out, formatWarning("File not found: "+m.Local))
			}
			fmt.Fprintln(a.out, formatSuccess("Upload complete! Assets are now available via the CDN."))
			fmt.Fprintln(a.out, formatMuted(fmt.Sprintf("Total assets: %d", res.Manifest.Len())))
			return nil
		},
	}
}

func newAssetsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the assets recorded in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := a.newStore(ctx, a.assets)
			if err != nil {
				return err
			}
			entries, err := upload.NewService(nil, store, upload.WithLogger(a.log)).List(ctx)
			if errors.Is(err, upload.ErrNoManifest) {
				fmt.Fprintln(a.out, formatInfo("No manifest found. Run upload first."))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, styleHeader.Render("Current assets in manifest:"))
			for _, e := range entries {
				fmt.Fprintf(a.out, "   %s -> %s\n", e.ID, e.Info.URL)
			}
			return nil
		},
	}
}

func (a *app) uploadService(cmd *cobra.Command, cfg upload.Config) (*upload.Service, error) {
	uploader, err := a.newUploader(cfg)
	if err != nil {
		return nil, err
	}
	store, err := a.newStore(cmd.Context(), a.assets)
	if err != nil {
		return nil, err
	}

	opts := []upload.ServiceOption{
		upload.WithLogger(a.log),
		upload.WithBaseURL(assets.NewCDN(cfg.CloudName).BaseURL()),
	}
	if cfg.MappingsFile != "" {
		mappings, err := upload.LoadMappings(cfg.MappingsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, upload.WithMappings(mappings))
	}
	return upload.NewService(uploader, store, opts...), nil
}
