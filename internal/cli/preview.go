package cli

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/spf13/cobra"

	"github.com/harbourspace/emails/internal/preview"
	"github.com/harbourspace/emails/pkg/config"
	"github.com/harbourspace/emails/pkg/httpserver"
)

func newPreviewCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve rendered emails for local preview",
		Long: `Start an HTTP server that renders every template with sample data.

Routes:
  /                  index of templates
  /preview/<name>    rendered email (?name=, ?event=, ?hours=, ?format=text)
  /static/*          files from ASSET_STATIC_DIR
  /health            liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var srvCfg httpserver.Config
			if err := config.Load(&srvCfg); err != nil {
				return err
			}
			var previewCfg preview.Config
			if err := config.Load(&previewCfg); err != nil {
				return err
			}

			opts := []httpserver.Option{
				httpserver.WithLogger(a.log),
				httpserver.WithStartHook(func(_ *slog.Logger, bound string) {
					fmt.Fprintln(a.out, formatRocket("Preview server running at "+previewURL(bound)))
				}),
			}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			srv := httpserver.NewFromConfig(srvCfg, opts...)

			handler := preview.New(a.kit(ctx),
				preview.WithStaticDir(previewCfg.StaticDir),
				preview.WithStaticPrefix(a.assets.StaticPrefix),
				preview.WithEnvironment(a.env),
				preview.WithLogger(a.log),
			).Handler()

			return srv.Run(ctx, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default PREVIEW_ADDR or :3000)")
	return cmd
}

// previewURL turns a bound listen address into a browsable URL.
func previewURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "::" || host == "0.0.0.0" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
