// Package cli implements the hsmail command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/harbourspace/emails/internal/preview"
	"github.com/harbourspace/emails/pkg/assets"
	"github.com/harbourspace/emails/pkg/assets/upload"
	"github.com/harbourspace/emails/pkg/config"
	"github.com/harbourspace/emails/pkg/email"
	"github.com/harbourspace/emails/pkg/email/templates"
	"github.com/harbourspace/emails/pkg/environment"
	"github.com/harbourspace/emails/pkg/logger"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// app is the composition root shared by every command.
type app struct {
	envFile string
	verbose bool

	out    io.Writer
	log    *slog.Logger
	env    environment.Environment
	assets assets.Config

	// Constructors are fields so tests can substitute fakes.
	newUploader func(upload.Config) (upload.Uploader, error)
	newSender   func(email.Config) (email.EmailSender, error)
	newStore    func(context.Context, assets.Config) (assets.ManifestStore, error)
}

func newApp() *app {
	return &app{
		out: os.Stdout,
		log: logger.Discard(),
		env: environment.Development,
		newUploader: func(cfg upload.Config) (upload.Uploader, error) {
			return upload.NewCloudinaryUploader(cfg)
		},
		newSender: email.NewSender,
		newStore: func(ctx context.Context, cfg assets.Config) (assets.ManifestStore, error) {
			return assets.NewStore(ctx, cfg)
		},
	}
}

// NewRootCommand builds the hsmail command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(newApp())
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hsmail",
		Short: "Harbour.Space email toolkit",
		Long: styleTitle.Render("hsmail") + " - Harbour.Space transactional email toolkit\n\n" +
			"Upload email assets to the CDN, preview templates locally and send\n" +
			"rendered emails through the configured provider.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	cmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load variables from this .env file")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newAssetsCommand(a),
		newSendCommand(a),
		newPreviewCommand(a),
		newVersionCommand(a),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context) int {
	cmd := NewRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatError(err.Error()))
		return 1
	}
	return 0
}

// init loads the environment and builds the logger before any command runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	a.out = cmd.OutOrStdout()

	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.assets); err != nil {
		return fmt.Errorf("load asset config: %w", err)
	}
	a.env = environment.Parse(a.assets.Env)

	opts := []logger.Option{
		logger.WithEnvironment(a.env, "hsmail"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	if a.verbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	} else if !a.env.IsProductionLike() {
		opts = append(opts, logger.WithLevel(slog.LevelWarn))
	}
	a.log = logger.New(opts...)

	cmd.SetContext(environment.WithContext(cmd.Context(), a.env))
	return nil
}

// kit builds the template kit. The manifest is only consulted in production,
// where a missing or broken manifest degrades to folder-based CDN paths.
func (a *app) kit(ctx context.Context) *templates.Kit {
	var manifest *assets.Manifest
	if a.env.IsProduction() {
		store, err := a.newStore(ctx, a.assets)
		if err != nil {
			a.log.WarnContext(ctx, "asset manifest store unavailable", logger.Error(err))
		} else {
			manifest = assets.NewLoader(store, assets.WithLogger(a.log)).Snapshot(ctx)
		}
	}
	return templates.NewKit(assets.New(a.assets, manifest))
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hsmail version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.out, "hsmail %s (%s)\n", Version, a.env)
			return err
		},
	}
}

// templateNames is used for shell completion and help text.
func templateNames() []string {
	return preview.Names()
}
