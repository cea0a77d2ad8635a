package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harbourspace/emails/internal/preview"
	"github.com/harbourspace/emails/pkg/config"
	"github.com/harbourspace/emails/pkg/email"
	"github.com/harbourspace/emails/pkg/logger"
)

type sendOptions struct {
	to      []string
	subject string
	name    string
	event   string
	hours   int
	dryRun  bool
}

func newSendCommand(a *app) *cobra.Command {
	var opts sendOptions

	cmd := &cobra.Command{
		Use:   "send <template>",
		Short: "Render a template and send it",
		Long: "Render one of the email templates with sample data and deliver it\n" +
			"through EMAIL_PROVIDER. --dry-run writes the email to EMAIL_DEV_DIR instead.\n\n" +
			"Templates: " + strings.Join(templateNames(), ", "),
		Example: `  hsmail send welcome --to alex@example.com --name Alex
  hsmail send reminder --to a@example.com --event webinar --hours 2 --dry-run`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: templateNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.send(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.to, "to", nil, "recipient address (repeatable)")
	cmd.Flags().StringVar(&opts.subject, "subject", "", "override the template subject")
	cmd.Flags().StringVar(&opts.name, "name", "", "recipient first name")
	cmd.Flags().StringVar(&opts.event, "event", "", "sample event: workshop, webinar or conference")
	cmd.Flags().IntVar(&opts.hours, "hours", 0, "hours until the event (reminder only)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "write the email to disk instead of sending")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) send(cmd *cobra.Command, name string, opts sendOptions) error {
	ctx := cmd.Context()

	entry, ok := preview.Find(name)
	if !ok {
		return fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(templateNames(), ", "))
	}
	for _, to := range opts.to {
		if !email.ValidAddress(to) {
			return fmt.Errorf("%w: invalid recipient %q", email.ErrInvalidParams, to)
		}
	}
	if opts.hours < 0 {
		return errors.New("--hours must not be negative")
	}

	var cfg email.Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("%w: %v", email.ErrInvalidConfig, err)
	}
	if opts.dryRun {
		cfg.Provider = email.ProviderDev
	}

	sender, err := a.newSender(cfg)
	if err != nil {
		return err
	}
	mailer := email.NewMailer(sender, cfg, email.WithLogger(a.log.With(logger.Provider(string(cfg.Provider)))))

	params := preview.Params{
		RecipientName: opts.name,
		Event:         opts.event,
		HoursUntil:    opts.hours,
	}
	subject := opts.subject
	if subject == "" {
		subject = entry.Subject(params)
	}

	id, err := mailer.Send(ctx, email.Envelope{
		To:      opts.to,
		Subject: subject,
		Tag:     entry.Tag,
	}, entry.Build(a.kit(ctx), params))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, formatSuccess(fmt.Sprintf("Sent %s to %s", entry.Name, strings.Join(opts.to, ", "))))
	fmt.Fprintln(a.out, formatMuted("Message ID: "+id))
	if dev, ok := sender.(*email.DevSender); ok {
		fmt.Fprintln(a.out, formatInfo("Saved to "+dev.Dir()))
	}
	return nil
}
