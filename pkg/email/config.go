package email

// Provider names an email delivery backend.
type Provider string

const (
	ProviderSendGrid Provider = "sendgrid"
	ProviderPostmark Provider = "postmark"
	ProviderDev      Provider = "dev"
)

// Config holds email service configuration.
// Provider tokens are optional so that development can run with the dev
// sender. DefaultFromEmail is required as it establishes the sender identity
// for all outbound emails; SupportEmail becomes the Reply-To when set.
type Config struct {
	Provider             Provider `env:"EMAIL_PROVIDER" envDefault:"sendgrid"`
	SendGridAPIKey       string   `env:"SENDGRID_API_KEY"`
	PostmarkServerToken  string   `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string   `env:"POSTMARK_ACCOUNT_TOKEN"`
	DefaultFromEmail     string   `env:"DEFAULT_FROM_EMAIL,required"`
	SupportEmail         string   `env:"SUPPORT_EMAIL"`
	DevDir               string   `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}
