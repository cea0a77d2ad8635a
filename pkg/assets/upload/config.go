package upload

import (
	"fmt"
	"strings"
)

// Config holds Cloudinary credentials and upload settings.
type Config struct {
	CloudName    string `env:"CLOUDINARY_CLOUD_NAME,required"`
	APIKey       string `env:"CLOUDINARY_API_KEY,required"`
	APISecret    string `env:"CLOUDINARY_API_SECRET,required"`
	Folder       string `env:"ASSET_FOLDER" envDefault:"harbour-space-emails"`
	Quality      string `env:"ASSET_UPLOAD_QUALITY" envDefault:"auto:good"`
	StaticDir    string `env:"ASSET_STATIC_DIR" envDefault:"emails/static"`
	MappingsFile string `env:"ASSET_MAPPINGS_FILE"`
}

// Validate reports every missing credential at once.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.CloudName) == "" {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if strings.TrimSpace(c.APIKey) == "" {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if strings.TrimSpace(c.APISecret) == "" {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	return nil
}
