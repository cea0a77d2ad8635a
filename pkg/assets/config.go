package assets

// Config holds asset resolution settings loaded from the environment.
type Config struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	CloudName    string `env:"CLOUDINARY_CLOUD_NAME" envDefault:"demo"`
	Folder       string `env:"ASSET_FOLDER" envDefault:"harbour-space-emails"`
	StaticPrefix string `env:"ASSET_STATIC_PREFIX" envDefault:"/static"`

	// Manifest location. When ManifestBucket is set the manifest is read from
	// S3, otherwise from ManifestPath on local disk.
	ManifestPath     string `env:"ASSET_MANIFEST_PATH" envDefault:"assets.json"`
	ManifestBucket   string `env:"ASSET_MANIFEST_BUCKET"`
	ManifestKey      string `env:"ASSET_MANIFEST_KEY" envDefault:"assets.json"`
	ManifestRegion   string `env:"ASSET_MANIFEST_REGION" envDefault:"eu-west-1"`
	ManifestEndpoint string `env:"ASSET_MANIFEST_ENDPOINT"`
}

// DefaultConfig returns the configuration used when nothing is set in the
// environment.
func DefaultConfig() Config {
	return Config{
		Env:          "development",
		CloudName:    DefaultCloudName,
		Folder:       DefaultFolder,
		StaticPrefix: DefaultStaticPrefix,
		ManifestPath: DefaultManifestPath,
		ManifestKey:  DefaultManifestPath,
	}
}
