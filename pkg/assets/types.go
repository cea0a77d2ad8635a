package assets

// LogoVariant selects one of the brand logo variants.
type LogoVariant string

const (
	LogoMain  LogoVariant = "main"
	LogoWhite LogoVariant = "white"
	LogoIcon  LogoVariant = "icon"
)

// IconName names an icon from the email icon set.
type IconName string

const (
	IconFacebook  IconName = "facebook"
	IconInstagram IconName = "instagram"
	IconLinkedIn  IconName = "linkedin"
	IconTikTok    IconName = "tiktok"
	IconYouTube   IconName = "youtube"
	IconMap       IconName = "map"
	IconCalendar  IconName = "calendar"
	IconClock     IconName = "clock"
)

// SocialIcons lists the icons rendered in the email footer, in display order.
var SocialIcons = []IconName{IconFacebook, IconInstagram, IconLinkedIn, IconTikTok, IconYouTube}

// Bundle holds the vector and raster URLs of one visual asset. Default is
// always the raster URL, since raster images are the only ones every email
// client renders.
type Bundle struct {
	SVG     string `json:"svg"`
	PNG     string `json:"png"`
	Default string `json:"default"`
}

const (
	DefaultCloudName    = "demo"
	DefaultFolder       = "harbour-space-emails"
	DefaultStaticPrefix = "/static"
	DefaultManifestPath = "assets.json"

	// DefaultIconSize is used when an icon is requested without a positive size.
	DefaultIconSize = 24
	// LogoHeight is the rendered height of raster logos, in pixels.
	LogoHeight = 48
)

// logoIDs maps each variant to its vector identifier. Raster identifiers
// carry an additional -fallback suffix.
var logoIDs = map[LogoVariant]string{
	LogoMain:  "logos/harbour-space-logo",
	LogoWhite: "logos/harbour-space-logo-white",
	LogoIcon:  "logos/harbour-space-icon",
}

const fallbackSuffix = "-fallback"
