package assets

import (
	"strings"

	"github.com/harbourspace/emails/pkg/environment"
)

// Resolver turns logical asset identifiers into URLs. Implementations never
// fail: unknown identifiers still produce a well-formed URL.
type Resolver interface {
	// Asset resolves a generic asset. Transforms are ignored in development.
	Asset(id string, transforms ...Transform) string
	// Logo resolves a brand logo variant.
	Logo(variant LogoVariant) Bundle
	// Icon resolves an icon at the given square size in pixels. Sizes <= 0
	// mean DefaultIconSize.
	Icon(name IconName, size int) Bundle
	// Image resolves a content image cropped to fill the given box. Zero
	// and negative dimensions are ignored and left to the CDN.
	Image(id string, width, height int) string
	// Critical returns the bundles every email needs, keyed as logo,
	// logoWhite and icon.
	Critical() map[string]Bundle
	// Uploaded reports whether id has a manifest record. It never changes
	// the URL Asset returns. Development resolvers always report false.
	Uploaded(id string) bool
}

// New returns the resolver for the environment named in cfg. The choice is
// made once here and never revisited. manifest may be nil; it is only
// consulted in production.
func New(cfg Config, manifest *Manifest) Resolver {
	if environment.Parse(cfg.Env).IsProduction() {
		return newCDNResolver(cfg, manifest)
	}
	return newDevResolver(cfg)
}

func critical(r Resolver) map[string]Bundle {
	return map[string]Bundle{
		"logo":      r.Logo(LogoMain),
		"logoWhite": r.Logo(LogoWhite),
		"icon":      r.Logo(LogoIcon),
	}
}

// lastSegment returns the part of id after the final slash.
func lastSegment(id string) string {
	return id[strings.LastIndex(id, "/")+1:]
}
