package assets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourspace/emails/pkg/assets"
)

const cdnBase = "https://res.cloudinary.com/demo/image/upload/"

func devConfig() assets.Config {
	return assets.DefaultConfig()
}

func prodConfig() assets.Config {
	cfg := assets.DefaultConfig()
	cfg.Env = "production"
	return cfg
}

func TestDevResolver(t *testing.T) {
	t.Parallel()

	r := assets.New(devConfig(), nil)

	t.Run("asset uses last path segment", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/static/test-asset.png", r.Asset("images/events/test-asset"))
		assert.Equal(t, "/static/plain.png", r.Asset("plain"))
	})

	t.Run("asset ignores transforms", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/static/x.png", r.Asset("a/x", assets.Width(10), assets.Format("svg")))
	})

	t.Run("main logo", func(t *testing.T) {
		t.Parallel()
		b := r.Logo(assets.LogoMain)
		assert.Equal(t, assets.Bundle{
			SVG:     "/static/harbour-space-logo.png",
			PNG:     "/static/harbour-space-logo.png",
			Default: "/static/harbour-space-logo.png",
		}, b)
	})

	t.Run("white and icon logos share the white file", func(t *testing.T) {
		t.Parallel()
		want := "/static/harbour-space-logo-white.png"
		for _, v := range []assets.LogoVariant{assets.LogoWhite, assets.LogoIcon} {
			b := r.Logo(v)
			assert.Equal(t, want, b.SVG)
			assert.Equal(t, want, b.PNG)
			assert.Equal(t, want, b.Default)
		}
	})

	t.Run("icon", func(t *testing.T) {
		t.Parallel()
		b := r.Icon(assets.IconFacebook, 32)
		assert.Equal(t, "/static/mdi_facebook.svg", b.SVG)
		assert.Equal(t, "/static/mdi_facebook.png", b.PNG)
		assert.Equal(t, b.PNG, b.Default)
	})

	t.Run("image", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "/static/test-asset.png", r.Image("images/events/test-asset", 600, 300))
	})
}

func TestDevResolver_CustomPrefix(t *testing.T) {
	t.Parallel()

	cfg := devConfig()
	cfg.StaticPrefix = "/assets/"
	r := assets.New(cfg, nil)

	assert.Equal(t, "/assets/logo.png", r.Asset("logo"))
}

func TestDevResolver_IgnoresManifest(t *testing.T) {
	t.Parallel()

	m := assets.NewManifest()
	m.Set("images/hero", assets.AssetInfo{PublicID: "elsewhere/hero"})

	r := assets.New(devConfig(), m)
	assert.Equal(t, "/static/hero.png", r.Asset("images/hero"))
}

func TestCDNResolver_Asset(t *testing.T) {
	t.Parallel()

	t.Run("without manifest uses folder", func(t *testing.T) {
		t.Parallel()
		r := assets.New(prodConfig(), nil)
		assert.Equal(t,
			cdnBase+"f_auto,q_auto_good,dpr_auto/harbour-space-emails/images/anything",
			r.Asset("images/anything"))
	})

	t.Run("manifest hit resolves like a miss", func(t *testing.T) {
		t.Parallel()
		m := assets.NewManifest()
		m.Set("logos/harbour-space-logo", assets.AssetInfo{PublicID: "logos/harbour-space-logo"})
		m.Set("images/hero", assets.AssetInfo{PublicID: "campaigns/2025/hero"})

		hit := assets.New(prodConfig(), m)
		miss := assets.New(prodConfig(), nil)

		for _, id := range []string{"logos/harbour-space-logo", "images/hero"} {
			assert.Equal(t, miss.Asset(id), hit.Asset(id), id)
			assert.Equal(t, miss.Asset(id, assets.Width(10)), hit.Asset(id, assets.Width(10)), id)
		}
		assert.Equal(t,
			cdnBase+"f_auto,q_auto_good,dpr_auto/harbour-space-emails/logos/harbour-space-logo",
			hit.Asset("logos/harbour-space-logo"))
		assert.Equal(t, miss.Logo(assets.LogoMain), hit.Logo(assets.LogoMain))
	})

	t.Run("manifest record without public id falls back to folder", func(t *testing.T) {
		t.Parallel()
		m := assets.NewManifest()
		m.Set("images/hero", assets.AssetInfo{URL: "https://example.com/hero.png"})

		r := assets.New(prodConfig(), m)
		assert.Equal(t,
			cdnBase+"f_auto,q_auto_good,dpr_auto/harbour-space-emails/images/hero",
			r.Asset("images/hero"))
	})

	t.Run("caller override keeps default position", func(t *testing.T) {
		t.Parallel()
		r := assets.New(prodConfig(), nil)
		assert.Equal(t,
			cdnBase+"f_auto,q_auto_best,dpr_auto,w_10/harbour-space-emails/x",
			r.Asset("x", assets.T("q_auto", "best"), assets.Width(10)))
	})

	t.Run("cloud name from config", func(t *testing.T) {
		t.Parallel()
		cfg := prodConfig()
		cfg.CloudName = "hs"
		r := assets.New(cfg, nil)
		assert.True(t, strings.HasPrefix(r.Asset("x"), "https://res.cloudinary.com/hs/image/upload/"))
	})
}

func TestCDNResolver_Logo(t *testing.T) {
	t.Parallel()

	r := assets.New(prodConfig(), nil)

	b := r.Logo(assets.LogoMain)
	assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,f_svg/harbour-space-emails/logos/harbour-space-logo", b.SVG)
	assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,h_48,f_png,q_auto:best,fl_png8/harbour-space-emails/logos/harbour-space-logo-fallback", b.PNG)
	assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,h_48,f_png,q_auto:best/harbour-space-emails/logos/harbour-space-logo-fallback", b.Default)

	white := r.Logo(assets.LogoWhite)
	assert.True(t, strings.HasSuffix(white.SVG, "/logos/harbour-space-logo-white"))
	assert.True(t, strings.HasSuffix(white.PNG, "/logos/harbour-space-logo-white-fallback"))

	icon := r.Logo(assets.LogoIcon)
	assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,f_svg/harbour-space-emails/logos/harbour-space-icon", icon.SVG)
	assert.True(t, strings.HasSuffix(icon.PNG, "/harbour-space-emails/logos/harbour-space-icon-fallback"))
	assert.True(t, strings.HasSuffix(icon.Default, "/harbour-space-emails/logos/harbour-space-icon-fallback"))
	assert.Equal(t, icon, r.Critical()["icon"])
}

func TestCDNResolver_Icon(t *testing.T) {
	t.Parallel()

	r := assets.New(prodConfig(), nil)

	t.Run("explicit size", func(t *testing.T) {
		t.Parallel()
		b := r.Icon(assets.IconFacebook, 32)
		assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,f_svg,w_32,h_32/harbour-space-emails/icons/facebook", b.SVG)
		assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,f_png,w_32,h_32,q_auto:good/harbour-space-emails/icons/facebook-fallback", b.PNG)
		assert.Equal(t, cdnBase+"f_auto,q_auto_good,dpr_auto,f_png,w_32,h_32/harbour-space-emails/icons/facebook-fallback", b.Default)
	})

	t.Run("default size", func(t *testing.T) {
		t.Parallel()
		for _, size := range []int{0, -5} {
			b := r.Icon(assets.IconMap, size)
			assert.Contains(t, b.SVG, "w_24,h_24")
			assert.Contains(t, b.PNG, "w_24,h_24")
		}
	})
}

func TestCDNResolver_Image(t *testing.T) {
	t.Parallel()

	r := assets.New(prodConfig(), nil)

	tests := []struct {
		name          string
		width, height int
		want          string
	}{
		{name: "both", width: 600, height: 300, want: "f_auto,q_auto_good,dpr_auto,w_600,h_300,c_fill,g_auto"},
		{name: "width only", width: 600, want: "f_auto,q_auto_good,dpr_auto,w_600,c_fill,g_auto"},
		{name: "height only", height: 300, want: "f_auto,q_auto_good,dpr_auto,h_300,c_fill,g_auto"},
		{name: "neither", want: "f_auto,q_auto_good,dpr_auto,c_fill,g_auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := r.Image("images/events/test-asset", tt.width, tt.height)
			assert.Equal(t, cdnBase+tt.want+"/harbour-space-emails/images/events/test-asset", got)
		})
	}
}

func TestResolver_Critical(t *testing.T) {
	t.Parallel()

	for _, cfg := range []assets.Config{devConfig(), prodConfig()} {
		r := assets.New(cfg, nil)
		got := r.Critical()
		require.Len(t, got, 3)
		assert.Equal(t, r.Logo(assets.LogoMain), got["logo"])
		assert.Equal(t, r.Logo(assets.LogoWhite), got["logoWhite"])
		assert.Equal(t, r.Logo(assets.LogoIcon), got["icon"])
	}
}

func TestNew_StagingResolvesLocally(t *testing.T) {
	t.Parallel()

	cfg := devConfig()
	cfg.Env = "staging"
	r := assets.New(cfg, nil)
	assert.Equal(t, "/static/x.png", r.Asset("x"))
}

func TestResolver_BundlesAlwaysPopulated(t *testing.T) {
	t.Parallel()

	icons := []assets.IconName{
		assets.IconFacebook, assets.IconInstagram, assets.IconLinkedIn, assets.IconTikTok,
		assets.IconYouTube, assets.IconMap, assets.IconCalendar, assets.IconClock,
	}

	for _, cfg := range []assets.Config{devConfig(), prodConfig()} {
		r := assets.New(cfg, nil)
		for _, name := range icons {
			b := r.Icon(name, 0)
			assert.NotEmpty(t, b.SVG)
			assert.NotEmpty(t, b.PNG)
			assert.NotEmpty(t, b.Default)
			assert.NotContains(t, b.Default, "svg", "default is the raster variant")
		}
	}
}

func TestResolver_Uploaded(t *testing.T) {
	t.Parallel()

	m := assets.NewManifest()
	m.Set("images/hero", assets.AssetInfo{PublicID: "harbour-space-emails/images/hero"})

	prod := assets.New(prodConfig(), m)
	assert.True(t, prod.Uploaded("images/hero"))
	assert.False(t, prod.Uploaded("images/other"))

	assert.False(t, assets.New(devConfig(), m).Uploaded("images/hero"))
}

func TestResolver_Idempotent(t *testing.T) {
	t.Parallel()

	m := assets.NewManifest()
	m.Set("images/hero", assets.AssetInfo{PublicID: "harbour-space-emails/images/hero"})

	for name, cfg := range map[string]assets.Config{"development": devConfig(), "production": prodConfig()} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := assets.New(cfg, m)

			for _, id := range []string{"images/hero", "images/missing"} {
				assert.Equal(t, r.Asset(id, assets.Width(100), assets.Format("png")), r.Asset(id, assets.Width(100), assets.Format("png")), id)
				assert.Equal(t, r.Image(id, 600, 300), r.Image(id, 600, 300), id)
			}
			for _, v := range []assets.LogoVariant{assets.LogoMain, assets.LogoWhite, assets.LogoIcon} {
				assert.Equal(t, r.Logo(v), r.Logo(v), v)
			}
			assert.Equal(t, r.Icon(assets.IconMap, 32), r.Icon(assets.IconMap, 32))
			assert.Equal(t, r.Critical(), r.Critical())
		})
	}
}

func TestCDNResolver_ImageIgnoresNegativeSizes(t *testing.T) {
	t.Parallel()

	r := assets.New(prodConfig(), nil)
	assert.Equal(t, r.Image("images/hero", 0, 0), r.Image("images/hero", -5, -1))
	assert.Equal(t,
		cdnBase+"f_auto,q_auto_good,dpr_auto,h_200,c_fill,g_auto/harbour-space-emails/images/hero",
		r.Image("images/hero", -1, 200))
}
