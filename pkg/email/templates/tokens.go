package templates

import (
	"fmt"
	"html/template"
)

// Scale is a colour scale keyed by shade (50 to 950).
type Scale map[int]string

// Brand colour scales.
var (
	Purple = Scale{
		50: "#F4F2FF", 100: "#E1DBFF", 200: "#C1B4FF", 300: "#9A83FF", 400: "#7D51FF",
		500: "#6D2CF3", 600: "#5929B9", 700: "#4B2696", 800: "#3C1E75", 900: "#2B1751", 950: "#200745",
	}
	Neutral = Scale{
		50: "#FAFAFA", 100: "#F5F5F5", 200: "#E5E5E5", 300: "#D4D4D4", 400: "#A3A3A3",
		500: "#737373", 600: "#525252", 700: "#404040", 800: "#262626", 900: "#171717", 950: "#0A0A0A",
	}
	Green = Scale{
		50: "#ECFDF5", 100: "#D1FAE5", 200: "#A7F3D0", 300: "#6EE7B7", 400: "#34D399",
		500: "#10B981", 600: "#059669", 700: "#047857", 800: "#065F46", 900: "#064E3B", 950: "#022C22",
	}
	Gray = Scale{
		50: "#F9FAFB", 100: "#F3F4F6", 200: "#E5E7EB", 300: "#D1D5DB", 400: "#9CA3AF",
		500: "#6B7280", 600: "#4B5563", 700: "#374151", 800: "#1F2937", 900: "#111827",
	}
)

const (
	White = "#FFFFFF"
	Black = "#000000"
)

// Semantic colour aliases.
var Semantic = map[string]string{
	"textPrimary":   Gray[900],
	"textSecondary": Gray[600],
	"textTertiary":  Gray[500],
	"textMuted":     Gray[400],
	"bgPrimary":     White,
	"bgCard":        Gray[50],
	"bgMuted":       Gray[100],
	"borderDefault": Gray[200],
	"borderMuted":   Gray[100],
	"primary":       Purple[500],
	"primaryDark":   Purple[800],
	"primaryMedium": Purple[700],
	"success":       Green[500],
}

// Typography.
var (
	FontSize = map[string]string{
		"3xl": "32px", "2xl": "24px", "xl": "20px", "lg": "18px",
		"base": "16px", "sm": "14px", "xs": "12px", "xxs": "11px",
	}
	FontWeight = map[string]string{
		"light": "300", "normal": "400", "medium": "500", "semibold": "600", "bold": "700",
	}
	LineHeight = map[string]string{
		"tight": "1.25", "normal": "1.5", "relaxed": "1.6",
	}
)

// FontFamily is the font stack used by every email.
const FontFamily = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif`

// tokenFuncs exposes the design tokens to the view templates as CSS values.
// Unknown tokens panic during rendering so typos surface in tests.
func tokenFuncs() template.FuncMap {
	scale := func(name string, s Scale) func(int) template.CSS {
		return func(shade int) template.CSS {
			v, ok := s[shade]
			if !ok {
				panic(fmt.Sprintf("templates: unknown %s shade %d", name, shade))
			}
			return template.CSS(v)
		}
	}
	lookup := func(name string, m map[string]string) func(string) template.CSS {
		return func(key string) template.CSS {
			v, ok := m[key]
			if !ok {
				panic(fmt.Sprintf("templates: unknown %s token %q", name, key))
			}
			return template.CSS(v)
		}
	}

	return template.FuncMap{
		"purple":  scale("purple", Purple),
		"neutral": scale("neutral", Neutral),
		"green":   scale("green", Green),
		"gray":    scale("gray", Gray),
		"sem":     lookup("semantic", Semantic),
		"fs":      lookup("font size", FontSize),
		"fw":      lookup("font weight", FontWeight),
		"lh":      lookup("line height", LineHeight),
		"white":   func() template.CSS { return White },
		"font":    func() template.CSS { return FontFamily },
	}
}
