package upload

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping binds a file in the static directory to the logical identifier it
// is uploaded under.
type Mapping struct {
	Local    string `yaml:"local"`
	PublicID string `yaml:"public_id"`
}

// DefaultMappings returns the built-in table of brand assets: logos, social
// icons, UI icons and the sample event image.
func DefaultMappings() []Mapping {
	m := []Mapping{
		{Local: "Logo_Purple.svg", PublicID: "logos/harbour-space-logo"},
		{Local: "Logo_White.svg", PublicID: "logos/harbour-space-logo-white"},
		{Local: "harbour-space-logo.png", PublicID: "logos/harbour-space-logo-fallback"},
		{Local: "harbour-space-logo-white.png", PublicID: "logos/harbour-space-logo-white-fallback"},
	}
	for _, name := range []string{"facebook", "instagram", "linkedin", "tiktok", "youtube"} {
		m = append(m,
			Mapping{Local: "mdi_" + name + ".svg", PublicID: "icons/" + name},
			Mapping{Local: "mdi_" + name + ".png", PublicID: "icons/" + name + "-fallback"},
		)
	}
	return append(m,
		Mapping{Local: "mdi_map.svg", PublicID: "icons/map"},
		Mapping{Local: "event-test-asset.png", PublicID: "images/events/test-asset"},
	)
}

// LoadMappings reads a YAML list of mappings from path.
func LoadMappings(path string) ([]Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mappings %s: %w", path, err)
	}

	var mappings []Mapping
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapping, err)
	}
	if len(mappings) == 0 {
		return nil, fmt.Errorf("%w: %s has no entries", ErrInvalidMapping, path)
	}

	seen := make(map[string]string, len(mappings))
	for i, m := range mappings {
		if strings.TrimSpace(m.Local) == "" || strings.TrimSpace(m.PublicID) == "" {
			return nil, fmt.Errorf("%w: entry %d needs both local and public_id", ErrInvalidMapping, i)
		}
		if prev, ok := seen[m.PublicID]; ok {
			return nil, fmt.Errorf("%w: public_id %q used by %s and %s", ErrInvalidMapping, m.PublicID, prev, m.Local)
		}
		seen[m.PublicID] = m.Local
	}
	return mappings, nil
}
