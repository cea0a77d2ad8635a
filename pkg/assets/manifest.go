package assets

import (
	"maps"
	"slices"
)

// AssetInfo describes one uploaded asset as recorded in the manifest.
type AssetInfo struct {
	URL        string `json:"url"`
	PublicID   string `json:"publicId"`
	Width      *int   `json:"width,omitempty"`
	Height     *int   `json:"height,omitempty"`
	Format     string `json:"format"`
	Bytes      int64  `json:"bytes"`
	UploadedAt string `json:"uploadedAt"`
}

// Manifest maps logical asset identifiers to upload records.
//
// A Manifest returned by Loader.Snapshot is shared and must be treated as
// read-only. Use Clone to obtain a copy that can be modified.
type Manifest struct {
	LastUpdated string               `json:"lastUpdated"`
	BaseURL     string               `json:"baseUrl"`
	Assets      map[string]AssetInfo `json:"assets"`
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Assets: map[string]AssetInfo{}}
}

// Lookup returns the record for a logical identifier. It is safe to call on
// a nil manifest.
func (m *Manifest) Lookup(id string) (AssetInfo, bool) {
	if m == nil {
		return AssetInfo{}, false
	}
	info, ok := m.Assets[id]
	return info, ok
}

// All returns a copy of every record keyed by logical identifier.
func (m *Manifest) All() map[string]AssetInfo {
	if m == nil {
		return map[string]AssetInfo{}
	}
	return maps.Clone(m.Assets)
}

// IDs returns the logical identifiers in lexical order.
func (m *Manifest) IDs() []string {
	if m == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(m.Assets))
}

// Len reports the number of records.
func (m *Manifest) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Assets)
}

// Set stores a record. It must not be called on a published snapshot.
func (m *Manifest) Set(id string, info AssetInfo) {
	if m.Assets == nil {
		m.Assets = map[string]AssetInfo{}
	}
	m.Assets[id] = info
}

// Clone returns a deep copy of m.
func (m *Manifest) Clone() *Manifest {
	if m == nil {
		return NewManifest()
	}
	out := &Manifest{
		LastUpdated: m.LastUpdated,
		BaseURL:     m.BaseURL,
		Assets:      make(map[string]AssetInfo, len(m.Assets)),
	}
	for id, info := range m.Assets {
		if info.Width != nil {
			w := *info.Width
			info.Width = &w
		}
		if info.Height != nil {
			h := *info.Height
			info.Height = &h
		}
		out.Assets[id] = info
	}
	return out
}
