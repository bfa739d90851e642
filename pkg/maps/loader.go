package maps

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
)

//go:embed data/*.json
var mapFiles embed.FS

// Registry holds all loaded maps.
var Registry = make(map[string]*Map)

// LoadAll loads all embedded maps.
func LoadAll() error {
	entries, err := mapFiles.ReadDir("data")
	if err != nil {
		return fmt.Errorf("failed to read map directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		mapData, err := Load(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to load map %s: %w", entry.Name(), err)
		}

		Registry[mapData.ID] = mapData
	}

	return nil
}

// Load loads a single embedded map by filename.
func Load(filename string) (*Map, error) {
	data, err := mapFiles.ReadFile(path.Join("data", filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	return LoadFromJSON(data)
}

// LoadFromJSON loads a map from JSON bytes (for custom maps).
func LoadFromJSON(data []byte) (*Map, error) {
	var raw RawMap
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse map JSON: %w", err)
	}

	m, err := Process(&raw)
	if err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}
	return m, nil
}

// Get retrieves a map from the registry by ID.
func Get(id string) *Map {
	return Registry[id]
}

// Register adds a map to the registry.
func Register(m *Map) {
	if m != nil && m.ID != "" {
		Registry[m.ID] = m
	}
}

// MapInfo contains basic map information for listing.
type MapInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Radius    int    `json:"radius"`
	TileCount int    `json:"tile_count"`
	PortCount int    `json:"port_count"`
}

// List returns all registered maps sorted by ID.
func List() []MapInfo {
	infos := make([]MapInfo, 0, len(Registry))
	for _, m := range Registry {
		infos = append(infos, MapInfo{
			ID:        m.ID,
			Name:      m.Name,
			Radius:    m.Radius,
			TileCount: m.TileCount(),
			PortCount: m.PortCount(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}
