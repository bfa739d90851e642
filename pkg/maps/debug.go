package maps

import (
	"fmt"
	"sort"
	"strings"

	"hex-settlers/internal/hex"
)

// Debug returns a string listing of the map, ring by ring.
func (m *Map) Debug() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Map: %s (%s)\n", m.Name, m.ID))
	sb.WriteString(fmt.Sprintf("Radius: %d\n", m.Radius))
	sb.WriteString(fmt.Sprintf("Tiles: %d\n", m.TileCount()))
	sb.WriteString(fmt.Sprintf("Ports: %d\n", m.PortCount()))

	for ring := 0; ring <= m.Radius; ring++ {
		sb.WriteString(fmt.Sprintf("\nRing %d:\n", ring))
		for _, c := range hex.Ring(hex.Cell{}, ring) {
			t := m.TileAt(c)
			if t == nil {
				continue
			}
			sb.WriteString(fmt.Sprintf("  %-12s %-7s", c, t.Resource))
			if t.Dice > 0 {
				sb.WriteString(fmt.Sprintf(" %2d", t.Dice))
			} else {
				sb.WriteString("  -")
			}
			for _, side := range sortedSides(t) {
				p := t.Ports[side]
				sb.WriteString(fmt.Sprintf("  port[%d] %s %d:%d", side, p.Resource, p.Give, p.Receive))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// ResourceCounts returns how many tiles of each terrain the map has.
func (m *Map) ResourceCounts() map[string]int {
	counts := make(map[string]int)
	for _, t := range m.Tiles {
		counts[t.Resource.String()]++
	}
	return counts
}

func sortedSides(t *TileSpec) []int {
	sides := make([]int, 0, len(t.Ports))
	for side := range t.Ports {
		sides = append(sides, side)
	}
	sort.Ints(sides)
	return sides
}
