package maps

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// GeneratorOptions contains settings for map generation.
type GeneratorOptions struct {
	Radius int   // Rings around the center tile: 2-4
	Ports  int   // Harbor count, 0 picks one per three or so coastal sides
	Seed   int64 // Same seed, same map
}

// DefaultOptions returns the options for a standard-sized random map.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{Radius: 2, Ports: 9}
}

// Terrain and number decks for a radius-2 board. Larger boards repeat them.
var (
	terrainDeck = []string{
		"lumber", "lumber", "lumber", "lumber",
		"grain", "grain", "grain", "grain",
		"wool", "wool", "wool", "wool",
		"brick", "brick", "brick",
		"ore", "ore", "ore",
		"desert",
	}
	diceDeck = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}
)

// Generator handles procedural map generation.
type Generator struct {
	options GeneratorOptions
	rng     *rand.Rand
	cells   []hex.Cell
}

// NewGenerator creates a new map generator.
func NewGenerator(opts GeneratorOptions) *Generator {
	opts.Radius = clamp(opts.Radius, 2, 4)
	return &Generator{
		options: opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		cells:   hex.Spiral(hex.Cell{}, opts.Radius),
	}
}

// clamp restricts a value to a range
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Generate creates the map.
func (g *Generator) Generate() (*Map, error) {
	raw := &RawMap{
		ID:     fmt.Sprintf("gen_%d", g.options.Seed),
		Name:   "Generated Map",
		Radius: g.options.Radius,
	}

	terrain := g.terrain()
	dice := g.dice(terrain)

	next := 0
	for i, c := range g.cells {
		t := RawTile{Q: c.Q, R: c.R, Resource: terrain[i]}
		if terrain[i] != "desert" {
			t.Dice = dice[next]
			next++
		}
		raw.Tiles = append(raw.Tiles, t)
	}

	g.assignPorts(raw)
	return Process(raw)
}

func (g *Generator) terrain() []string {
	out := make([]string, len(g.cells))
	for i := range out {
		out[i] = terrainDeck[i%len(terrainDeck)]
	}
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// dice deals numbers to the producing tiles, reshuffling a bounded number
// of times to keep the 6s and 8s apart.
func (g *Generator) dice(terrain []string) []int {
	var producing []hex.Cell
	for i, c := range g.cells {
		if terrain[i] != "desert" {
			producing = append(producing, c)
		}
	}

	out := make([]int, len(producing))
	for i := range out {
		out[i] = diceDeck[i%len(diceDeck)]
	}

	for attempt := 0; attempt < 500; attempt++ {
		g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		if hotSpotsApart(producing, out) {
			break
		}
	}
	return out
}

func hotSpotsApart(cells []hex.Cell, dice []int) bool {
	hot := make(map[hex.Cell]bool)
	for i, c := range cells {
		if dice[i] == 6 || dice[i] == 8 {
			hot[c] = true
		}
	}
	for c := range hot {
		for _, n := range c.Neighbors() {
			if hot[n] {
				return false
			}
		}
	}
	return true
}

type coastSide struct {
	cell hex.Cell
	side int
}

// assignPorts spreads harbors evenly around the coast, walking it in angle
// order so consecutive picks never share a corner.
func (g *Generator) assignPorts(raw *RawMap) {
	onMap := make(map[hex.Cell]bool, len(g.cells))
	for _, c := range g.cells {
		onMap[c] = true
	}

	layout := hex.DefaultLayout()
	var coast []coastSide
	for _, c := range hex.Ring(hex.Cell{}, g.options.Radius) {
		for side := 0; side < 6; side++ {
			if !onMap[c.Neighbor(side)] {
				coast = append(coast, coastSide{c, side})
			}
		}
	}
	angle := func(s coastSide) float64 {
		p := layout.EdgeMidpoint(s.cell, s.side)
		return math.Atan2(p.Y, p.X)
	}
	sort.Slice(coast, func(i, j int) bool { return angle(coast[i]) < angle(coast[j]) })

	count := g.options.Ports
	if count <= 0 {
		count = len(coast) * 3 / 10
	}
	count = clamp(count, 0, len(coast)/2)
	if count == 0 {
		return
	}

	kinds := make([]string, count)
	for i := range kinds {
		kinds[i] = "any"
	}
	// Every other harbor is a 2:1 for one resource, in resource order
	for i, k := range resource.All {
		if i*2 < count {
			kinds[i*2] = k.String()
		}
	}
	g.rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	offset := g.rng.Intn(len(coast))
	tileIndex := make(map[hex.Cell]int, len(raw.Tiles))
	for i, t := range raw.Tiles {
		tileIndex[hex.NewCell(t.Q, t.R)] = i
	}
	for k := 0; k < count; k++ {
		s := coast[(offset+k*len(coast)/count)%len(coast)]
		t := &raw.Tiles[tileIndex[s.cell]]
		t.Ports = append(t.Ports, RawPort{Side: s.side, Resource: kinds[k]})
	}
}
