package maps

import (
	"fmt"

	"hex-settlers/internal/board"
	"hex-settlers/internal/game"
	"hex-settlers/internal/hex"
	"hex-settlers/internal/resource"
)

// Process validates a raw map and converts it to runtime form.
func Process(raw *RawMap) (*Map, error) {
	if raw.ID == "" {
		return nil, fmt.Errorf("map ID is required")
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("map name is required")
	}
	if len(raw.Tiles) == 0 {
		return nil, fmt.Errorf("map has no tiles")
	}

	m := &Map{
		ID:     raw.ID,
		Name:   raw.Name,
		Radius: raw.Radius,
		byCell: make(map[hex.Cell]*TileSpec, len(raw.Tiles)),
	}

	for _, rt := range raw.Tiles {
		t, err := processTile(rt)
		if err != nil {
			return nil, err
		}
		if m.byCell[t.Cell] != nil {
			return nil, fmt.Errorf("duplicate tile at %s", t.Cell)
		}
		if raw.Radius > 0 && hex.Distance(t.Cell, hex.Cell{}) > raw.Radius {
			return nil, fmt.Errorf("tile %s lies outside radius %d", t.Cell, raw.Radius)
		}
		m.Tiles = append(m.Tiles, t)
		m.byCell[t.Cell] = t
	}

	// Harbors must face the sea
	for _, t := range m.Tiles {
		for side := range t.Ports {
			if !m.Coastal(t.Cell, side) {
				return nil, fmt.Errorf("port on inland side %d of %s", side, t.Cell)
			}
		}
	}

	return m, nil
}

func processTile(rt RawTile) (*TileSpec, error) {
	cell := hex.NewCell(rt.Q, rt.R)

	kind, err := resource.Parse(rt.Resource)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", cell, err)
	}
	if kind == resource.Any {
		return nil, fmt.Errorf("tile %s: %q is not a terrain", cell, rt.Resource)
	}

	switch {
	case kind == resource.None && rt.Dice != 0:
		return nil, fmt.Errorf("tile %s: desert cannot have dice %d", cell, rt.Dice)
	case kind != resource.None && (rt.Dice < 2 || rt.Dice > 12 || rt.Dice == game.RobberRoll):
		return nil, fmt.Errorf("tile %s: invalid dice %d", cell, rt.Dice)
	}

	t := &TileSpec{Cell: cell, Resource: kind, Dice: rt.Dice}
	for _, rp := range rt.Ports {
		if rp.Side < 0 || rp.Side > 5 {
			return nil, fmt.Errorf("tile %s: invalid port side %d", cell, rp.Side)
		}
		port, err := parsePort(rp.Resource)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", cell, err)
		}
		if t.Ports == nil {
			t.Ports = make(map[int]board.Port)
		}
		t.Ports[rp.Side] = port
	}
	return t, nil
}

func parsePort(s string) (board.Port, error) {
	kind, err := resource.Parse(s)
	if err != nil {
		return board.Port{}, err
	}
	switch {
	case kind == resource.Any:
		return board.GenericPort(), nil
	case kind.Tradeable():
		return board.SpecialPort(kind), nil
	}
	return board.Port{}, fmt.Errorf("no harbor trades %q", s)
}

// Build lays the map out as a board. A harbor on side i serves both corners
// of that side.
func Build(m *Map) (*board.Board, error) {
	tiles := make([]*board.Tile, 0, len(m.Tiles))
	for _, spec := range m.Tiles {
		t := board.NewTile(spec.Cell, spec.Resource, spec.Dice)
		for side, port := range spec.Ports {
			t.WithPort(hex.Wrap(side-1), port).WithPort(side, port)
		}
		tiles = append(tiles, t)
	}
	return board.NewFromTiles(tiles...)
}
