package game

import (
	"fmt"
	"sort"

	"hex-settlers/internal/board"
)

// RoadMode selects the longest-road search.
type RoadMode int

const (
	// RoadExhaustive explores every branch. A player has at most 15 roads,
	// so full enumeration stays small.
	RoadExhaustive RoadMode = iota
	// RoadGreedy extends each starting road forward and backward, committing
	// to the first matching edge at every junction. It can under-count at
	// branch points and exists for compatibility with older saved games.
	RoadGreedy
)

// String returns the mode name.
func (m RoadMode) String() string {
	if m == RoadGreedy {
		return "greedy"
	}
	return "exhaustive"
}

// ParseRoadMode converts a mode name back into a RoadMode.
func ParseRoadMode(s string) (RoadMode, error) {
	switch s {
	case "", "exhaustive":
		return RoadExhaustive, nil
	case "greedy":
		return RoadGreedy, nil
	}
	return RoadExhaustive, fmt.Errorf("unknown longest road mode %q", s)
}

// LongestRoad returns the length of the longest simple chain of the
// player's roads. A chain may revisit a vertex but never an edge, and it
// cannot continue through a vertex built on by another player.
func LongestRoad(b *board.Board, playerID string, mode RoadMode) int {
	owned := ownedRoadEdges(b, playerID)
	if len(owned) == 0 {
		return 0
	}
	if mode == RoadGreedy {
		return greedyLongestRoad(b, playerID, owned)
	}
	return exhaustiveLongestRoad(b, playerID, owned)
}

// ownedRoadEdges returns the edges carrying the player's roads in ID order.
func ownedRoadEdges(b *board.Board, playerID string) []board.EdgeID {
	var edges []board.EdgeID
	for _, p := range b.PiecesOf(playerID, board.PieceRoad) {
		if e, ok := b.EdgeOf(p); ok {
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	return edges
}

func exhaustiveLongestRoad(b *board.Board, playerID string, owned []board.EdgeID) int {
	isOwned := make(map[board.EdgeID]bool, len(owned))
	for _, e := range owned {
		isOwned[e] = true
	}

	best := 0
	visited := make(map[board.EdgeID]bool, len(owned))

	var walk func(at board.VertexID, length int)
	walk = func(at board.VertexID, length int) {
		if length > best {
			best = length
		}
		if !passable(b, at, playerID) {
			return
		}
		for _, next := range b.Vertex(at).Edges {
			if !isOwned[next] || visited[next] {
				continue
			}
			visited[next] = true
			walk(b.Edge(next).Other(at), length+1)
			visited[next] = false
		}
	}

	for _, start := range owned {
		for _, from := range b.Edge(start).Vertices {
			visited[start] = true
			walk(b.Edge(start).Other(from), 1)
			visited[start] = false
		}
	}
	return best
}

func greedyLongestRoad(b *board.Board, playerID string, owned []board.EdgeID) int {
	isOwned := make(map[board.EdgeID]bool, len(owned))
	for _, e := range owned {
		isOwned[e] = true
	}

	best := 0
	for _, start := range owned {
		visited := map[board.EdgeID]bool{start: true}
		e := b.Edge(start)
		forward := greedyExtend(b, playerID, e.Vertices[1], isOwned, visited)
		backward := greedyExtend(b, playerID, e.Vertices[0], isOwned, visited)
		if length := 1 + forward + backward; length > best {
			best = length
		}
	}
	return best
}

// greedyExtend follows the first unvisited owned edge at each vertex until
// the chain ends, and returns how many edges it added.
func greedyExtend(b *board.Board, playerID string, at board.VertexID, isOwned, visited map[board.EdgeID]bool) int {
	added := 0
	for passable(b, at, playerID) {
		next, ok := firstOpenEdge(b.Vertex(at).Edges, isOwned, visited)
		if !ok {
			break
		}
		visited[next] = true
		at = b.Edge(next).Other(at)
		added++
	}
	return added
}

func firstOpenEdge(edges []board.EdgeID, isOwned, visited map[board.EdgeID]bool) (board.EdgeID, bool) {
	candidates := append([]board.EdgeID(nil), edges...)
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })
	for _, e := range candidates {
		if isOwned[e] && !visited[e] {
			return e, true
		}
	}
	return 0, false
}
