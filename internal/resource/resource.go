// Package resource defines the five Catan resources and counted bundles of them.
package resource

import "fmt"

// Kind represents a type of resource.
type Kind int

const (
	None Kind = iota
	Lumber
	Grain
	Wool
	Brick
	Ore
	Any // Wildcard, only meaningful on port deals
)

// All lists the tradeable resources in canonical order.
var All = []Kind{Lumber, Grain, Wool, Brick, Ore}

// String returns the resource name.
func (k Kind) String() string {
	switch k {
	case Lumber:
		return "lumber"
	case Grain:
		return "grain"
	case Wool:
		return "wool"
	case Brick:
		return "brick"
	case Ore:
		return "ore"
	case Any:
		return "any"
	default:
		return "none"
	}
}

// Tradeable returns true for the five real resources.
func (k Kind) Tradeable() bool {
	return k >= Lumber && k <= Ore
}

// Parse converts a resource name back into a Kind. The empty string and
// "desert" map to None.
func Parse(s string) (Kind, error) {
	switch s {
	case "lumber", "wood":
		return Lumber, nil
	case "grain", "wheat":
		return Grain, nil
	case "wool", "sheep":
		return Wool, nil
	case "brick":
		return Brick, nil
	case "ore":
		return Ore, nil
	case "any", "*":
		return Any, nil
	case "", "none", "desert":
		return None, nil
	}
	return None, fmt.Errorf("unknown resource %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
