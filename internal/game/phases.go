package game

import "fmt"

// Phase represents the stage of the game. It changes which placement rules apply.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseNormal
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseNormal:
		return "normal"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// ParsePhase converts a phase name back into a Phase.
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "setup":
		return PhaseSetup, nil
	case "normal":
		return PhaseNormal, nil
	case "finished":
		return PhaseFinished, nil
	}
	return PhaseSetup, fmt.Errorf("unknown phase %q", s)
}

// SetupStep is what the active player must place next during setup.
type SetupStep int

const (
	SetupSettlement SetupStep = iota
	SetupRoad
	SetupDone
)

// String returns the step name.
func (s SetupStep) String() string {
	switch s {
	case SetupSettlement:
		return "settlement"
	case SetupRoad:
		return "road"
	default:
		return "done"
	}
}

// ParseSetupStep converts a step name back into a SetupStep.
func ParseSetupStep(s string) (SetupStep, error) {
	switch s {
	case "settlement":
		return SetupSettlement, nil
	case "road":
		return SetupRoad, nil
	case "done":
		return SetupDone, nil
	}
	return SetupDone, fmt.Errorf("unknown setup step %q", s)
}

// TurnStep is the sub-state of a normal-play turn.
type TurnStep int

const (
	TurnRoll   TurnStep = iota // Waiting for the dice
	TurnRobber                 // A 7 was rolled, robber must move
	TurnMain                   // Build, trade, end turn
)

// String returns the step name.
func (t TurnStep) String() string {
	switch t {
	case TurnRoll:
		return "roll"
	case TurnRobber:
		return "robber"
	case TurnMain:
		return "main"
	default:
		return "unknown"
	}
}

// ParseTurnStep converts a step name back into a TurnStep.
func ParseTurnStep(s string) (TurnStep, error) {
	switch s {
	case "roll":
		return TurnRoll, nil
	case "robber":
		return TurnRobber, nil
	case "main":
		return TurnMain, nil
	}
	return TurnRoll, fmt.Errorf("unknown turn step %q", s)
}

// setupOrder is the snake draft: first to last, then last to first.
func setupOrder(players int) []int {
	order := make([]int, 0, players*2)
	for i := 0; i < players; i++ {
		order = append(order, i)
	}
	for i := players - 1; i >= 0; i-- {
		order = append(order, i)
	}
	return order
}
