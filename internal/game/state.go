// Package game provides the main loop and viewer state management.
package game

// State represents the current viewer state.
type State int

const (
	// StateRoam is the default mode: the cursor roams and no path is plotted.
	StateRoam State = iota
	// StatePlotted means a path is plotted and the walker can step along it.
	StatePlotted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRoam:
		return "roam"
	case StatePlotted:
		return "plotted"
	default:
		return "unknown"
	}
}
