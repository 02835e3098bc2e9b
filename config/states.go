package config

import "image/color"

// StatusID is the status shown in the title of the control panel.
type StatusID int

const (
	StatusReady StatusID = iota
	StatusGameOver
	StatusAllCleared
)

// PhaseID is the derived session state machine position.
type PhaseID int

const (
	PhaseIdle PhaseID = iota
	PhaseRunning
	PhaseGameOver
	PhaseAllCleared
)

// StatusStyle is how a status is presented.
type StatusStyle struct {
	Title string
	Color color.RGBA
}

// Style maps every status to its title and color.
func (s StatusID) Style() StatusStyle {
	switch s {
	case StatusGameOver:
		return StatusStyle{Title: "GAME OVER", Color: Red}
	case StatusAllCleared:
		return StatusStyle{Title: "ALL CLEARED", Color: Green}
	default:
		return StatusStyle{Title: "Let's Play", Color: Charcoal}
	}
}

func (s StatusID) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusGameOver:
		return "game_over"
	case StatusAllCleared:
		return "all_cleared"
	}
	return "unknown"
}

func (p PhaseID) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	case PhaseAllCleared:
		return "all_cleared"
	}
	return "unknown"
}
