package components

import (
	"github.com/automoto/tilerush/config"
	"github.com/yohamta/donburi"
)

// SessionData stores the state of the current play session.
// This is a singleton component - only one session exists at a time.
type SessionData struct {
	ID        uint64          // Incremented on every start; scopes delayed removals
	TileCount int             // Tile count used by the next start
	Total     int             // Tile count of the current session
	Ticks     int             // Elapsed-time ticks since start
	Running   bool            // True between start and a mistake or full clearance
	Started   bool            // False until the first start
	Selected  []int           // Correctly selected numbers, ascending
	Status    config.StatusID // Status shown in the panel title
}

var Session = donburi.NewComponentType[SessionData]()

// Elapsed returns the elapsed time in seconds.
func (s *SessionData) Elapsed() float64 {
	return float64(s.Ticks) * config.Timing.TickQuantum
}

// NextNumber returns the number the player has to select next.
func (s *SessionData) NextNumber() int {
	return len(s.Selected) + 1
}

// Phase derives the state machine position from the session flags.
func (s *SessionData) Phase() config.PhaseID {
	switch {
	case s.Running:
		return config.PhaseRunning
	case !s.Started:
		return config.PhaseIdle
	case s.Status == config.StatusAllCleared:
		return config.PhaseAllCleared
	case s.Status == config.StatusGameOver:
		return config.PhaseGameOver
	}
	return config.PhaseIdle
}
