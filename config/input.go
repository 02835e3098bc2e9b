package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPlay
	ActionQuit
	ActionSelect // Primary pointer press
	ActionCount  // Must be last - used for array sizing
)
