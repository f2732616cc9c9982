package config

// StateKeyStruct centralizes the Redis keys and channels used for game
// state, in one place so the store, services and workers agree.
type StateKeyStruct struct{}

func NewStateKeyStruct() *StateKeyStruct {
	return &StateKeyStruct{}
}

// GameStateKey returns the fixed key of the durable session slot.
// A single game is active at a time, mirroring the board UI's single
// localStorage entry.
func (r *StateKeyStruct) GameStateKey() string {
	return "quizboard:state"
}

// GameEventsChannel returns the PubSub channel carrying spectator events.
func (r *StateKeyStruct) GameEventsChannel() string {
	return "quizboard:events"
}

var StateKey = NewStateKeyStruct()
