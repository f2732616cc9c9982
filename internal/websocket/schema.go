package websocket

// ─── Events (Server → Client) ───────────────────────────────────────
//
// The spectator stream is read-only: clients receive game events and may
// only send pings. Events originate on the Redis game-events channel and
// are fanned out verbatim to every connected dashboard.

type Event string

const (
	EventGameStarted   Event = "game_started"
	EventAnswerApplied Event = "answer_applied"
	EventGameFinished  Event = "game_finished"
	EventGameCleared   Event = "game_cleared"
	EventError         Event = "error"
	EventPong          Event = "pong"
)

// GameEvent is the envelope published on the Redis channel and forwarded
// to spectators. Payload shape depends on the event type.
type GameEvent struct {
	Event   Event       `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// AnswerAppliedPayload accompanies EventAnswerApplied.
type AnswerAppliedPayload struct {
	QuestionID  string `json:"question_id"`
	Correct     bool   `json:"correct"`
	PointsDelta int    `json:"points_delta"`
	Player      string `json:"player"`
	Score       int    `json:"score"`
	NextPlayer  int    `json:"next_player"`
}

// GameFinishedPayload accompanies EventGameFinished.
type GameFinishedPayload struct {
	Winner  string `json:"winner"`
	Subject string `json:"subject"`
}

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionPing Action = "ping"
)

// RequestEnvelope is used to peek at the action before full parsing.
type RequestEnvelope struct {
	Action Action `json:"action"`
}

type PongResponse struct {
	Event Event `json:"event"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}
