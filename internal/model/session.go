package model

import "encoding/json"

// GameStatus is the lifecycle state of a game session.
type GameStatus string

const (
	GameStatusPlaying  GameStatus = "playing"
	GameStatusFinished GameStatus = "finished"
)

// QuestionsFileUploaded is the sentinel value of GameSession.QuestionsFile
// indicating the bank is embedded in the session rather than fetched.
const QuestionsFileUploaded = "uploaded"

// Player is one participant in a game session. Score may go negative.
type Player struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// GameSession is the full persisted state of one in-progress or finished
// game. The JSON shape is the wire format of the durable state slot, so it
// must round-trip losslessly, including the embedded uploaded bank.
type GameSession struct {
	Players           []Player      `json:"players"`
	CurrentPlayer     int           `json:"currentPlayer"`
	AnsweredQuestions []FlexID      `json:"answeredQuestions"`
	GameStatus        GameStatus    `json:"gameStatus"`
	QuestionsFile     string        `json:"questionsFile"`
	UploadedQuestions *QuestionBank `json:"uploadedQuestions,omitempty"`
}

// SetupGameRequest is the payload for starting a new game.
// Exactly one bank source must be given: a questions file reference or an
// uploaded bank blob (which is diagnostic-validated before use).
type SetupGameRequest struct {
	Players           []string        `json:"players" binding:"required,min=2,max=6"`
	QuestionsFile     string          `json:"questions_file" binding:"required_without=UploadedQuestions"`
	UploadedQuestions json.RawMessage `json:"uploaded_questions" binding:"omitempty"`
}

// AnswerRequest is the payload for answering a board question.
type AnswerRequest struct {
	QuestionID  string `json:"question_id" binding:"required"`
	OptionIndex *int   `json:"option_index" binding:"required,min=0"`
}

// AnswerResult is returned to the board UI after an answer is applied.
// CorrectAnswer is included so the modal can highlight the right option.
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	PointsDelta   int    `json:"points_delta"`
	Player        Player `json:"player"`
	CorrectAnswer int    `json:"correct_answer"`
	NextPlayer    int    `json:"next_player"`
	Finished      bool   `json:"finished"`
}
