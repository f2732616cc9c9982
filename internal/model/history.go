package model

import (
	"time"

	"github.com/google/uuid"
)

// GameRecord is one archived finished game, shown on the results dashboard.
type GameRecord struct {
	ID             uuid.UUID      `json:"id"`
	Subject        string         `json:"subject"`
	QuestionsFile  string         `json:"questions_file"`
	Players        []PlayerResult `json:"players"`
	Winner         string         `json:"winner"`
	TotalQuestions int            `json:"total_questions"`
	FinishedAt     time.Time      `json:"finished_at"`
}

// PlayerResult is a player's final standing within an archived game.
type PlayerResult struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}
