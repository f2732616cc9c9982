// Package game implements the turn engine: the pure rules for scoring,
// turn advancement and end-of-game detection. All functions operate on
// caller-supplied state and never touch storage, so every rule is
// synchronously testable.
package game

import (
	"fmt"

	"github.com/quizboard/quizboard-backend/internal/model"
)

// AnswerOutcome describes the effect of one applied answer.
// Player is a snapshot of the acting player after the score change.
type AnswerOutcome struct {
	Correct     bool
	PointsDelta int
	Player      model.Player
}

// NewSession builds a fresh session at game setup: zero scores, first
// player's turn, nothing answered. Blank names get a positional default.
func NewSession(names []string, questionsFile string, uploaded *model.QuestionBank) *model.GameSession {
	players := make([]model.Player, len(names))
	for i, name := range names {
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		players[i] = model.Player{ID: i + 1, Name: name}
	}

	return &model.GameSession{
		Players:           players,
		CurrentPlayer:     0,
		AnsweredQuestions: []model.FlexID{},
		GameStatus:        model.GameStatusPlaying,
		QuestionsFile:     questionsFile,
		UploadedQuestions: uploaded,
	}
}

// IsAnswered reports whether the question has already been answered.
func IsAnswered(s *model.GameSession, questionID model.FlexID) bool {
	for _, id := range s.AnsweredQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}

// MarkAnswered records the question as answered. Idempotent: marking an
// already-answered question is a no-op.
func MarkAnswered(s *model.GameSession, questionID model.FlexID) {
	if !IsAnswered(s, questionID) {
		s.AnsweredQuestions = append(s.AnsweredQuestions, questionID)
	}
}

// ApplyAnswer scores the current player's answer and advances the turn.
// The score moves by +points on a correct answer and -points on an
// incorrect one, with no floor. The turn always advances, regardless of
// correctness. Persistence is the caller's responsibility.
func ApplyAnswer(s *model.GameSession, q *model.Question, selectedIndex int) AnswerOutcome {
	correct := selectedIndex == q.CorrectAnswer

	delta := q.Points
	if !correct {
		delta = -q.Points
	}
	s.Players[s.CurrentPlayer].Score += delta

	MarkAnswered(s, q.ID)

	acting := s.Players[s.CurrentPlayer]
	s.CurrentPlayer = (s.CurrentPlayer + 1) % len(s.Players)

	return AnswerOutcome{
		Correct:     correct,
		PointsDelta: delta,
		Player:      acting,
	}
}

// IsFinished reports whether every question has been answered. This is a
// count comparison against the bound bank's size, not a set-equality check
// of question ids; switching banks mid-session can therefore skew it.
func IsFinished(s *model.GameSession, totalQuestions int) bool {
	return len(s.AnsweredQuestions) >= totalQuestions
}

// TotalQuestions sums the question counts across all categories.
func TotalQuestions(b *model.QuestionBank) int {
	total := 0
	for _, cat := range b.Categories {
		total += len(cat.Questions)
	}
	return total
}

// FindQuestion locates a question and its category by id.
func FindQuestion(b *model.QuestionBank, questionID model.FlexID) (*model.Category, *model.Question, bool) {
	for ci := range b.Categories {
		cat := &b.Categories[ci]
		for qi := range cat.Questions {
			if cat.Questions[qi].ID == questionID {
				return cat, &cat.Questions[qi], true
			}
		}
	}
	return nil, nil, false
}
