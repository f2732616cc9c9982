package game_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizboard/quizboard-backend/internal/game"
	"github.com/quizboard/quizboard-backend/internal/model"
)

func twoPlayerSession() *model.GameSession {
	return game.NewSession([]string{"Alice", "Bob"}, "bank.json", nil)
}

func testBank() *model.QuestionBank {
	return &model.QuestionBank{
		Subject: "Test",
		Categories: []model.Category{{
			ID:   "1",
			Name: "Cat A",
			Questions: []model.Question{
				{ID: "q1", Text: "Q1", Options: []string{"a", "b"}, CorrectAnswer: 0, Points: 100},
				{ID: "q2", Text: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswer: 1, Points: 200},
			},
		}},
	}
}

func TestNewSession(t *testing.T) {
	s := game.NewSession([]string{"Alice", ""}, "bank.json", nil)

	require.Len(t, s.Players, 2)
	require.Equal(t, model.Player{ID: 1, Name: "Alice"}, s.Players[0])
	require.Equal(t, "Player 2", s.Players[1].Name, "blank names get a positional default")
	require.Zero(t, s.CurrentPlayer)
	require.NotNil(t, s.AnsweredQuestions)
	require.Empty(t, s.AnsweredQuestions)
	require.Equal(t, model.GameStatusPlaying, s.GameStatus)
	require.Equal(t, "bank.json", s.QuestionsFile)
}

func TestMarkAnswered_Idempotent(t *testing.T) {
	s := twoPlayerSession()

	game.MarkAnswered(s, "q1")
	require.True(t, game.IsAnswered(s, "q1"))
	require.Len(t, s.AnsweredQuestions, 1)

	game.MarkAnswered(s, "q1")
	require.Len(t, s.AnsweredQuestions, 1, "marking twice must not duplicate")
}

func TestApplyAnswer_ScoreDelta(t *testing.T) {
	b := testBank()
	q := &b.Categories[0].Questions[0]

	tests := map[string]struct {
		selected  int
		correct   bool
		wantDelta int
	}{
		"correct adds points":        {selected: 0, correct: true, wantDelta: 100},
		"incorrect subtracts points": {selected: 1, correct: false, wantDelta: -100},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := twoPlayerSession()
			outcome := game.ApplyAnswer(s, q, tt.selected)

			require.Equal(t, tt.correct, outcome.Correct)
			require.Equal(t, tt.wantDelta, outcome.PointsDelta)
			require.Equal(t, tt.wantDelta, s.Players[0].Score)
			require.Equal(t, "Alice", outcome.Player.Name)
			require.Equal(t, tt.wantDelta, outcome.Player.Score, "outcome snapshots the score after the change")
		})
	}
}

func TestApplyAnswer_AlwaysAdvancesTurn(t *testing.T) {
	b := testBank()

	for name, selected := range map[string]int{"correct": 0, "incorrect": 1} {
		t.Run(name, func(t *testing.T) {
			s := twoPlayerSession()
			game.ApplyAnswer(s, &b.Categories[0].Questions[0], selected)
			require.Equal(t, 1, s.CurrentPlayer)
		})
	}
}

func TestApplyAnswer_TurnWrapsAround(t *testing.T) {
	s := game.NewSession([]string{"A", "B", "C"}, "bank.json", nil)
	s.CurrentPlayer = 2

	b := testBank()
	game.ApplyAnswer(s, &b.Categories[0].Questions[0], 0)
	require.Zero(t, s.CurrentPlayer, "last player's turn wraps back to the first")
}

func TestApplyAnswer_ScoreMayGoNegative(t *testing.T) {
	s := twoPlayerSession()
	b := testBank()

	game.ApplyAnswer(s, &b.Categories[0].Questions[1], 0) // wrong, -200
	require.Equal(t, -200, s.Players[0].Score)
}

func TestTwoPlayerScenario(t *testing.T) {
	s := twoPlayerSession()
	b := testBank()
	q1 := &b.Categories[0].Questions[0]
	q2 := &b.Categories[0].Questions[1]

	// Player 1 answers Q1 correctly.
	out := game.ApplyAnswer(s, q1, 0)
	require.True(t, out.Correct)
	require.Equal(t, 100, s.Players[0].Score)
	require.Equal(t, 1, s.CurrentPlayer)
	require.True(t, game.IsAnswered(s, "q1"))
	require.False(t, game.IsFinished(s, game.TotalQuestions(b)))

	// Player 2 answers Q2 incorrectly.
	out = game.ApplyAnswer(s, q2, 0)
	require.False(t, out.Correct)
	require.Equal(t, -200, s.Players[1].Score)
	require.Zero(t, s.CurrentPlayer)
	require.True(t, game.IsAnswered(s, "q2"))
	require.True(t, game.IsFinished(s, game.TotalQuestions(b)))
}

// IsFinished compares counts, not the actual question ids. If the session's
// bank is swapped mid-game the check can report finished even though none of
// the answered ids belong to the new bank. That behavior is intentional and
// pinned here.
func TestIsFinished_CountBasedNotSetBased(t *testing.T) {
	s := twoPlayerSession()
	game.MarkAnswered(s, "other-bank-q1")
	game.MarkAnswered(s, "other-bank-q2")

	require.True(t, game.IsFinished(s, 2), "count match finishes even with foreign ids")
	require.False(t, game.IsFinished(s, 3))
}

func TestTotalQuestions(t *testing.T) {
	b := testBank()
	require.Equal(t, 2, game.TotalQuestions(b))

	b.Categories = append(b.Categories, model.Category{
		ID:        "2",
		Name:      "Cat B",
		Questions: []model.Question{{ID: "q3", Text: "Q3", Options: []string{"a", "b"}, CorrectAnswer: 0, Points: 300}},
	})
	require.Equal(t, 3, game.TotalQuestions(b))
}

func TestFindQuestion(t *testing.T) {
	b := testBank()

	cat, q, found := game.FindQuestion(b, "q2")
	require.True(t, found)
	require.Equal(t, "Cat A", cat.Name)
	require.Equal(t, 200, q.Points)

	_, _, found = game.FindQuestion(b, "nope")
	require.False(t, found)
}
