package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/quizboard/quizboard-backend/internal/model"
	"github.com/quizboard/quizboard-backend/internal/store"
)

func newStore(t *testing.T) (*store.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return store.New(rdb, "quizboard:state", zerolog.Nop()), mr
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	session := &model.GameSession{
		Players: []model.Player{
			{ID: 1, Name: "Alice", Score: 300},
			{ID: 2, Name: "Bob", Score: -100},
		},
		CurrentPlayer:     1,
		AnsweredQuestions: []model.FlexID{"1", "2", "7"},
		GameStatus:        model.GameStatusPlaying,
		QuestionsFile:     model.QuestionsFileUploaded,
		UploadedQuestions: &model.QuestionBank{
			Subject: "Custom",
			Categories: []model.Category{{
				ID:   "1",
				Name: "Cat",
				Questions: []model.Question{
					{ID: "1", Text: "Q", Options: []string{"a", "b"}, CorrectAnswer: 1, Points: 100},
				},
			}},
		},
	}

	require.NoError(t, s.Save(ctx, session))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, session, got, "the slot must round-trip losslessly, embedded bank included")
}

func TestStore_LoadEmptySlot(t *testing.T) {
	s, _ := newStore(t)

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got, "an absent slot is not an error")
}

func TestStore_LoadCorruptSlot(t *testing.T) {
	s, mr := newStore(t)
	require.NoError(t, mr.Set("quizboard:state", "{not json"))

	_, err := s.Load(context.Background())
	require.Error(t, err)
}

func TestStore_Clear(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.GameSession{GameStatus: model.GameStatusPlaying}))
	require.True(t, mr.Exists("quizboard:state"))

	require.NoError(t, s.Clear(ctx))
	require.False(t, mr.Exists("quizboard:state"))

	require.NoError(t, s.Clear(ctx), "clearing an empty slot is a no-op")
}
