package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/quizboard/quizboard-backend/internal/bank"
	"github.com/quizboard/quizboard-backend/internal/config"
	"github.com/quizboard/quizboard-backend/internal/model"
	"github.com/quizboard/quizboard-backend/internal/service"
	"github.com/quizboard/quizboard-backend/internal/store"
)

const smallBank = `{
	"subject": "Test",
	"categories": [
		{
			"id": 1,
			"name": "Cat A",
			"questions": [
				{"id": "q1", "text": "Q1", "options": ["a", "b"], "correctAnswer": 0, "points": 100},
				{"id": "q2", "text": "Q2", "options": ["a", "b", "c"], "correctAnswer": 1, "points": 200}
			]
		}
	]
}`

type fakeFetcher struct {
	files map[string][]byte
}

func (f *fakeFetcher) Fetch(_ context.Context, path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found: " + path)
	}
	return data, nil
}

func newService(t *testing.T) (*service.GameService, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zerolog.Nop()
	st := store.New(rdb, config.StateKey.GameStateKey(), log)
	loader := bank.NewLoader(&fakeFetcher{files: map[string][]byte{
		"small.json": []byte(smallBank),
	}}, log)

	return service.NewGameService(st, loader, nil, rdb, log), mr
}

func TestGameService_Setup(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	session, err := svc.Setup(ctx, []string{"Alice", "Bob"}, "small.json", nil)
	require.NoError(t, err)
	require.Equal(t, model.GameStatusPlaying, session.GameStatus)
	require.Equal(t, "small.json", session.QuestionsFile)

	got, b, err := svc.State(ctx)
	require.NoError(t, err)
	require.Equal(t, session, got)
	require.Equal(t, "Test", b.Subject)
}

func TestGameService_SetupWithUpload(t *testing.T) {
	svc, _ := newService(t)

	var uploaded model.QuestionBank
	require.NoError(t, json.Unmarshal([]byte(smallBank), &uploaded))

	session, err := svc.Setup(context.Background(), []string{"Alice", "Bob"}, "ignored.json", &uploaded)
	require.NoError(t, err)
	require.Equal(t, model.QuestionsFileUploaded, session.QuestionsFile,
		"an uploaded bank overrides any file reference")
	require.NotNil(t, session.UploadedQuestions)
}

func TestGameService_StateWithoutGame(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.State(context.Background())
	require.ErrorIs(t, err, service.ErrNoActiveGame)
}

func TestGameService_AnswerFlow(t *testing.T) {
	svc, mr := newService(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, []string{"Alice", "Bob"}, "small.json", nil)
	require.NoError(t, err)

	// Alice answers q1 correctly.
	res, err := svc.Answer(ctx, "q1", 0)
	require.NoError(t, err)
	require.True(t, res.Correct)
	require.Equal(t, 100, res.PointsDelta)
	require.Equal(t, "Alice", res.Player.Name)
	require.Equal(t, 100, res.Player.Score)
	require.Equal(t, 0, res.CorrectAnswer)
	require.Equal(t, 1, res.NextPlayer)
	require.False(t, res.Finished)

	// Bob answers q2 incorrectly; that was the last question.
	res, err = svc.Answer(ctx, "q2", 0)
	require.NoError(t, err)
	require.False(t, res.Correct)
	require.Equal(t, -200, res.PointsDelta)
	require.Equal(t, -200, res.Player.Score)
	require.True(t, res.Finished)

	session, _, err := svc.State(ctx)
	require.NoError(t, err)
	require.Equal(t, model.GameStatusFinished, session.GameStatus)
	require.Len(t, session.AnsweredQuestions, 2)

	// The finished game is queued for archival with the right winner.
	queued, err := mr.List(config.WorkerKey.ArchiveGamesQueue)
	require.NoError(t, err)
	require.Len(t, queued, 1)

	var rec model.GameRecord
	require.NoError(t, json.Unmarshal([]byte(queued[0]), &rec))
	require.Equal(t, "Test", rec.Subject)
	require.Equal(t, "Alice", rec.Winner)
	require.Equal(t, 2, rec.TotalQuestions)
	require.WithinDuration(t, time.Now().UTC(), rec.FinishedAt, time.Minute)
}

func TestGameService_AnswerErrors(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Answer(ctx, "q1", 0)
	require.ErrorIs(t, err, service.ErrNoActiveGame)

	_, err = svc.Setup(ctx, []string{"Alice", "Bob"}, "small.json", nil)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, "missing", 0)
	require.ErrorIs(t, err, service.ErrQuestionNotFound)

	_, err = svc.Answer(ctx, "q1", 5)
	require.ErrorIs(t, err, service.ErrInvalidOption)

	_, err = svc.Answer(ctx, "q1", 0)
	require.NoError(t, err)
	_, err = svc.Answer(ctx, "q1", 0)
	require.ErrorIs(t, err, service.ErrQuestionAnswered)

	_, err = svc.Answer(ctx, "q2", 1)
	require.NoError(t, err)
	_, err = svc.Answer(ctx, "q2", 1)
	require.ErrorIs(t, err, service.ErrGameFinished)
}

func TestGameService_Restart(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, []string{"Alice", "Bob"}, "small.json", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Restart(ctx))

	_, _, err = svc.State(ctx)
	require.ErrorIs(t, err, service.ErrNoActiveGame)
}

func TestGameService_UnknownFileFallsBack(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, []string{"Alice", "Bob"}, "missing.json", nil)
	require.NoError(t, err)

	_, b, err := svc.State(ctx)
	require.NoError(t, err)
	require.Equal(t, bank.DefaultBank().Subject, b.Subject,
		"an unreachable bank file falls back to the built-in bank")
}
