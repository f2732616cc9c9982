package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/bank"
	"github.com/quizboard/quizboard-backend/internal/config"
	"github.com/quizboard/quizboard-backend/internal/game"
	"github.com/quizboard/quizboard-backend/internal/model"
	"github.com/quizboard/quizboard-backend/internal/repository"
	"github.com/quizboard/quizboard-backend/internal/store"
	ws "github.com/quizboard/quizboard-backend/internal/websocket"
)

var (
	ErrNoActiveGame     = errors.New("no game is in progress")
	ErrGameFinished     = errors.New("game is already finished")
	ErrQuestionNotFound = errors.New("question not found in the active bank")
	ErrQuestionAnswered = errors.New("question has already been answered")
	ErrInvalidOption    = errors.New("selected option index is out of range")
)

// GameService orchestrates the game lifecycle. It is the single writer of
// the session slot: handlers never mutate state directly, and the turn
// engine stays pure.
type GameService struct {
	store   *store.Store
	loader  *bank.Loader
	history *repository.HistoryRepository
	rdb     *redis.Client
	log     zerolog.Logger
}

// NewGameService creates a new GameService.
func NewGameService(
	st *store.Store,
	loader *bank.Loader,
	history *repository.HistoryRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *GameService {
	return &GameService{
		store:   st,
		loader:  loader,
		history: history,
		rdb:     rdb,
		log:     log.With().Str("component", "game_service").Logger(),
	}
}

// Setup creates and persists a fresh session, replacing any existing game.
// The uploaded bank, when present, must already be diagnostic-validated.
func (s *GameService) Setup(ctx context.Context, names []string, questionsFile string, uploaded *model.QuestionBank) (*model.GameSession, error) {
	if uploaded != nil {
		questionsFile = model.QuestionsFileUploaded
	}

	session := game.NewSession(names, questionsFile, uploaded)
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.publish(ctx, ws.GameEvent{Event: ws.EventGameStarted})
	return session, nil
}

// State returns the persisted session and its resolved bank.
// A missing session is the caller's signal to redirect to setup.
func (s *GameService) State(ctx context.Context) (*model.GameSession, *model.QuestionBank, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, ErrNoActiveGame
	}

	b := s.loader.Load(ctx, session.QuestionsFile, session.UploadedQuestions)
	return session, b, nil
}

// Answer applies one answer: scores the current player, marks the question
// answered, advances the turn, persists, and on the last question flags the
// game finished and queues it for archival.
func (s *GameService) Answer(ctx context.Context, questionID string, optionIndex int) (*model.AnswerResult, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNoActiveGame
	}
	if session.GameStatus == model.GameStatusFinished {
		return nil, ErrGameFinished
	}

	b := s.loader.Load(ctx, session.QuestionsFile, session.UploadedQuestions)

	_, question, found := game.FindQuestion(b, model.FlexID(questionID))
	if !found {
		return nil, ErrQuestionNotFound
	}
	if game.IsAnswered(session, question.ID) {
		return nil, ErrQuestionAnswered
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return nil, ErrInvalidOption
	}

	outcome := game.ApplyAnswer(session, question, optionIndex)

	finished := game.IsFinished(session, game.TotalQuestions(b))
	if finished {
		session.GameStatus = model.GameStatusFinished
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.publish(ctx, ws.GameEvent{
		Event: ws.EventAnswerApplied,
		Payload: ws.AnswerAppliedPayload{
			QuestionID:  questionID,
			Correct:     outcome.Correct,
			PointsDelta: outcome.PointsDelta,
			Player:      outcome.Player.Name,
			Score:       outcome.Player.Score,
			NextPlayer:  session.CurrentPlayer,
		},
	})

	if finished {
		rec := buildRecord(session, b)
		s.enqueueArchive(ctx, rec)
		s.publish(ctx, ws.GameEvent{
			Event:   ws.EventGameFinished,
			Payload: ws.GameFinishedPayload{Winner: rec.Winner, Subject: rec.Subject},
		})
	}

	return &model.AnswerResult{
		Correct:       outcome.Correct,
		PointsDelta:   outcome.PointsDelta,
		Player:        outcome.Player,
		CorrectAnswer: question.CorrectAnswer,
		NextPlayer:    session.CurrentPlayer,
		Finished:      finished,
	}, nil
}

// Restart clears the session slot.
func (s *GameService) Restart(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.publish(ctx, ws.GameEvent{Event: ws.EventGameCleared})
	return nil
}

// History lists recently archived games for the results dashboard.
func (s *GameService) History(ctx context.Context, limit int) ([]model.GameRecord, error) {
	records, err := s.history.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.GameRecord{}
	}
	return records, nil
}

// buildRecord snapshots a finished session for the archive.
func buildRecord(session *model.GameSession, b *model.QuestionBank) *model.GameRecord {
	players := make([]model.PlayerResult, len(session.Players))
	winner := session.Players[0]
	for i, p := range session.Players {
		players[i] = model.PlayerResult{Name: p.Name, Score: p.Score}
		if p.Score > winner.Score {
			winner = p
		}
	}

	return &model.GameRecord{
		ID:             uuid.New(),
		Subject:        b.Subject,
		QuestionsFile:  session.QuestionsFile,
		Players:        players,
		Winner:         winner.Name,
		TotalQuestions: len(session.AnsweredQuestions),
		FinishedAt:     time.Now().UTC(),
	}
}

// enqueueArchive pushes the record onto the archive queue; the worker
// persists it to Postgres. Queue failures are logged, not surfaced — the
// game itself is already saved.
func (s *GameService) enqueueArchive(ctx context.Context, rec *model.GameRecord) {
	data, err := json.Marshal(rec)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to marshal game record")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.ArchiveGamesQueue, data).Err(); err != nil {
		s.log.Error().Err(err).Msg("Failed to enqueue game record")
	}
}

// publish fans a spectator event out on the game events channel.
func (s *GameService) publish(ctx context.Context, event ws.GameEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to marshal game event")
		return
	}
	if err := s.rdb.Publish(ctx, config.StateKey.GameEventsChannel(), data).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Failed to publish game event")
	}
}
