package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/config"
	"github.com/quizboard/quizboard-backend/internal/model"
)

// Inserter persists one archived game. Satisfied by
// repository.HistoryRepository.
type Inserter interface {
	Insert(ctx context.Context, rec *model.GameRecord) error
}

// ArchiveWorker consumes archive_games_queue and persists finished games
// to the PostgreSQL game_history table.
type ArchiveWorker struct {
	history    Inserter
	rdb        *redis.Client
	log        zerolog.Logger
	retryDelay time.Duration
}

// NewArchiveWorker creates a new ArchiveWorker.
func NewArchiveWorker(history Inserter, rdb *redis.Client, log zerolog.Logger) *ArchiveWorker {
	return &ArchiveWorker{
		history:    history,
		rdb:        rdb,
		log:        log.With().Str("component", "archive_worker").Logger(),
		retryDelay: 5 * time.Second,
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ArchiveWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ArchiveWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.ArchiveGamesQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	var rec model.GameRecord
	if err := json.Unmarshal([]byte(result[1]), &rec); err != nil {
		w.log.Error().Err(err).Msg("Unmarshal error")
		return
	}

	if err := w.history.Insert(ctx, &rec); err != nil {
		w.log.Error().Err(err).
			Str("record_id", rec.ID.String()).
			Msg("Persist error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.ArchiveGamesQueue, result[1])
		time.Sleep(w.retryDelay)
	}
}

// drain processes all remaining items in the queue before shutdown.
func (w *ArchiveWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.ArchiveGamesQueue).Result()
		if err != nil {
			break
		}

		var rec model.GameRecord
		if err := json.Unmarshal([]byte(result), &rec); err != nil {
			w.log.Error().Err(err).Msg("Drain unmarshal error")
			continue
		}

		if err := w.history.Insert(ctx, &rec); err != nil {
			w.log.Error().Err(err).Msg("Drain persist error")
			w.rdb.RPush(ctx, config.WorkerKey.ArchiveGamesQueue, result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
