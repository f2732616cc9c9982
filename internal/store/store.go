// Package store persists the game session in a single durable key-value
// slot, the server-side counterpart of the board UI's localStorage entry.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/model"
)

// Store reads and writes the session slot. Failures are returned to the
// caller, never panicked; an absent slot is a normal "no game in progress"
// condition and loads as nil.
type Store struct {
	rdb *redis.Client
	key string
	log zerolog.Logger
}

func New(rdb *redis.Client, key string, log zerolog.Logger) *Store {
	return &Store{
		rdb: rdb,
		key: key,
		log: log.With().Str("component", "state_store").Logger(),
	}
}

// Save serializes the session, including any embedded uploaded bank, and
// writes it to the slot. The slot has no expiry: a game survives restarts
// until it is cleared or replaced.
func (s *Store) Save(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key, data, 0).Err(); err != nil {
		s.log.Error().Err(err).Msg("Failed to save game state")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads the slot. Returns (nil, nil) when no game is in progress.
func (s *Store) Load(ctx context.Context) (*model.GameSession, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load game state")
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Clear deletes the slot. Clearing an empty slot is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.rdb.Del(ctx, s.key).Err(); err != nil {
		s.log.Error().Err(err).Msg("Failed to clear game state")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
