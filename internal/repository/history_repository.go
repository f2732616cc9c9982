package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quizboard/quizboard-backend/internal/model"
)

// HistoryRepository handles the finished-game archive in PostgreSQL.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

// Insert archives one finished game. Players are stored as JSONB.
func (r *HistoryRepository) Insert(ctx context.Context, rec *model.GameRecord) error {
	players, err := json.Marshal(rec.Players)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO game_history (id, subject, questions_file, players, winner, total_questions, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		rec.ID, rec.Subject, rec.QuestionsFile, players, rec.Winner, rec.TotalQuestions, rec.FinishedAt,
	)
	return err
}

// ListRecent retrieves the most recently finished games.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]model.GameRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, subject, questions_file, players, winner, total_questions, finished_at
		 FROM game_history
		 ORDER BY finished_at DESC
		 LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		var players []byte
		if err := rows.Scan(&rec.ID, &rec.Subject, &rec.QuestionsFile, &players, &rec.Winner, &rec.TotalQuestions, &rec.FinishedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(players, &rec.Players); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
