package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"github.com/quizboard/quizboard-backend/internal/bank"
	"github.com/quizboard/quizboard-backend/internal/game"
	"github.com/quizboard/quizboard-backend/internal/model"
)

// BankValidationError carries the diagnostic result of a failed upload
// validation so handlers can surface the first error plus remaining count.
type BankValidationError struct {
	Result bank.Result
}

func (e *BankValidationError) Error() string {
	return e.Result.Error
}

// BankService handles bank discovery and upload validation.
type BankService struct {
	loader *bank.Loader
	log    zerolog.Logger
}

// NewBankService creates a new BankService.
func NewBankService(loader *bank.Loader, log zerolog.Logger) *BankService {
	return &BankService{
		loader: loader,
		log:    log.With().Str("component", "bank_service").Logger(),
	}
}

// ListBanks returns the discovered banks, or the hardcoded fallback list
// when discovery comes back empty.
func (s *BankService) ListBanks(ctx context.Context) []bank.BankInfo {
	banks := s.loader.Discover(ctx)
	if len(banks) == 0 {
		s.log.Warn().Msg("Bank discovery returned nothing, using fallback list")
		return bank.FallbackBanks()
	}
	return banks
}

// UploadSummary describes an accepted uploaded bank.
type UploadSummary struct {
	Subject    string `json:"subject"`
	Categories int    `json:"categories"`
	Questions  int    `json:"questions"`
}

// ValidateUpload runs diagnostic validation over an uploaded bank file and
// decodes it on success. Failures come back as *BankValidationError.
func (s *BankService) ValidateUpload(raw []byte) (*model.QuestionBank, *UploadSummary, error) {
	result := bank.Diagnostic(raw)
	if !result.Valid {
		return nil, nil, &BankValidationError{Result: result}
	}

	var b model.QuestionBank
	if err := json.Unmarshal(raw, &b); err != nil {
		// Structurally valid JSON that still fails the typed decode
		// (e.g. fractional points).
		return nil, nil, errors.New("bank file could not be decoded")
	}

	return &b, &UploadSummary{
		Subject:    b.Subject,
		Categories: len(b.Categories),
		Questions:  game.TotalQuestions(&b),
	}, nil
}
