package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizboard/quizboard-backend/internal/response"
	"github.com/quizboard/quizboard-backend/internal/service"
)

// BankHandler handles bank discovery and upload validation endpoints.
type BankHandler struct {
	bankService    *service.BankService
	maxUploadBytes int64
}

// NewBankHandler creates a new BankHandler.
func NewBankHandler(bankService *service.BankService, maxUploadBytes int64) *BankHandler {
	return &BankHandler{
		bankService:    bankService,
		maxUploadBytes: maxUploadBytes,
	}
}

// ListBanks godoc
// GET /api/v1/banks
// Returns every bank that fetched and validated, or the fallback list.
func (h *BankHandler) ListBanks(c *gin.Context) {
	banks := h.bankService.ListBanks(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"banks": banks})
}

// ValidateBank godoc
// POST /api/v1/banks/validate
// Runs diagnostic validation over an uploaded bank file. The body is the
// bank JSON itself. On failure the first error plus a remaining-count is
// returned for user display.
func (h *BankHandler) ValidateBank(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Fail(c, http.StatusRequestEntityTooLarge, response.ErrFileTooLarge)
		return
	}

	_, summary, err := h.bankService.ValidateUpload(raw)
	if err != nil {
		failBankValidation(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"valid":   true,
		"summary": summary,
	})
}

// failBankValidation maps an upload validation error onto the envelope,
// preserving the diagnostic first-error-plus-count message when available.
func failBankValidation(c *gin.Context, err error) {
	var ve *service.BankValidationError
	if errors.As(err, &ve) {
		response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrBankInvalid,
			map[string]string{"bank": ve.Result.Summary()})
		return
	}
	response.Fail(c, http.StatusUnprocessableEntity, response.ErrBankInvalid)
}
