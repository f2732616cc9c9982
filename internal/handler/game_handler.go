package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quizboard/quizboard-backend/internal/model"
	"github.com/quizboard/quizboard-backend/internal/response"
	"github.com/quizboard/quizboard-backend/internal/service"
	"github.com/quizboard/quizboard-backend/internal/validator"
)

// GameHandler handles the game lifecycle endpoints consumed by the board UI.
type GameHandler struct {
	gameService  *service.GameService
	bankService  *service.BankService
	historyLimit int
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(gameService *service.GameService, bankService *service.BankService, historyLimit int) *GameHandler {
	return &GameHandler{
		gameService:  gameService,
		bankService:  bankService,
		historyLimit: historyLimit,
	}
}

// SetupGame godoc
// POST /api/v1/game/setup
// Creates a new game session, replacing any existing one.
func (h *GameHandler) SetupGame(c *gin.Context) {
	var req model.SetupGameRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var uploaded *model.QuestionBank
	if len(req.UploadedQuestions) > 0 {
		b, _, err := h.bankService.ValidateUpload(req.UploadedQuestions)
		if err != nil {
			failBankValidation(c, err)
			return
		}
		uploaded = b
	}

	session, err := h.gameService.Setup(c.Request.Context(), req.Players, req.QuestionsFile, uploaded)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": session})
}

// GetState godoc
// GET /api/v1/game/state
// Returns the persisted session and the resolved bank. A missing session
// means the client must redirect to setup.
func (h *GameHandler) GetState(c *gin.Context) {
	session, bank, err := h.gameService.State(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveGame) {
			response.Fail(c, http.StatusNotFound, response.ErrNoActiveGame)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"session": session,
		"bank":    bank,
	})
}

// AnswerQuestion godoc
// POST /api/v1/game/answer
// Applies the current player's answer and persists the updated session.
func (h *GameHandler) AnswerQuestion(c *gin.Context) {
	var req model.AnswerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result, err := h.gameService.Answer(c.Request.Context(), req.QuestionID, *req.OptionIndex)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveGame):
			response.Fail(c, http.StatusNotFound, response.ErrNoActiveGame)
		case errors.Is(err, service.ErrGameFinished):
			response.Fail(c, http.StatusConflict, response.ErrGameFinished)
		case errors.Is(err, service.ErrQuestionNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrQuestionNotFound)
		case errors.Is(err, service.ErrQuestionAnswered):
			response.Fail(c, http.StatusConflict, response.ErrQuestionAnswered)
		case errors.Is(err, service.ErrInvalidOption):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidOption)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// RestartGame godoc
// POST /api/v1/game/restart
// Clears the session slot.
func (h *GameHandler) RestartGame(c *gin.Context) {
	if err := h.gameService.Restart(c.Request.Context()); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "game cleared"})
}

// GetHistory godoc
// GET /api/v1/history
// Lists recently finished games for the results dashboard.
func (h *GameHandler) GetHistory(c *gin.Context) {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	games, err := h.gameService.History(c.Request.Context(), limit)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"games": games})
}
