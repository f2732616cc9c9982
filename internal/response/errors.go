package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrBankInvalid    ErrCode = "BANK_INVALID"
	ErrFileTooLarge   ErrCode = "FILE_TOO_LARGE"

	// ─── Game flow ─────────────────────────────────────────────────────
	ErrNoActiveGame     ErrCode = "NO_ACTIVE_GAME"
	ErrGameFinished     ErrCode = "GAME_FINISHED"
	ErrQuestionNotFound ErrCode = "QUESTION_NOT_FOUND"
	ErrQuestionAnswered ErrCode = "QUESTION_ALREADY_ANSWERED"
	ErrInvalidOption    ErrCode = "INVALID_OPTION"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "The request payload failed validation."
	case ErrInvalidPayload:
		return "The request payload could not be parsed."
	case ErrBankInvalid:
		return "The uploaded question bank is invalid."
	case ErrFileTooLarge:
		return "The uploaded file exceeds the size limit."
	case ErrNoActiveGame:
		return "No game is in progress. Set up a new game first."
	case ErrGameFinished:
		return "The game is already finished."
	case ErrQuestionNotFound:
		return "The question does not exist in the active bank."
	case ErrQuestionAnswered:
		return "The question has already been answered."
	case ErrInvalidOption:
		return "The selected option index is out of range."
	case ErrRateLimitExceeded:
		return "Too many requests. Try again later."
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "Unknown error."
	}
}
