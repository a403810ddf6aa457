package errors

import "fmt"

// Error codes
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeInvalidMode     = "INVALID_MODE"
	ErrCodeUnsupportedDeck = "UNSUPPORTED_DECK"
	ErrCodeSynthesis       = "SYNTHESIS_FAILED"
	ErrCodeConcatenation   = "CONCATENATION_FAILED"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInternal        = "INTERNAL_ERROR"
)

// AppError is an application error carrying an error code and the HTTP status
// it maps to.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error // wrapped underlying error (optional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports an unknown resource, typically a deck id.
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewInvalidModeError reports an unrecognized completion mode.
func NewInvalidModeError(mode string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidMode,
		Message: fmt.Sprintf("invalid completion mode: %q", mode),
		Status:  400,
	}
}

// NewUnsupportedDeckError reports an audio export request for a deck whose
// category is not eligible.
func NewUnsupportedDeckError(deckID string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedDeck,
		Message: fmt.Sprintf("audio download not available for deck: %s", deckID),
		Status:  400,
	}
}

// NewSynthesisError reports a provider or transport failure during speech
// synthesis.
func NewSynthesisError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeSynthesis,
		Message: "speech synthesis failed",
		Status:  502,
		Err:     err,
	}
}

// NewConcatenationError reports a merge tool failure.
func NewConcatenationError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeConcatenation,
		Message: "audio concatenation failed",
		Status:  500,
		Err:     err,
	}
}

// NewValidationError creates a new VALIDATION_ERROR.
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}
