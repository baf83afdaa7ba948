package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/corporate-translator/internal/llm"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Generation failures map to 503 to signal transience; everything else
// unclassified is a 500.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var generationErr *llm.GenerationError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &generationErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
