package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"salascrea/internal/client"
	"salascrea/internal/engine"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// FromSubmission maps an engine submission failure to the status the
// gateway answers with. Upstream rejections keep the raw upstream body
// so the user sees the server-provided detail.
func FromSubmission(err error) *HTTPError {
	var rejected *client.RejectedError
	switch {
	case stderrors.Is(err, engine.ErrIncompleteRequest):
		return NewHTTPError(http.StatusBadRequest, "Completa todos los campos")
	case stderrors.Is(err, engine.ErrMissingToken):
		return NewHTTPError(http.StatusUnauthorized, "Token no encontrado, inicia sesión")
	case stderrors.Is(err, engine.ErrSubmitInFlight):
		return NewHTTPError(http.StatusConflict, "Ya hay una reserva en curso para esta sala")
	case stderrors.As(err, &rejected):
		return NewHTTPError(http.StatusBadGateway,
			fmt.Sprintf("Error %d: %s", rejected.StatusCode, rejected.Body))
	default:
		return NewHTTPError(http.StatusInternalServerError, "No se pudo crear la reserva")
	}
}
