package handler

import (
	"errors"
	"net/http"

	"github.com/mediatone/mediatone-server/internal/model"
)

// handleError maps a service error to an HTTP status and writes the error
// envelope. This is the single place where the error taxonomy turns into
// status codes; internal detail never leaks to the client.
func handleError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = "invalid credentials"
	case errors.Is(err, model.ErrTokenExpired):
		status = http.StatusUnauthorized
		message = "token expired"
	case errors.Is(err, model.ErrTokenInvalid):
		status = http.StatusUnauthorized
		message = "invalid authorization token"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "unauthorized"
	case errors.Is(err, model.ErrNotOwner):
		status = http.StatusForbidden
		message = "insufficient permissions"
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, model.ErrDuplicate):
		status = http.StatusConflict
		message = "already exists"
	case errors.Is(err, model.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
		message = "file too large"
	case errors.Is(err, model.ErrUnsupportedMediaType):
		status = http.StatusUnsupportedMediaType
		message = "unsupported media type"
	case errors.Is(err, model.ErrStorageFailure):
		status = http.StatusBadGateway
		message = "storage unavailable"
	}

	writeJSON(w, status, map[string]any{
		"success": false,
		"message": message,
	})
}
