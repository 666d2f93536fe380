package errors

import (
	"context"
	"errors"
	"net/http"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
)

// FromAPIError maps a backend client failure onto an AppError.
// The backend's message is kept verbatim so the user sees what the backend said.
//
//   - 400/422 with details → Validation (Fields populated)
//   - 401/403 → Unauthorized
//   - 404 → NotFound
//   - 409 → Conflict
//   - no response → Unavailable, or Timeout/Canceled for context errors
//   - anything else → Internal
//
// Errors that are not backend failures are returned unchanged.
func FromAPIError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return err
	}

	apiErr, ok := backendapi.AsAPIError(err)
	if !ok {
		return mapContextError(err)
	}

	if apiErr.IsTransport() {
		if mapped := mapContextError(apiErr); mapped != error(apiErr) {
			return mapped
		}
		return &AppError{Code: ErrCodeUnavailable, Message: apiErr.Message, Cause: apiErr}
	}

	out := &AppError{Message: apiErr.Message, Cause: apiErr, Fields: apiErr.FieldErrors()}
	switch apiErr.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		out.Code = ErrCodeValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		out.Code = ErrCodeUnauthorized
	case http.StatusNotFound:
		out.Code = ErrCodeNotFound
	case http.StatusConflict:
		out.Code = ErrCodeConflict
	case http.StatusGatewayTimeout:
		out.Code = ErrCodeTimeout
	default:
		if len(out.Fields) > 0 && apiErr.Status < http.StatusInternalServerError {
			out.Code = ErrCodeValidation
		} else {
			out.Code = ErrCodeInternal
		}
	}
	if len(out.Fields) == 1 {
		for field := range out.Fields {
			out.Field = field
		}
	}
	return out
}

func mapContextError(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &AppError{
			Code:    ErrCodeTimeout,
			Message: "Request timed out. Please try again.",
			Cause:   err,
		}
	case errors.Is(err, context.Canceled):
		return &AppError{
			Code:    ErrCodeCanceled,
			Message: "Request was canceled.",
			Cause:   err,
		}
	default:
		return err
	}
}
