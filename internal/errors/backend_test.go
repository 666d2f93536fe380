package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/target/subscription-admin/internal/adapters/backendapi"
)

func TestFromAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantMsg    string
		wantFields map[string]string
	}{
		{
			name: "validation with details",
			err: &backendapi.APIError{
				Message: "Validation failed",
				Status:  http.StatusUnprocessableEntity,
				Details: map[string][]string{"email": {"Enter a valid email address."}},
			},
			wantCode:   ErrCodeValidation,
			wantMsg:    "Validation failed",
			wantFields: map[string]string{"email": "Enter a valid email address."},
		},
		{
			name:     "unauthorized",
			err:      &backendapi.APIError{Message: "Token expired", Status: http.StatusUnauthorized},
			wantCode: ErrCodeUnauthorized,
			wantMsg:  "Token expired",
		},
		{
			name:     "forbidden",
			err:      &backendapi.APIError{Message: "Superadmin only", Status: http.StatusForbidden},
			wantCode: ErrCodeUnauthorized,
			wantMsg:  "Superadmin only",
		},
		{
			name:     "not found kept verbatim",
			err:      fmt.Errorf("delete: %w", &backendapi.APIError{Message: "Administrator not found", Status: 404}),
			wantCode: ErrCodeNotFound,
			wantMsg:  "Administrator not found",
		},
		{
			name:     "conflict",
			err:      &backendapi.APIError{Message: "Slug already exists", Status: http.StatusConflict},
			wantCode: ErrCodeConflict,
			wantMsg:  "Slug already exists",
		},
		{
			name:     "server error",
			err:      &backendapi.APIError{Message: "Internal Server Error", Status: http.StatusInternalServerError},
			wantCode: ErrCodeInternal,
			wantMsg:  "Internal Server Error",
		},
		{
			name:     "transport",
			err:      backendapi.Unexpected(errors.New("connection refused")),
			wantCode: ErrCodeUnavailable,
			wantMsg:  backendapi.UnexpectedErrorMessage,
		},
		{
			name:     "transport deadline",
			err:      backendapi.Unexpected(fmt.Errorf("GET x: %w", context.DeadlineExceeded)),
			wantCode: ErrCodeTimeout,
			wantMsg:  "Request timed out. Please try again.",
		},
		{
			name:     "canceled",
			err:      context.Canceled,
			wantCode: ErrCodeCanceled,
			wantMsg:  "Request was canceled.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAPIError(tt.err)
			var appErr *AppError
			if !errors.As(got, &appErr) {
				t.Fatalf("FromAPIError() = %T, want *AppError", got)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("Code = %v, want %v", appErr.Code, tt.wantCode)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", appErr.Message, tt.wantMsg)
			}
			for field, msg := range tt.wantFields {
				if appErr.Fields[field] != msg {
					t.Errorf("Fields[%s] = %q, want %q", field, appErr.Fields[field], msg)
				}
			}
		})
	}
}

func TestFromAPIError_Passthrough(t *testing.T) {
	if FromAPIError(nil) != nil {
		t.Fatal("nil should map to nil")
	}

	plain := errors.New("plain")
	if got := FromAPIError(plain); !errors.Is(got, plain) || GetCode(got) != "" {
		t.Errorf("plain error should pass through unchanged, got %v", got)
	}

	app := NotFound("gone")
	if got := FromAPIError(app); got != error(app) {
		t.Errorf("AppError should pass through unchanged, got %v", got)
	}
}

func TestFromAPIError_SingleFieldSetsField(t *testing.T) {
	got := FromAPIError(&backendapi.APIError{
		Message: "Invalid input",
		Status:  http.StatusBadRequest,
		Details: map[string][]string{"slug": {"taken"}},
	})
	if GetField(got) != "slug" {
		t.Errorf("GetField() = %q, want slug", GetField(got))
	}
}
