package httpx

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/target/subscription-admin/internal/errors"
)

// ErrorRenderer is a function that renders an error template with the given data.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, data any)

// ErrorOpts contains all options needed to render an error response.
type ErrorOpts struct {
	W   http.ResponseWriter
	R   *http.Request
	Err error // optional when only field errors are reported
	// FieldErrors maps form field names to messages. Fields carried by Err are merged in.
	FieldErrors map[string]string
	Renderer    ErrorRenderer
	PageMeta    PageMeta
	// Data is merged last so forms keep the values the administrator entered.
	Data map[string]any
	// StatusCode defaults to 200 so htmx swaps the re-rendered form.
	StatusCode int
	// ShowToast additionally raises the general message as a toast.
	ShowToast bool
}

// DetermineErrorStatus maps an error to the status a re-rendered page should carry.
// Validation failures return 0 so htmx still swaps the form.
func DetermineErrorStatus(err error) int {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeConflict:
		return http.StatusConflict
	default:
		return 0
	}
}

// RenderError re-renders a page with a general banner and per-field messages.
func RenderError(opts ErrorOpts) {
	if opts.Renderer == nil {
		http.Error(opts.W, "misconfigured error renderer", http.StatusInternalServerError)
		return
	}

	builder := NewTemplateData(opts.R, opts.PageMeta)
	generalError := processError(opts.Err, &opts.FieldErrors)

	if len(opts.FieldErrors) > 0 {
		builder.WithFieldErrors(opts.FieldErrors)
	}
	switch {
	case generalError != "":
		builder.WithError(generalError)
	case len(opts.FieldErrors) > 0:
		builder.WithError(errMsgFixBelow)
	}
	for k, v := range opts.Data {
		builder.With(k, v)
	}

	if opts.ShowToast && generalError != "" {
		triggerToast(opts.W, generalError, "error")
	}
	if opts.StatusCode != 0 {
		opts.W.WriteHeader(opts.StatusCode)
	}
	opts.Renderer(opts.W, opts.R, builder.Build())
}

// processError returns the message to show for err and copies any per-field
// details it carries into fieldErrors. Returns "" for a nil error.
func processError(err error, fieldErrors *map[string]string) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || apperrors.IsTimeout(err) {
		return "Request timed out. Please try again."
	}
	if errors.Is(err, context.Canceled) || apperrors.IsCanceled(err) {
		return "Request was canceled."
	}

	if fields := apperrors.GetFields(err); len(fields) > 0 && fieldErrors != nil {
		if *fieldErrors == nil {
			*fieldErrors = make(map[string]string, len(fields))
		}
		for field, msg := range fields {
			if _, exists := (*fieldErrors)[field]; !exists {
				(*fieldErrors)[field] = msg
			}
		}
	}
	return apperrors.UserMessage(err)
}
