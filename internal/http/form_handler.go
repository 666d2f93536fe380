package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	apperrors "github.com/target/subscription-admin/internal/errors"
)

// FormParser maps submitted form values to a request payload and reports per-field parse problems.
// JSON bodies bypass the parser and are decoded strictly into T.
type FormParser[T any] func(form url.Values) (T, map[string]string)

// FormRenderer is a function that renders the form template with the given data.
type FormRenderer func(w http.ResponseWriter, r *http.Request, data map[string]any)

// FormHandlerOpts contains all options needed to handle a form submission.
type FormHandlerOpts[T any] struct {
	H    *UIHandlers
	W    http.ResponseWriter
	R    *http.Request
	Mode FormMode
	// Parser maps form values to T.
	Parser FormParser[T]
	// Submit performs the mutation. Field details carried by an AppError are shown next to their inputs.
	Submit func(ctx context.Context, req T) error
	// OnSuccess writes the response once Submit succeeded.
	OnSuccess func(w http.ResponseWriter, r *http.Request)
	// Renderer re-renders the form with the entered values and errors.
	Renderer FormRenderer
	PageMeta PageMeta
	// ExtraData is merged into the re-rendered form (option lists, the item being edited).
	ExtraData map[string]any
	// ErrorStatus sets the status of a re-rendered form. Zero keeps 200 so htmx swaps it.
	ErrorStatus int
}

// HandleForm parses a submission, runs it, and either hands off to OnSuccess or re-renders the form.
// On failure the form stays open with what the administrator entered.
//
// Usage example:
//
//	HandleForm(FormHandlerOpts[model.CreatePlanRequest]{
//	    H: h, W: w, R: r, Mode: FormModeCreate,
//	    Parser: parseCreatePlanForm,
//	    Submit: func(ctx context.Context, req model.CreatePlanRequest) error { ... },
//	    OnSuccess: func(w http.ResponseWriter, r *http.Request) { ... },
//	    Renderer: h.renderPlanForm,
//	    PageMeta: pageMeta("New Plan", PagePlanForm),
//	})
func HandleForm[T any](opts FormHandlerOpts[T]) {
	if !validateFormOptions(opts) {
		return
	}

	data, fieldErrs := bindForm(opts.R, opts.Parser)
	if len(fieldErrs) > 0 {
		opts.renderFormError(nil, fieldErrs, data)
		return
	}

	if err := opts.Submit(opts.R.Context(), data); err != nil {
		handleFormServiceError(opts, err, data)
		return
	}
	opts.OnSuccess(opts.W, opts.R)
}

// validateFormOptions validates required options and mode.
func validateFormOptions[T any](opts FormHandlerOpts[T]) bool {
	if opts.H == nil || opts.Parser == nil || opts.Submit == nil || opts.OnSuccess == nil || opts.Renderer == nil {
		http.Error(opts.W, "misconfigured form handler", http.StatusInternalServerError)
		return false
	}

	switch opts.Mode {
	case FormModeEdit, FormModeCreate:
		return true
	default:
		http.Error(opts.W, "invalid form mode", http.StatusBadRequest)
		return false
	}
}

// handleFormServiceError handles errors from Submit.
func handleFormServiceError[T any](opts FormHandlerOpts[T], err error, data T) {
	if opts.H.handleBackendFailure(opts.W, opts.R, err) {
		return
	}
	if errors.Is(err, context.Canceled) {
		http.Error(opts.W, "request canceled", http.StatusRequestTimeout)
		return
	}
	if !apperrors.IsValidation(err) {
		opts.H.logger().WarnContext(opts.R.Context(), "form submission failed",
			"path", opts.R.URL.Path,
			"mode", opts.Mode,
			"error", err,
		)
	}
	opts.renderFormError(err, nil, data)
}

// renderFormError renders the form with errors and preserves form data.
func (fh FormHandlerOpts[T]) renderFormError(err error, fieldErrs map[string]string, data T) {
	if wantsJSON(fh.R) {
		writeFormJSONError(fh.W, err, fieldErrs)
		return
	}

	extra := make(map[string]any, len(fh.ExtraData)+2)
	for k, v := range fh.ExtraData {
		extra[k] = v
	}
	extra["Mode"] = fh.Mode
	extra["FormData"] = data

	status := fh.ErrorStatus
	if status == 0 {
		status = DetermineErrorStatus(err)
	}
	RenderError(ErrorOpts{
		W:           fh.W,
		R:           fh.R,
		Err:         err,
		FieldErrors: fieldErrs,
		Renderer:    ErrorRenderer(func(w http.ResponseWriter, r *http.Request, d any) { fh.Renderer(w, r, d.(map[string]any)) }),
		PageMeta:    fh.PageMeta,
		Data:        extra,
		StatusCode:  status,
		ShowToast:   status >= http.StatusBadRequest,
	})
}

// writeFormJSONError answers JSON clients with the normalized {error, details?} body.
func writeFormJSONError(w http.ResponseWriter, err error, fieldErrs map[string]string) {
	if err == nil {
		err = apperrors.ValidationFields(errMsgFixBelow, fieldErrs)
	}
	WriteAppError(w, err)
}
