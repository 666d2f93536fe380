package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/target/subscription-admin/internal/errors"
)

const maxJSONBody = 1 << 20

// decodeStrictJSON decodes a closed JSON payload: unknown fields and trailing data are rejected.
func decodeStrictJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(io.LimitReader(body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeValidation, "Request body is not valid JSON")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperrors.Validation("Request body must hold a single JSON object")
	}
	return nil
}

// isJSONRequest reports whether the request body is JSON rather than a form.
func isJSONRequest(r *http.Request) bool {
	media, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
	return strings.EqualFold(strings.TrimSpace(media), "application/json")
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError to adhere to the ≤3 params guideline.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes the normalized {error, details?} body.
// Field messages carried by an AppError are exposed under details.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	body := map[string]any{"error": apperrors.UserMessage(p.Err), "code": p.ErrCode}
	if fields := apperrors.GetFields(p.Err); len(fields) > 0 {
		details := make(map[string][]string, len(fields))
		for field, msg := range fields {
			details[field] = []string{msg}
		}
		body["details"] = details
	}
	WriteJSON(w, p.Code, body)
}

// WriteAppError writes err as JSON with the status its AppError code maps to.
func WriteAppError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus()
	}
	WriteError(w, ErrorParams{Code: status, ErrCode: string(apperrors.GetCode(err)), Err: err})
}
