package backendapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
)

// UnexpectedErrorMessage is reported for every failure that produced no usable backend response.
const UnexpectedErrorMessage = "An unexpected error occurred"

// APIError is the normalized failure returned by every Client call.
// It serializes as {"error": ..., "details": ...}.
type APIError struct {
	Message string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`

	// Status is the HTTP status of the backend response, or 0 when none was received.
	Status int `json:"-"`
	// Body is the structured error body exactly as the backend sent it.
	Body json.RawMessage `json:"-"`

	cause error
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Unwrap exposes the underlying transport or decode failure, if any.
func (e *APIError) Unwrap() error { return e.cause }

// IsTransport reports whether no backend response was received.
func (e *APIError) IsTransport() bool { return e.Status == 0 }

// IsUnauthorized reports whether the backend rejected the session.
func (e *APIError) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// FieldErrors flattens Details into one message per field, as rendered next to form inputs.
func (e *APIError) FieldErrors() map[string]string {
	if e == nil || len(e.Details) == 0 {
		return nil
	}
	out := make(map[string]string, len(e.Details))
	for field, msgs := range e.Details {
		if len(msgs) > 0 {
			out[field] = strings.Join(msgs, " ")
		}
	}
	return out
}

// Unexpected wraps a transport-level failure in the generic error shape.
func Unexpected(cause error) *APIError {
	return &APIError{Message: UnexpectedErrorMessage, cause: cause}
}

// AsAPIError extracts an APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr, true
	}
	return nil, false
}

// Status returns the backend status carried by err, or 0.
func Status(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.Status
	}
	return 0
}

// errorEnvelope lists the keys backends use for the human message.
type errorEnvelope struct {
	Error   json.RawMessage            `json:"error"`
	Message string                     `json:"message"`
	Detail  string                     `json:"detail"`
	Details map[string]json.RawMessage `json:"details"`
}

// decodeAPIError turns a non-2xx response body into an APIError.
// A JSON object body is kept verbatim; anything else is reported as unexpected.
func decodeAPIError(status int, body []byte) *APIError {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return &APIError{Message: UnexpectedErrorMessage, Status: status}
	}

	var env errorEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return &APIError{Message: UnexpectedErrorMessage, Status: status, cause: err}
	}

	apiErr := &APIError{
		Message: firstNonEmpty(stringish(env.Error), env.Message, env.Detail),
		Details: decodeDetails(env.Details),
		Status:  status,
		Body:    json.RawMessage(append([]byte(nil), trimmed...)),
	}
	if apiErr.Details == nil {
		apiErr.Details = fieldErrorsFromBody(trimmed)
	}
	if apiErr.Message == "" {
		apiErr.Message = fallbackMessage(status, apiErr.Details)
	}
	return apiErr
}

// decodeDetails accepts {"field": ["msg", ...]} and {"field": "msg"}.
func decodeDetails(raw map[string]json.RawMessage) map[string][]string {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string][]string, len(raw))
	for field, v := range raw {
		if msgs := messages(v); len(msgs) > 0 {
			out[field] = msgs
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// fieldErrorsFromBody reads a bare {"field": ["msg"]} validation body.
func fieldErrorsFromBody(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}
	for _, reserved := range []string{"error", "message", "detail", "details", "success"} {
		delete(raw, reserved)
	}
	out := map[string][]string{}
	for field, v := range raw {
		var list []string
		if err := json.Unmarshal(v, &list); err == nil && len(list) > 0 {
			out[field] = list
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func messages(v json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(v, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil && s != "" {
		return []string{s}
	}
	return nil
}

// stringish returns a JSON string value, or the first message of a list.
func stringish(v json.RawMessage) string {
	if msgs := messages(v); len(msgs) > 0 {
		return msgs[0]
	}
	return ""
}

func fallbackMessage(status int, details map[string][]string) string {
	if len(details) > 0 {
		fields := make([]string, 0, len(details))
		for f := range details {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		return fields[0] + ": " + details[fields[0]][0]
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return UnexpectedErrorMessage
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
