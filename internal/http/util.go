package httpx

import (
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/guregu/null/v6"
)

// maxMultipartMemory bounds multipart bodies parsed in memory (CSRF check and forms).
const maxMultipartMemory = 10 << 20

const errMsgInvalidNumber = "Enter a valid number."

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := strings.TrimSpace(r.URL.Query().Get(key)); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// wantsJSON reports whether the caller speaks JSON instead of HTML.
func wantsJSON(r *http.Request) bool {
	if isJSONRequest(r) {
		return true
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		media, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && media == "application/json" {
			return true
		}
	}
	return false
}

// parseRequestForm parses url-encoded and multipart bodies. It is safe to call more than once.
func parseRequestForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := r.ParseMultipartForm(maxMultipartMemory)
		if err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return err
		}
		return nil
	}
	return r.ParseForm()
}

// bindForm decodes a request into T. JSON bodies are decoded strictly; forms go through fromForm.
// The returned map carries per-field problems found while parsing, keyed by field name.
func bindForm[T any](r *http.Request, fromForm func(url.Values) (T, map[string]string)) (T, map[string]string) {
	var zero T
	if isJSONRequest(r) {
		var dst T
		if err := decodeStrictJSON(r.Body, &dst); err != nil {
			return zero, map[string]string{"body": processError(err, nil)}
		}
		return dst, nil
	}
	if err := parseRequestForm(r); err != nil {
		return zero, map[string]string{"body": "The submitted form could not be read."}
	}
	return fromForm(r.PostForm)
}

// formValue returns the trimmed value of a form field.
func formValue(form url.Values, key string) string {
	return strings.TrimSpace(form.Get(key))
}

// formBool reads checkbox-style fields: on, true, 1 and yes are true.
func formBool(form url.Values, key string) bool {
	switch strings.ToLower(formValue(form, key)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// fieldErrors collects per-field messages while a form is parsed.
type fieldErrors map[string]string

func (fe fieldErrors) add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// orNil returns nil for an empty set so callers can test len() or nil alike.
func (fe fieldErrors) orNil() map[string]string {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// optionalString maps an empty field to an unset value.
func optionalString(form url.Values, key string) null.String {
	if v := formValue(form, key); v != "" {
		return null.StringFrom(v)
	}
	return null.String{}
}

// optionalInt32 parses an optional integer field, recording a field error when it is malformed.
func optionalInt32(form url.Values, key string, errs fieldErrors) null.Int32 {
	v := formValue(form, key)
	if v == "" {
		return null.Int32{}
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		errs.add(key, errMsgInvalidNumber)
		return null.Int32{}
	}
	return null.Int32From(int32(n))
}

// optionalFloat parses an optional decimal field, recording a field error when it is malformed.
func optionalFloat(form url.Values, key string, errs fieldErrors) null.Float {
	v := formValue(form, key)
	if v == "" {
		return null.Float{}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		errs.add(key, errMsgInvalidNumber)
		return null.Float{}
	}
	return null.FloatFrom(f)
}

// listPage returns the page a mutation was issued from: the posted page field, then the query.
func listPage(r *http.Request) int {
	if v := strings.TrimSpace(r.PostFormValue("page")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return getPage(r.URL.Query())
}

// listParam returns a list parameter (filter, status) posted with a mutation or carried in the query.
func listParam(r *http.Request, key string) string {
	if v := strings.TrimSpace(r.PostFormValue(key)); v != "" {
		return v
	}
	return strings.TrimSpace(r.URL.Query().Get(key))
}
