package httpx

import (
	"net/http"

	apperrors "github.com/target/subscription-admin/internal/errors"
)

const msgPageNotFound = "The page you're looking for doesn't exist."

// NotFound handles 404 errors with auth-aware behavior.
// Browsers get the HTML error page, JSON clients the normalized error body.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		h.renderAPINotFound(w, r)
		return
	}
	h.renderBrowserNotFound(w, r)
}

// renderBrowserNotFound renders an HTML 404 page; signed-out visitors are offered the login link.
func (h *UIHandlers) renderBrowserNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderErrorPage(w, r, http.StatusNotFound, msgPageNotFound)
}

// renderAPINotFound renders a JSON 404 response.
func (h *UIHandlers) renderAPINotFound(w http.ResponseWriter, _ *http.Request) {
	WriteError(w, ErrorParams{
		Code:    http.StatusNotFound,
		ErrCode: string(apperrors.ErrCodeNotFound),
		Err:     apperrors.NotFound("not found"),
	})
}
