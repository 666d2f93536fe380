package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMXResponse_Redirect(t *testing.T) {
	for _, target := range []string{"/", "/login?notice=signed-out", "/payments?page=2&status=failed"} {
		t.Run(target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HTMX(rec).Redirect(target)

			assert.Equal(t, target, rec.Header().Get("Hx-Redirect"))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestHTMXResponse_ToastAfterMutation(t *testing.T) {
	rec := httptest.NewRecorder()

	HTMX(rec).PushURL("/plans?page=2").Toast("Plan deleted.", "success")

	assert.Equal(t, "/plans?page=2", rec.Header().Get("Hx-Push-Url"))
	assert.JSONEq(t, `{"showToast":{"message":"Plan deleted.","type":"success"}}`, rec.Header().Get("Hx-Trigger"))
	assert.False(t, rec.Flushed)
	assert.Equal(t, http.StatusOK, rec.Code, "chainable calls must not write a status")
}

func TestHTMXResponse_EmptyToastIsDropped(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Toast("   ", "error")
	assert.Empty(t, rec.Header().Get("Hx-Trigger"))
}

func TestHTMXResponse_TriggerAndRetarget(t *testing.T) {
	rec := httptest.NewRecorder()

	HTMX(rec).Trigger("plans:changed", map[string]int{"deleted": 3}).Retarget("#content")

	assert.JSONEq(t, `{"plans:changed":{"deleted":3}}`, rec.Header().Get("Hx-Trigger"))
	assert.Equal(t, "#content", rec.Header().Get("Hx-Retarget"))
}

func TestHTMXResponse_Refresh(t *testing.T) {
	rec := httptest.NewRecorder()
	HTMX(rec).Refresh()

	assert.Equal(t, "true", rec.Header().Get("Hx-Refresh"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
