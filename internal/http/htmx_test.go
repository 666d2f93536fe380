package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMXRequestDetection(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	assert.False(t, IsHTMX(r))
	assert.False(t, WantsPartial(r))

	r.Header.Set("Hx-Request", "true")
	assert.True(t, IsHTMX(r))
	assert.True(t, WantsPartial(r))

	r.Header.Set("Hx-History-Restore-Request", "true")
	assert.True(t, IsHistoryRestore(r))
	assert.False(t, WantsPartial(r))
}

func TestSetHXTrigger_MergesEvents(t *testing.T) {
	rec := httptest.NewRecorder()

	SetHXTrigger(rec, "showToast", map[string]string{"message": "Plan deleted.", "type": "success"})
	SetHXTrigger(rec, "nav:activate", nil)

	assert.JSONEq(t,
		`{"showToast":{"message":"Plan deleted.","type":"success"},"nav:activate":true}`,
		rec.Header().Get("Hx-Trigger"))
}

func TestSetHXTrigger_ReplacesMalformedHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("Hx-Trigger", "refresh")

	SetHXTrigger(rec, "showToast", nil)

	assert.JSONEq(t, `{"showToast":true}`, rec.Header().Get("Hx-Trigger"))
}

func TestSetHXRefresh(t *testing.T) {
	rec := httptest.NewRecorder()
	SetHXRefresh(rec, false)
	assert.Equal(t, "false", rec.Header().Get("Hx-Refresh"))
	SetHXRefresh(rec, true)
	assert.Equal(t, "true", rec.Header().Get("Hx-Refresh"))
}
