package httpx

import (
	"net/http"
	"time"
)

var processStarted = time.Now()

type healthStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// healthHandler reports that the process is up. It does not probe the backend or Redis.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, healthStatus{
		Status: "ok",
		Uptime: time.Since(processStarted).Truncate(time.Second).String(),
	})
}
