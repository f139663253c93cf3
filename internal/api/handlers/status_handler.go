package handlers

import (
	"net/http"

	"github.com/avaldivia/childbot-be/internal/monitoring"
)

// StatusHandler reports the health monitor's last probe result.
func StatusHandler(monitor *monitoring.HealthMonitor) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, monitor.Status())
	}
}
