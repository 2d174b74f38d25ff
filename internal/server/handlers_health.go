package server

import (
	"net/http"

	"github.com/taskapp/taskapp/internal/api"
	"github.com/taskapp/taskapp/internal/constants"
)

// handleHealth reports the service version and, when a health manager is
// configured, the result of every dependency probe. Any failed probe turns
// the response into a 503.
func (r *Router) handleHealth(w http.ResponseWriter, req *http.Request) {
	resp := api.HealthResponse{
		Status:  "ok",
		Version: *constants.GetVersion(),
	}

	if r.svc.Health == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	report, err := r.svc.Health.Check(req.Context())
	if err != nil {
		r.handleAndLogError(w, req, err, "check health")
		return
	}

	for _, check := range report.Checks {
		resp.Checks = append(resp.Checks, api.HealthCheck{
			Name:    check.Name,
			Healthy: check.Healthy,
			Error:   check.Error,
		})
	}

	status := http.StatusOK
	if !report.Healthy() {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
