package dto

// Health statuses reported by the probe endpoints.
const (
	HealthAlive    = "ok"
	HealthReady    = "ready"
	HealthNotReady = "not_ready"
)

// HealthResponse is the body of both probe endpoints. Checks is omitted by
// the liveness probe.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToReadinessResponse folds per-check results into a readiness body. A nil
// result reads "ok"; anything else carries the error text and makes the whole
// response not ready.
func ToReadinessResponse(results map[string]error) (HealthResponse, bool) {
	resp := HealthResponse{Status: HealthReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = HealthNotReady
			continue
		}
		resp.Checks[name] = HealthAlive
	}
	return resp, resp.Status == HealthReady
}
