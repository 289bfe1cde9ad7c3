package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReadinessCheck reports whether one backing dependency is reachable.
type ReadinessCheck struct {
	Name  string
	Check func() error
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks []ReadinessCheck
}

func NewHealthHandler(checks ...ReadinessCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Live handles GET /health.
func (h *HealthHandler) Live(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /health/ready. Returns 503 when any dependency
// check fails, with per-dependency detail.
func (h *HealthHandler) Ready(c echo.Context) error {
	detail := make(map[string]string, len(h.checks))
	healthy := true
	for _, chk := range h.checks {
		if err := chk.Check(); err != nil {
			detail[chk.Name] = err.Error()
			healthy = false
			continue
		}
		detail[chk.Name] = "ok"
	}
	code, status := http.StatusOK, "ok"
	if !healthy {
		code, status = http.StatusServiceUnavailable, "degraded"
	}
	return c.JSON(code, map[string]any{
		"status": status,
		"checks": detail,
	})
}
