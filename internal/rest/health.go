package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health reports 503 when any dependency is unreachable
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	res := gin.H{}
	for name, check := range h.checks {
		if err := check(c.Request.Context()); err != nil {
			logrus.Warnf("health check %s failed: %v", name, err)
			res[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		res[name] = "up"
	}
	c.JSON(status, res)
}
