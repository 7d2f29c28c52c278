package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck es una dependencia que /health comprueba.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

type HealthController struct {
	checks  []HealthCheck
	timeout time.Duration
}

func NewHealthController(timeout time.Duration, checks ...HealthCheck) *HealthController {
	return &HealthController{checks: checks, timeout: timeout}
}

// GetHealth responde 200 si todas las dependencias responden, 503 con la primera que falle.
func (h *HealthController) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "error",
				"dependency": check.Name,
				"error":      err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
