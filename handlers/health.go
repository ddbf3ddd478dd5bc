package handlers

import (
	"net/http"

	"localconnect/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health with the last probe results.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := utils.HealthStatus{}
		if monitor != nil {
			status = monitor.Status()
		}
		code := http.StatusOK
		state := "ok"
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "checks": status})
	}
}
