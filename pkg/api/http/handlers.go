package http

import (
	"net/http"
	"time"

	"github.com/aescanero/fargate-hello/internal/page"
	"github.com/gin-gonic/gin"
)

// handleIndex serves the static demo page
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, page.ContentType, page.Bytes())
}

// handleHealth handles health check requests
func (o *OpsServer) handleHealth(c *gin.Context) {
	status := o.monitor.GetStatus()

	if !status.Serving {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unavailable",
			"version":   status.Version,
			"timestamp": status.Timestamp.Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"version":        status.Version,
		"uptime_seconds": int64(status.Uptime.Seconds()),
		"timestamp":      status.Timestamp.Format(time.RFC3339),
	})
}
