package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"lookcircuit-backend/internal/shared/telemetry"
)

// Context keys handlers may set to enrich the request log line.
const (
	ScanIDKey    = "scanId"
	SessionIDKey = "sessionId"
	FlowEventKey = "flowEvent"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		userID, _ := c.Get(userIDKey)
		isGuest, _ := c.Get(isGuestKey)
		scanID, _ := c.Get(ScanIDKey)
		sessionID, _ := c.Get(SessionIDKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      c.Writer.Status(),
			"flow_event":  c.GetString(FlowEventKey),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"user_id":     userID,
			"scan_id":     scanID,
			"session_id":  sessionID,
			"is_guest":    isGuest,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
