// ================== internal/middleware/logger.go ==================
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/gocalendar/internal/pkg/logger"
)

// Logger configuration
type LoggerConfig struct {
	SkipPaths []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		SkipPaths: []string{"/health", "/ping"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		// Skip logging for certain paths
		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		method := c.Request.Method
		ip := c.ClientIP()
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		username := c.GetString(ContextUsername)
		requestID := c.GetString(ContextRequestID)

		fields := ""
		if query != "" {
			fields += " query=" + query
		}
		if username != "" {
			fields += " user=" + username
		}
		if requestID != "" {
			fields += " request_id=" + requestID
		}

		switch {
		case status >= 500:
			logger.Error("%s %s -> %d (%v, %s)%s", method, path, status, latency, ip, fields)
		case status >= 400:
			logger.Warn("%s %s -> %d (%v, %s)%s", method, path, status, latency, ip, fields)
		default:
			logger.Info("%s %s -> %d (%v, %s)%s", method, path, status, latency, ip, fields)
		}
	}
}
