package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/pkg/logger"
)

// Logger logs each request with method, path, status, latency and the
// authenticated user when one is set.
func Logger() gin.HandlerFunc {
	skip := map[string]bool{"/health": true}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if skip[path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		userID := c.GetString("userID")

		switch {
		case status >= 500:
			logger.Error("%s %s -> %d (%v) user=%s", c.Request.Method, path, status, latency, userID)
		case status >= 400:
			logger.Warn("%s %s -> %d (%v) user=%s", c.Request.Method, path, status, latency, userID)
		default:
			logger.Info("%s %s -> %d (%v)", c.Request.Method, path, status, latency)
		}
	}
}
