package main

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rdraksharam/portfolio/internal/logger"
)

// quietPrefixes are asset paths not worth a log line per request.
var quietPrefixes = []string{"/static/", "/favicon", "/healthz"}

// requestLogger logs one structured line per page request.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range quietPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Zerolog().Info()
		if status >= 500 {
			event = log.Zerolog().Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
