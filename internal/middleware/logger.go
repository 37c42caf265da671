package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// LoggerConfig controls the request logger.
type LoggerConfig struct {
	SkipPaths []string
}

func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		SkipPaths: []string{"/health"},
	}
}

func Logger() gin.HandlerFunc {
	return LoggerWithConfig(DefaultLoggerConfig())
}

// LoggerWithConfig logs one line per request with enough context to
// diagnose failures: method, path, status, latency, client IP and the
// authenticated uid when the auth middleware has set one.
func LoggerWithConfig(config LoggerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		for _, skipPath := range config.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		uid := c.GetString("uid")

		if uid != "" {
			log.Printf("%s %s -> %d (%v) ip=%s uid=%s",
				c.Request.Method, path, status, latency, c.ClientIP(), uid)
		} else {
			log.Printf("%s %s -> %d (%v) ip=%s",
				c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
