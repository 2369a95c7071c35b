package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger writes one structured line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		var evt *zerolog.Event
		switch {
		case status >= 500:
			evt = log.Error()
		case status >= 400:
			evt = log.Warn()
		default:
			evt = log.Info()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request handled")
	}
}

// Recovery logs the panic and answers 500.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Str("request_id", GetRequestID(c)).Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	})
}
