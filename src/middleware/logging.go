package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"api_clientes/src/logger"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un request id (o respeta el que llega en X-Request-ID),
// deja un logger hijo en el contexto de la petición y registra cada respuesta.
func RequestLogger(base *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		log := base.WithField("request_id", requestID)
		c.Request = c.Request.WithContext(log.WithContext(c.Request.Context()))
		c.Header(HeaderRequestID, requestID)

		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		if status >= 500 {
			evt = log.Error()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", c.Writer.Size()).
			Send()
	}
}
