package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/logger"
)

// RequestIDHeader — заголовок, в котором возвращается идентификатор запроса.
const RequestIDHeader = "X-Request-Id"

// RequestLogger присваивает каждому запросу идентификатор и пишет
// структурированную запись о результате обработки.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		if logger.Log == nil {
			return
		}

		logger.Log.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"action":     c.Query("action"),
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"client_ip":  c.ClientIP(),
		}).Info("request")
	}
}
