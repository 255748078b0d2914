package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pr-poehali-dev/furniture-service-portal/internal/logger"
	"github.com/pr-poehali-dev/furniture-service-portal/internal/pkg/apperror"
)

// authHeader — заголовок с токеном сессии.
const authHeader = "X-Authorization"

// respondError преобразует ошибку в JSON ответ {"error": ...}.
// Внутренние ошибки логируются и отдаются с полным сообщением.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == apperror.ErrCodeInternal {
			if logger.Log != nil {
				logger.Log.WithFields(logrus.Fields{
					"path":   c.Request.URL.Path,
					"action": c.Query("action"),
					"error":  appErr.Error(),
				}).Error("internal error")
			}
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Error()})
			return
		}
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}

	if logger.Log != nil {
		logger.Log.WithFields(logrus.Fields{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		}).Error("unhandled error")
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// requireAuthHeader проверяет наличие заголовка X-Authorization до любого
// обращения к базе. Значение токена не проверяется — поведение исходной
// системы (см. DESIGN.md).
func requireAuthHeader(c *gin.Context) bool {
	if strings.TrimSpace(c.GetHeader(authHeader)) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
		return false
	}
	return true
}

// respondUnknownAction отвечает 404 с подсказкой по доступным операциям.
func respondUnknownAction(c *gin.Context, guidance string) {
	c.JSON(http.StatusNotFound, gin.H{"error": guidance})
}
