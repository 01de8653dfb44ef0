package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/proposal-desk/internal/interface/http/response"
	"github.com/ignatzorin/proposal-desk/internal/logger"
	"github.com/ignatzorin/proposal-desk/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки, добавленные хэндлерами через c.Error.
// Внутренние ошибки логируются и маскируются, AppError отдаются как есть.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		fields := logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}
		switch {
		case errors.As(err, &appErr) && appErr.HTTPStatus < 500:
			logger.Get().WithFields(fields).Debug("http: ошибка запроса")
		default:
			logger.Get().WithFields(fields).Error("http: ошибка обработки запроса")
		}

		// ответ уже отправлен хэндлером
		if c.Writer.Written() {
			return
		}
		response.Error(c, err)
	}
}
