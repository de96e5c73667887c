package middleware

import (
	"net/http"

	"trivia_api/internal/util"
	"trivia_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler 统一把 ctx.Error 记录的错误转换为 {success, error_code, message}
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := util.StatusFor(err)

		if status >= http.StatusInternalServerError {
			util.LogInternalError(c, err)
			return
		}

		logger.Log.Debug("request rejected",
			zap.Int("status", status),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(util.RequestIDKey)),
			zap.Error(err),
		)
		util.Error(c, status)
	}
}
