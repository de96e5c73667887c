package util

import (
	"net/http"

	"trivia_api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Success   bool   `json:"success" example:"false"`
	ErrorCode int    `json:"error_code" example:"422"`
	Message   string `json:"message" example:"Unable To Process Contained Instructions In The Request"`
}

// SuccessResponse 只包含成功标志的响应
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unable To Process Contained Instructions In The Request",
	http.StatusTooManyRequests:     "Too Many Requests",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusServiceUnavailable:  "Service Unavailable",
}

func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}
	return http.StatusText(code)
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, ErrorResponse{
		Success:   false,
		ErrorCode: code,
		Message:   StatusMessage(code),
	})
}

func BadRequest(c *gin.Context) {
	Error(c, http.StatusBadRequest)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	Error(c, http.StatusMethodNotAllowed)
}

func Unprocessable(c *gin.Context) {
	Error(c, http.StatusUnprocessableEntity)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(RequestIDKey)),
	)
	InternalServerError(c)
}
