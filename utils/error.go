package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Path    string `json:"path"`
}

// ErrorHandler recovers panics in later handlers and answers 500 without
// leaking the panic value; the value and path go to the log.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Recovered panic in handler",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, newErrorResponse(c, http.StatusInternalServerError,
					"Internal Server Error", "The booking service hit an unexpected error. Please try again."))
			}
		}()
		c.Next()
	}
}

// JSONError logs a 4xx at Warn and a 5xx at Error, then writes the response.
func JSONError(c *gin.Context, logger *zap.Logger, status int, message string, details string) {
	fields := []zap.Field{zap.Int("status", status), zap.String("details", details)}
	if c.Request != nil {
		fields = append(fields, zap.String("path", c.Request.URL.Path))
	}
	if status >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.JSON(status, newErrorResponse(c, status, message, details))
}

func newErrorResponse(c *gin.Context, status int, message, details string) ErrorResponse {
	resp := ErrorResponse{Status: status, Message: message, Details: details}
	if c.Request != nil {
		resp.Path = c.Request.URL.Path
	}
	return resp
}
