package middleware

import (
	"errors"
	"net/http"

	"starwars-api/internal/apierror"
	"starwars-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// *apierror.Error values become {message, ...} with their own status; any
// other error is logged and answered with a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var apiErr *apierror.Error
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.StatusCode, apiErr.ToMap())
			return
		}
		logger.FromGin(c).Error("unhandled error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}
