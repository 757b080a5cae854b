package middleware

import (
	"fmt"
	"net/http"

	"community_api/pkg/apperr"
	"community_api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware 捕获 panic，返回 500
// The panic value is only echoed back in debug mode.
func RecoveryMiddleware(log *zap.Logger, debug bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)

		body := response.ErrorBody{Error: "Something went wrong!", Code: apperr.CodeInternal}
		if debug {
			body.Message = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
