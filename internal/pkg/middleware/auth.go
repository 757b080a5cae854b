package middleware

import (
	"net/http"
	"strings"

	"community_api/pkg/apperr"
	"community_api/pkg/response"
	"community_api/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID token 中解析出的用户 ID 在 gin.Context 中的 key
const ContextUserID = "userID"

// OptionalAuth 可选的身份认证
// 无 Authorization 头时直接放行；携带 token 时必须有效，sub 作为当前用户 ID。
// An empty secret disables token checking entirely.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || secret == "" {
			c.Next()
			return
		}

		// 检查格式 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, apperr.CodeUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(secret, strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperr.CodeUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UserID 返回当前请求的用户 ID，未认证时为空
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
