package middleware

import (
	"ProtectAdmin/internal/pkg/redis"
	"ProtectAdmin/internal/pkg/response"
	"ProtectAdmin/internal/pkg/security"
	"ProtectAdmin/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将管理员身份信息注入 Context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		// 登出后的 token 签名进了黑名单
		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Set("email", claims.Email)
		c.Set("roles", claims.Roles)

		newCtx := context.WithValue(c.Request.Context(), "admin_id", claims.AdminID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
