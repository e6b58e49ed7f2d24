package middleware

import (
	"net/http"
	"strings"

	"Pinboard/pkg/context"
	"Pinboard/pkg/jwt"
	"Pinboard/pkg/response"
	"Pinboard/service"

	"github.com/gin-gonic/gin"
)

// Auth 必须登录，校验失败直接 401
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, service.TokenTypeAccess, parts[1])
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "登录态无效")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 可匿名访问的路由用：带合法 token 就注入 user_id，不带照常放行
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := jwt.ParseToken(secret, service.TokenTypeAccess, parts[1]); err == nil {
					c.Set(context.CtxUserID, claims.UserID)
				}
			}
		}
		c.Next()
	}
}
