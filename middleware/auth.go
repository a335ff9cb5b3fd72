package middleware

import (
	"net/http"
	"strings"

	gwctx "Greenway/pkg/context"
	"Greenway/pkg/log"
	"Greenway/pkg/response"
	"Greenway/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BearerToken 从 Authorization 头取出 token，没有则返回空串
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// Auth 校验指定命名空间的会话 token，通过后把主体 ID 放进上下文
func Auth(store session.Store, kind session.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "缺少 Authorization")
			return
		}

		principalID, ok, err := store.Resolve(c.Request.Context(), kind, token)
		if err != nil {
			log.L.Error("session store unavailable", zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, "服务器内部错误")
			return
		}
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "未授权")
			return
		}

		c.Set(gwctx.CtxPrincipalID, principalID)
		c.Set(gwctx.CtxToken, token)

		c.Next()
	}
}
