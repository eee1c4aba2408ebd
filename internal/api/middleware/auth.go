package middleware

import (
	"context"
	log "log/slog"
	"net/http"
	"strings"

	"github.com/Baktyiar1/Netflix144p/internal/pkg/response"
	"github.com/Baktyiar1/Netflix144p/internal/pkg/security"
	"github.com/Baktyiar1/Netflix144p/internal/service"

	"github.com/gin-gonic/gin"
)

// gin.Context 中保存身份信息的 Key
const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
)

type userIDCtxKey struct{}

// UserIDFromContext 读取 AuthMiddleware 注入的用户 ID
func UserIDFromContext(ctx context.Context) uint64 {
	id, _ := ctx.Value(userIDCtxKey{}).(uint64)
	return id
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(jwt *security.JWTManager, store security.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Abort(c, http.StatusUnauthorized, service.KindUnauthorized, "Token 缺失或格式错误")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, service.KindUnauthorized, "Token 缺失或格式错误")
			return
		}

		revoked, err := store.IsRevoked(c.Request.Context(), signature)
		if err != nil {
			log.ErrorContext(c.Request.Context(), "check token blacklist failed", "err", err)
			response.Abort(c, http.StatusInternalServerError, service.KindStoreError, service.UnExpectedError.Error())
			return
		}
		if revoked {
			response.Abort(c, http.StatusUnauthorized, service.KindUnauthorized, "Token 无效或已过期")
			return
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, service.KindUnauthorized, "Token 无效或已过期")
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(RolesKey, claims.Roles)

		newCtx := context.WithValue(c.Request.Context(), userIDCtxKey{}, claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
