package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/internal/pkg/jwt"
	"github.com/chatboost/chatboost-server/internal/pkg/response"
	"github.com/chatboost/chatboost-server/internal/session"
)

const (
	UserIDKey    = "userID"
	SessionIDKey = "sessionID"
)

// Auth JWT 认证中间件。签名有效还不够：Token 里的会话必须仍然存在，
// 登出或快照损坏的会话恢复为匿名，同样拒绝
func Auth(jwtSecret string, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AuthError(c, "请提供认证信息")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			response.AuthError(c, "认证格式错误")
			c.Abort()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err != nil {
			response.AuthError(c, "认证失败或已过期")
			c.Abort()
			return
		}

		_, state, err := sessions.Resume(c.Request.Context(), claims.SessionID)
		if err != nil {
			response.ServerError(c, "")
			c.Abort()
			return
		}
		if state != session.StateAuthenticated {
			response.AuthError(c, "会话已失效，请重新登录")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

// OptionalAuth 可选认证中间件（不强制要求登录）
func OptionalAuth(jwtSecret string, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(tokenString, jwtSecret)
		if err == nil {
			if _, state, rerr := sessions.Resume(c.Request.Context(), claims.SessionID); rerr == nil && state == session.StateAuthenticated {
				c.Set(UserIDKey, claims.UserID)
				c.Set(SessionIDKey, claims.SessionID)
			}
		}

		c.Next()
	}
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := userID.(int64)
	return id, ok
}

// GetSessionID 从上下文获取会话 ID
func GetSessionID(c *gin.Context) string {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return ""
	}
	sid, _ := sessionID.(string)
	return sid
}
