package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/internal/pkg/response"
	"github.com/chatboost/chatboost-server/internal/service"
)

// APIKeyAuth API Key 认证中间件（X-API-Key 头），供程序化接入的 /chat 使用
func APIKeyAuth(chatService *service.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			response.AuthError(c, "请提供 API Key")
			c.Abort()
			return
		}

		user, err := chatService.GetUserByAPIKey(apiKey)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				response.AuthError(c, "无效的 API Key")
			} else {
				response.ServerError(c, "")
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, user.ID)
		c.Next()
	}
}
