package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/internal/pkg/response"
	"github.com/chatboost/chatboost-server/internal/repository"
	"github.com/chatboost/chatboost-server/internal/service"
)

// QuotaCheck 配额预检中间件。只做快速拒绝，真正的额度扣减
// 在 ChatService 里以原子 UPDATE 完成，并发下也不会超发
func QuotaCheck(userRepo *repository.UserRepository, entitlement *service.EntitlementService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			response.AuthError(c, "")
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(userID)
		if err != nil {
			response.ServerError(c, "配额检查失败")
			c.Abort()
			return
		}

		if !entitlement.CanSend(user) {
			response.QuotaError(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
