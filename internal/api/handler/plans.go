package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/internal/pkg/response"
	"github.com/chatboost/chatboost-server/internal/service"
)

type PlansHandler struct {
	entitlement *service.EntitlementService
}

func NewPlansHandler(entitlement *service.EntitlementService) *PlansHandler {
	return &PlansHandler{entitlement: entitlement}
}

// List 获取套餐列表（定价页数据）
// GET /api/v1/plans
func (h *PlansHandler) List(c *gin.Context) {
	response.Success(c, gin.H{
		"plans": h.entitlement.Plans(),
	})
}
