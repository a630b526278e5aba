package service

import (
	"sort"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/model"
	"github.com/chatboost/chatboost-server/internal/model/dto"
)

// EntitlementService 套餐额度表的唯一持有者。
// 纯查询组件，无隐藏状态，每次都从用户记录重新计算。
type EntitlementService struct {
	plans map[string]config.PlanSpec
}

func NewEntitlementService(cfg *config.Config) *EntitlementService {
	plans := cfg.Plans
	if len(plans) == 0 {
		plans = config.DefaultPlans()
	}
	return &EntitlementService{plans: plans}
}

// ValidPlan 套餐是否存在
func (s *EntitlementService) ValidPlan(plan string) bool {
	_, ok := s.plans[plan]
	return ok
}

// LimitFor 套餐对应的消息额度，未知套餐按 free 处理
func (s *EntitlementService) LimitFor(plan string) int {
	spec, ok := s.plans[plan]
	if !ok {
		spec = s.plans[model.PlanFree]
	}
	return spec.MessageLimit
}

// Remaining 剩余额度，不限量返回 UnlimitedMessages，不会为负
func (s *EntitlementService) Remaining(user *model.User) int {
	if user.Unlimited() {
		return model.UnlimitedMessages
	}

	remaining := user.MessageLimit - user.MessagesUsed
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// CanSend 是否还能发送消息
func (s *EntitlementService) CanSend(user *model.User) bool {
	return user.Unlimited() || user.MessagesUsed < user.MessageLimit
}

// QuotaInfo 配额视图
func (s *EntitlementService) QuotaInfo(user *model.User) *dto.QuotaInfo {
	return &dto.QuotaInfo{
		Plan:         user.Plan,
		MessageLimit: user.MessageLimit,
		MessagesUsed: user.MessagesUsed,
		Remaining:    s.Remaining(user),
		Unlimited:    user.Unlimited(),
	}
}

// Plans 套餐列表（定价页数据），按价格升序
func (s *EntitlementService) Plans() []dto.PlanInfo {
	out := make([]dto.PlanInfo, 0, len(s.plans))
	for id, spec := range s.plans {
		out = append(out, dto.PlanInfo{
			ID:           id,
			DisplayName:  spec.DisplayName,
			MessageLimit: spec.MessageLimit,
			Price:        spec.Price,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Price == out[j].Price {
			return out[i].ID < out[j].ID
		}
		return out[i].Price < out[j].Price
	})
	return out
}
