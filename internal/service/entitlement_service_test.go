package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/model"
)

func newTestEntitlement() *EntitlementService {
	return NewEntitlementService(&config.Config{Plans: config.DefaultPlans()})
}

func TestEntitlementService_LimitFor(t *testing.T) {
	service := newTestEntitlement()

	assert.Equal(t, 10, service.LimitFor(model.PlanFree))
	assert.Equal(t, 15, service.LimitFor(model.PlanIndividual))
	assert.Equal(t, 30, service.LimitFor(model.PlanGroup))
	assert.Equal(t, model.UnlimitedMessages, service.LimitFor(model.PlanLifetime))
	assert.Equal(t, 10, service.LimitFor("unknown")) // 未知套餐按 free 处理
}

func TestEntitlementService_ValidPlan(t *testing.T) {
	service := newTestEntitlement()

	assert.True(t, service.ValidPlan(model.PlanFree))
	assert.True(t, service.ValidPlan(model.PlanLifetime))
	assert.False(t, service.ValidPlan("enterprise"))
	assert.False(t, service.ValidPlan(""))
}

func TestEntitlementService_Remaining(t *testing.T) {
	service := newTestEntitlement()

	user := &model.User{Plan: model.PlanFree, MessagesUsed: 3, MessageLimit: 10}
	assert.Equal(t, 7, service.Remaining(user))

	// 不会为负
	user.MessagesUsed = 12
	assert.Equal(t, 0, service.Remaining(user))

	unlimited := &model.User{Plan: model.PlanLifetime, MessagesUsed: 9999, MessageLimit: model.UnlimitedMessages}
	assert.Equal(t, model.UnlimitedMessages, service.Remaining(unlimited))
}

func TestEntitlementService_CanSend(t *testing.T) {
	service := newTestEntitlement()

	user := &model.User{Plan: model.PlanFree, MessagesUsed: 9, MessageLimit: 10}
	assert.True(t, service.CanSend(user))

	user.MessagesUsed = 10
	assert.False(t, service.CanSend(user))

	unlimited := &model.User{Plan: model.PlanLifetime, MessagesUsed: 100000, MessageLimit: model.UnlimitedMessages}
	assert.True(t, service.CanSend(unlimited))
}

func TestEntitlementService_QuotaInfo(t *testing.T) {
	service := newTestEntitlement()

	user := &model.User{Plan: model.PlanIndividual, MessagesUsed: 8, MessageLimit: 15}
	info := service.QuotaInfo(user)

	assert.Equal(t, model.PlanIndividual, info.Plan)
	assert.Equal(t, 15, info.MessageLimit)
	assert.Equal(t, 8, info.MessagesUsed)
	assert.Equal(t, 7, info.Remaining)
	assert.False(t, info.Unlimited)

	unlimited := &model.User{Plan: model.PlanLifetime, MessagesUsed: 42, MessageLimit: model.UnlimitedMessages}
	info = service.QuotaInfo(unlimited)
	assert.True(t, info.Unlimited)
	assert.Equal(t, model.UnlimitedMessages, info.Remaining)
}

func TestEntitlementService_Plans(t *testing.T) {
	service := newTestEntitlement()

	plans := service.Plans()
	assert.Len(t, plans, 4)

	// 按价格升序
	assert.Equal(t, "free", plans[0].ID)
	assert.Equal(t, "individual", plans[1].ID)
	assert.Equal(t, "group", plans[2].ID)
	assert.Equal(t, "lifetime", plans[3].ID)
	assert.Equal(t, model.UnlimitedMessages, plans[3].MessageLimit)
}
