package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/internal/model"
)

// TestPassword 测试用户的明文密码
const TestPassword = "password"

// bcrypt 代价高，哈希在包内缓存一次
var testPasswordHash string

func passwordHash(t *testing.T) string {
	t.Helper()

	if testPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("Failed to hash test password: %v", err)
		}
		testPasswordHash = string(hash)
	}
	return testPasswordHash
}

// TestUser 创建测试用户
func TestUser(t *testing.T, db *gorm.DB, opts ...func(*model.User)) *model.User {
	t.Helper()

	user := &model.User{
		Name:         fmt.Sprintf("Test User %d", time.Now().UnixNano()%10000),
		Email:        fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		PasswordHash: passwordHash(t),
		Plan:         model.PlanFree,
		MessagesUsed: 0,
		MessageLimit: 10,
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// WithName 设置用户名
func WithName(name string) func(*model.User) {
	return func(u *model.User) {
		u.Name = name
	}
}

// WithEmail 设置邮箱
func WithEmail(email string) func(*model.User) {
	return func(u *model.User) {
		u.Email = email
	}
}

// WithPlan 设置套餐及额度
func WithPlan(plan string, messageLimit int) func(*model.User) {
	return func(u *model.User) {
		u.Plan = plan
		u.MessageLimit = messageLimit
	}
}

// WithMessagesUsed 设置已用消息数
func WithMessagesUsed(used int) func(*model.User) {
	return func(u *model.User) {
		u.MessagesUsed = used
	}
}

// WithAPIKey 设置 API Key
func WithAPIKey(key string) func(*model.User) {
	return func(u *model.User) {
		u.APIKey = &key
	}
}

// TestMessage 创建测试消息
func TestMessage(t *testing.T, db *gorm.DB, userID int64, botID, sender, content string) *model.Message {
	t.Helper()

	msg := &model.Message{
		ID:      "msg_" + uuid.NewString(),
		UserID:  userID,
		BotID:   botID,
		Sender:  sender,
		Content: content,
	}

	if err := db.Create(msg).Error; err != nil {
		t.Fatalf("Failed to create test message: %v", err)
	}

	return msg
}

// TestSubscription 创建套餐变更记录
func TestSubscription(t *testing.T, db *gorm.DB, userID int64, plan, previousPlan string) *model.Subscription {
	t.Helper()

	sub := &model.Subscription{
		UserID:       userID,
		Plan:         plan,
		PreviousPlan: previousPlan,
	}

	if err := db.Create(sub).Error; err != nil {
		t.Fatalf("Failed to create test subscription: %v", err)
	}

	return sub
}
