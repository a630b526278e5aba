package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/model"
	"github.com/chatboost/chatboost-server/internal/model/dto"
	"github.com/chatboost/chatboost-server/internal/repository"
	"github.com/chatboost/chatboost-server/internal/session"
)

var ErrInvalidPlan = errors.New("无效的套餐")

// API Key 前缀，便于日志与支持侧识别
const apiKeyPrefix = "cb_"

type UserService struct {
	userRepo    *repository.UserRepository
	subRepo     *repository.SubscriptionRepository
	sessions    *session.Manager
	entitlement *EntitlementService
	cfg         *config.Config
}

func NewUserService(
	userRepo *repository.UserRepository,
	subRepo *repository.SubscriptionRepository,
	sessions *session.Manager,
	entitlement *EntitlementService,
	cfg *config.Config,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		subRepo:     subRepo,
		sessions:    sessions,
		entitlement: entitlement,
		cfg:         cfg,
	}
}

// GetProfile 获取用户详情
func (s *UserService) GetProfile(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return buildUserInfo(user, s.entitlement), nil
}

// GetQuota 获取配额信息
func (s *UserService) GetQuota(userID int64) (*dto.QuotaInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return s.entitlement.QuotaInfo(user), nil
}

// GenerateAPIKey 生成新的 API Key，覆盖旧值，旧 Key 立即失效
func (s *UserService) GenerateAPIKey(userID int64) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	key, err := newAPIKey()
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateAPIKey(user.ID, key); err != nil {
		return "", err
	}

	return key, nil
}

// Subscribe 切换套餐：额度按套餐表重算，已用量清零，并留一条变更记录
func (s *UserService) Subscribe(ctx context.Context, userID int64, sessionID, plan string) (*dto.UserInfo, error) {
	if !s.entitlement.ValidPlan(plan) {
		return nil, ErrInvalidPlan
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	previousPlan := user.Plan
	limit := s.entitlement.LimitFor(plan)

	if err := s.userRepo.UpdatePlan(user.ID, plan, limit); err != nil {
		return nil, err
	}

	sub := &model.Subscription{
		UserID:       user.ID,
		Plan:         plan,
		PreviousPlan: previousPlan,
		Amount:       s.cfg.Plans[plan].Price,
	}
	if err := s.subRepo.Create(sub); err != nil {
		return nil, err
	}

	user.Plan = plan
	user.MessageLimit = limit
	user.MessagesUsed = 0

	// 会话快照跟随用户记录
	if err := s.sessions.Refresh(ctx, sessionID, user); err != nil {
		return nil, err
	}

	return buildUserInfo(user, s.entitlement), nil
}

// newAPIKey 生成不透明的 cb_ 前缀 Token
func newAPIKey() (string, error) {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return apiKeyPrefix + hex.EncodeToString(bytes), nil
}
