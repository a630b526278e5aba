package service

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/model"
	"github.com/chatboost/chatboost-server/internal/model/dto"
	"github.com/chatboost/chatboost-server/internal/pkg/jwt"
	"github.com/chatboost/chatboost-server/internal/repository"
	"github.com/chatboost/chatboost-server/internal/session"
)

var (
	ErrEmailExists        = errors.New("邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
)

// PasswordResetSender 密码重置通知发送方
type PasswordResetSender interface {
	SendPasswordReset(to, name string) error
}

type AuthService struct {
	userRepo    *repository.UserRepository
	sessions    *session.Manager
	entitlement *EntitlementService
	mailer      PasswordResetSender
	cfg         *config.Config
}

func NewAuthService(
	userRepo *repository.UserRepository,
	sessions *session.Manager,
	entitlement *EntitlementService,
	mailer PasswordResetSender,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessions:    sessions,
		entitlement: entitlement,
		mailer:      mailer,
		cfg:         cfg,
	}
}

// Register 用户注册：free 套餐起步，额度来自套餐表
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// 检查邮箱是否存在
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	// 加密密码
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Plan:         model.PlanFree,
		MessagesUsed: 0,
		MessageLimit: s.entitlement.LimitFor(model.PlanFree),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return s.openSession(ctx, user)
}

// Login 用户登录。未知邮箱与密码错误返回同一个错误，不泄露账号是否存在
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 验证密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Logout 用户登出，清除会话快照
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

// ResetPassword 密码重置。无论账号是否存在都返回成功，
// 存在时尽力发送重置邮件，发送失败只记录日志
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(user.Email, user.Name); err != nil {
			log.Printf("Failed to send password reset email to user %d: %v", user.ID, err)
		}
	}

	return nil
}

// GetUserByID 根据 ID 获取用户
func (s *AuthService) GetUserByID(id int64) (*model.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// openSession 建立会话并签发 Token
func (s *AuthService) openSession(ctx context.Context, user *model.User) (*dto.AuthResponse, error) {
	sessionID, err := s.sessions.Establish(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, sessionID, s.cfg.JWT.Secret, s.cfg.JWT.ExpireHours)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  buildUserInfo(user, s.entitlement),
	}, nil
}

func buildUserInfo(user *model.User, entitlement *EntitlementService) *dto.UserInfo {
	return &dto.UserInfo{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Plan:         user.Plan,
		MessagesUsed: user.MessagesUsed,
		MessageLimit: user.MessageLimit,
		QuotaInfo:    entitlement.QuotaInfo(user),
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}
