package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/config"
	"github.com/chatboost/chatboost-server/internal/bots"
	"github.com/chatboost/chatboost-server/internal/model"
	"github.com/chatboost/chatboost-server/internal/model/dto"
	"github.com/chatboost/chatboost-server/internal/pkg/ws"
	"github.com/chatboost/chatboost-server/internal/repository"
	"github.com/chatboost/chatboost-server/internal/session"
)

var (
	ErrUnknownBot    = errors.New("机器人不存在")
	ErrQuotaExceeded = errors.New("消息额度已用完")
)

type ChatService struct {
	userRepo   *repository.UserRepository
	msgRepo    *repository.MessageRepository
	sessions   *session.Manager
	hub        *ws.Hub
	replyDelay time.Duration
	cfg        *config.Config
}

func NewChatService(
	userRepo *repository.UserRepository,
	msgRepo *repository.MessageRepository,
	sessions *session.Manager,
	hub *ws.Hub,
	cfg *config.Config,
) *ChatService {
	return &ChatService{
		userRepo:   userRepo,
		msgRepo:    msgRepo,
		sessions:   sessions,
		hub:        hub,
		replyDelay: cfg.Chat.ReplyDelay(),
		cfg:        cfg,
	}
}

// SendMessage 发送消息并取得机器人回复。
// 额度检查先于回复生成：配额递增是带条件的原子 UPDATE，
// 满额时记录不变并返回 ErrQuotaExceeded。
func (s *ChatService) SendMessage(ctx context.Context, userID int64, sessionID string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if _, ok := bots.Find(req.BotID); !ok {
		return nil, ErrUnknownBot
	}

	ok, err := s.userRepo.IncrementUsage(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrQuotaExceeded
	}

	// 模拟机器人思考延迟，取消即中止
	if s.replyDelay > 0 {
		timer := time.NewTimer(s.replyDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	// 占位回复与输入内容无关，接入真实推理前保持确定性
	reply := bots.ReplyFor(req.BotID)
	now := time.Now()

	userMsg := &model.Message{
		ID:      "msg_" + uuid.NewString(),
		UserID:  userID,
		BotID:   req.BotID,
		Sender:  model.SenderUser,
		Content: req.Message,
	}
	botMsg := &model.Message{
		ID:      "msg_" + uuid.NewString(),
		UserID:  userID,
		BotID:   req.BotID,
		Sender:  model.SenderBot,
		Content: reply,
	}

	if err := s.msgRepo.Create(userMsg); err != nil {
		return nil, err
	}
	if err := s.msgRepo.Create(botMsg); err != nil {
		return nil, err
	}

	// 会话快照里的用量计数跟上
	if sessionID != "" {
		if user, err := s.userRepo.GetByID(userID); err == nil {
			if err := s.sessions.Refresh(ctx, sessionID, user); err != nil {
				log.Printf("Failed to refresh session %s after chat: %v", sessionID, err)
			}
		}
	}

	resp := &dto.ChatResponse{
		ID:        botMsg.ID,
		BotID:     req.BotID,
		Message:   reply,
		Timestamp: now.Format(time.RFC3339),
	}

	// 在线的仪表盘连接实时收到回复
	if s.hub != nil {
		if err := s.hub.SendToUser(userID, &ws.Message{Type: "chat_reply", Data: resp}); err != nil {
			log.Printf("Failed to push chat reply to user %d: %v", userID, err)
		}
	}

	return resp, nil
}

// History 最近的对话消息，botID 为空时返回全部机器人的
func (s *ChatService) History(userID int64, botID string, limit int) ([]dto.MessageInfo, error) {
	if limit <= 0 || limit > s.cfg.Chat.HistoryLimit {
		limit = s.cfg.Chat.HistoryLimit
	}
	if limit <= 0 {
		limit = 50
	}

	messages, err := s.msgRepo.ListByUser(userID, botID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MessageInfo, 0, len(messages))
	for _, m := range messages {
		out = append(out, dto.MessageInfo{
			ID:        m.ID,
			BotID:     m.BotID,
			Sender:    m.Sender,
			Content:   m.Content,
			Timestamp: m.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

// Bots 机器人目录
func (s *ChatService) Bots() []dto.BotInfo {
	all := bots.All()
	out := make([]dto.BotInfo, 0, len(all))
	for _, b := range all {
		out = append(out, dto.BotInfo{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Category:    b.Category,
			IconURL:     b.IconURL,
		})
	}
	return out
}

// Bot 单个机器人
func (s *ChatService) Bot(id string) (*dto.BotInfo, error) {
	b, ok := bots.Find(id)
	if !ok {
		return nil, ErrUnknownBot
	}
	return &dto.BotInfo{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Category:    b.Category,
		IconURL:     b.IconURL,
	}, nil
}

// GetUserByAPIKey API Key 鉴权查询
func (s *ChatService) GetUserByAPIKey(apiKey string) (*model.User, error) {
	user, err := s.userRepo.GetByAPIKey(apiKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
