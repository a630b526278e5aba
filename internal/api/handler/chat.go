package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/internal/api/middleware"
	"github.com/chatboost/chatboost-server/internal/model/dto"
	"github.com/chatboost/chatboost-server/internal/pkg/response"
	"github.com/chatboost/chatboost-server/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Send 发送消息给机器人
// POST /api/v1/chat
func (h *ChatHandler) Send(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	resp, err := h.chatService.SendMessage(c.Request.Context(), userID, middleware.GetSessionID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownBot):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrQuotaExceeded):
			response.QuotaError(c, err.Error())
		default:
			response.ServerError(c, "")
		}
		return
	}

	response.Success(c, resp)
}

// History 获取历史消息
// GET /api/v1/user/messages?bot_id=xxx&limit=20
func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, err := h.chatService.History(userID, c.Query("bot_id"), limit)
	if err != nil {
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{
		"messages": messages,
	})
}

// ListBots 获取机器人目录
// GET /api/v1/bots
func (h *ChatHandler) ListBots(c *gin.Context) {
	response.Success(c, gin.H{
		"bots": h.chatService.Bots(),
	})
}

// GetBot 获取单个机器人
// GET /api/v1/bots/:id
func (h *ChatHandler) GetBot(c *gin.Context) {
	bot, err := h.chatService.Bot(c.Param("id"))
	if err != nil {
		response.NotFoundError(c, err.Error())
		return
	}

	response.Success(c, bot)
}
