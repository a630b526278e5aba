package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chatboost/chatboost-server/internal/api/middleware"
	"github.com/chatboost/chatboost-server/internal/model/dto"
	"github.com/chatboost/chatboost-server/internal/pkg/response"
	"github.com/chatboost/chatboost-server/internal/service"
)

type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// SubmitFeedback 提交反馈
// POST /api/v1/feedback
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	// 登录用户带上身份，匿名也允许
	var userID *int64
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	if err := h.feedbackService.SubmitFeedback(&req, userID); err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "感谢您的反馈", nil)
}

// SubmitContact 提交联系表单
// POST /api/v1/contact
func (h *FeedbackHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, err.Error())
		return
	}

	if err := h.feedbackService.SubmitContact(&req); err != nil {
		response.ServerError(c, "")
		return
	}

	response.SuccessWithMessage(c, "我们会尽快与您联系", nil)
}
