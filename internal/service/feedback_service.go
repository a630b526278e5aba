package service

import (
	"github.com/chatboost/chatboost-server/internal/model"
	"github.com/chatboost/chatboost-server/internal/model/dto"
	"github.com/chatboost/chatboost-server/internal/repository"
)

type FeedbackService struct {
	feedbackRepo *repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo *repository.FeedbackRepository) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

// SubmitFeedback 保存反馈，userID 为空表示匿名提交
func (s *FeedbackService) SubmitFeedback(req *dto.FeedbackRequest, userID *int64) error {
	return s.feedbackRepo.CreateFeedback(&model.Feedback{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Subscribe: req.Subscribe,
	})
}

// SubmitContact 保存联系表单
func (s *FeedbackService) SubmitContact(req *dto.ContactRequest) error {
	return s.feedbackRepo.CreateContact(&model.ContactRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
}
