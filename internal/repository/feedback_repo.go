package repository

import (
	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/internal/model"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(fb *model.Feedback) error {
	return r.db.Create(fb).Error
}

func (r *FeedbackRepository) CreateContact(contact *model.ContactRequest) error {
	return r.db.Create(contact).Error
}

func (r *FeedbackRepository) ListFeedback(limit int) ([]model.Feedback, error) {
	var items []model.Feedback
	err := r.db.Order("created_at DESC").Limit(limit).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
