package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/chatboost/chatboost-server/internal/model"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	return r.db.Create(msg).Error
}

// ListByUser 按时间倒序取最近消息，botID 为空时不过滤机器人
func (r *MessageRepository) ListByUser(userID int64, botID string, limit int) ([]model.Message, error) {
	query := r.db.Where("user_id = ?", userID)
	if botID != "" {
		query = query.Where("bot_id = ?", botID)
	}

	var messages []model.Message
	err := query.Order("created_at DESC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepository) CountByUser(userID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Message{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountOlderThan 统计指定时间之前的消息数
func (r *MessageRepository) CountOlderThan(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&model.Message{}).Where("created_at < ?", cutoff).Count(&count).Error
	return count, err
}

// DeleteOlderThan 删除指定时间之前的消息，返回删除行数
func (r *MessageRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&model.Message{})
	return result.RowsAffected, result.Error
}
