package model

import (
	"time"
)

// Feedback 用户反馈（Feedback 页面提交）。
// 登录状态下提交时记录用户 ID，匿名提交为空
type Feedback struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Subscribe bool      `gorm:"default:false" json:"subscribe"`
	CreatedAt time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// ContactRequest 联系表单提交
type ContactRequest struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactRequest) TableName() string {
	return "contact_requests"
}
