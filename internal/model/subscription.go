package model

import (
	"time"
)

// Subscription 套餐变更记录（历史，不参与配额计算）
type Subscription struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	Plan         string    `gorm:"size:20;not null" json:"plan"` // free, individual, group, lifetime
	PreviousPlan string    `gorm:"size:20" json:"previous_plan,omitempty"`
	Amount       float64   `gorm:"type:decimal(10,2)" json:"amount,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
