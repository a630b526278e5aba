package model

import (
	"time"
)

// 套餐标识
const (
	PlanFree       = "free"
	PlanIndividual = "individual"
	PlanGroup      = "group"
	PlanLifetime   = "lifetime"
)

// UnlimitedMessages message_limit 取该值时表示不限量（lifetime 套餐）
const UnlimitedMessages = -1

type User struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Plan         string    `gorm:"size:20;default:free" json:"plan"`
	MessagesUsed int       `gorm:"default:0" json:"messages_used"`
	MessageLimit int       `gorm:"default:10" json:"message_limit"`
	APIKey       *string   `gorm:"size:100;uniqueIndex" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Unlimited 是否不限量套餐
func (u *User) Unlimited() bool {
	return u.MessageLimit < 0
}
