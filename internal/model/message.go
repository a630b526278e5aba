package model

import (
	"time"
)

// 消息方向
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// Message 对话消息，用户消息与机器人回复各占一行
type Message struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	BotID     string    `gorm:"size:50;not null;index" json:"bot_id"`
	Sender    string    `gorm:"size:10;not null" json:"sender"` // user / bot
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
