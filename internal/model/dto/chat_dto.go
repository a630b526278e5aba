package dto

// ChatRequest 对话请求
type ChatRequest struct {
	BotID   string `json:"bot_id" binding:"required"`
	Message string `json:"message" binding:"required,max=4000"`
}

// ChatResponse 机器人回复
type ChatResponse struct {
	ID        string `json:"id"`
	BotID     string `json:"bot_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// BotInfo 机器人目录项
type BotInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IconURL     string `json:"icon_url"`
}

// MessageInfo 历史消息
type MessageInfo struct {
	ID        string `json:"id"`
	BotID     string `json:"bot_id"`
	Sender    string `json:"sender"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}
