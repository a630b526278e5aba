package dto

// UserInfo 用户信息（返回给前端，不含任何凭证字段）
type UserInfo struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Plan         string     `json:"plan"`
	MessagesUsed int        `json:"messages_used"`
	MessageLimit int        `json:"message_limit"` // -1 表示不限量
	QuotaInfo    *QuotaInfo `json:"quota_info,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"`
}

// QuotaInfo 配额信息
type QuotaInfo struct {
	Plan         string `json:"plan"`
	MessageLimit int    `json:"message_limit"`
	MessagesUsed int    `json:"messages_used"`
	Remaining    int    `json:"remaining"` // -1 表示不限量
	Unlimited    bool   `json:"unlimited"`
}

// SubscribeRequest 套餐订阅请求
type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// APIKeyResponse API Key 生成响应
type APIKeyResponse struct {
	APIKey string `json:"api_key"`
}

// PlanInfo 套餐信息（定价页数据）
type PlanInfo struct {
	ID           string  `json:"id"`
	DisplayName  string  `json:"display_name"`
	MessageLimit int     `json:"message_limit"`
	Price        float64 `json:"price"`
}
