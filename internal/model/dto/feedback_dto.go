package dto

// FeedbackRequest 反馈提交请求
type FeedbackRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Message   string `json:"message" binding:"required,max=4000"`
	Subscribe bool   `json:"subscribe"`
}

// ContactRequest 联系表单提交请求
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=4000"`
}
