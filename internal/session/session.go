package session

import (
	"github.com/chatboost/chatboost-server/internal/model"
)

// State 会话状态机：Unknown（未读取存储）→ Anonymous / Authenticated
type State int

const (
	StateUnknown State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot 会话快照，持久化的用户视图。
// 不含任何凭证字段，密码哈希永远不进入会话存储。
type Snapshot struct {
	UserID       int64  `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Plan         string `json:"plan"`
	MessagesUsed int    `json:"messages_used"`
	MessageLimit int    `json:"message_limit"`
}

// SnapshotOf 从用户记录生成快照
func SnapshotOf(user *model.User) *Snapshot {
	return &Snapshot{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Plan:         user.Plan,
		MessagesUsed: user.MessagesUsed,
		MessageLimit: user.MessageLimit,
	}
}
