package session

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/chatboost/chatboost-server/internal/model"
)

// Manager 会话生命周期管理。
// 登录/注册建立会话，登出清除；每个请求通过 Resume 从存储恢复状态，
// 恢复失败（缺失或损坏的快照）一律回到 Anonymous。
type Manager struct {
	store *Store
}

func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Establish 为用户建立新会话，返回会话 ID
func (m *Manager) Establish(ctx context.Context, user *model.User) (string, error) {
	sessionID := uuid.NewString()
	if err := m.store.Save(ctx, sessionID, SnapshotOf(user)); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Resume 恢复会话：Unknown → Authenticated 或 Anonymous
func (m *Manager) Resume(ctx context.Context, sessionID string) (*Snapshot, State, error) {
	if sessionID == "" {
		return nil, StateAnonymous, nil
	}

	snap, err := m.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, StateAnonymous, nil
		}
		// 存储不可达时状态仍未知
		return nil, StateUnknown, err
	}

	return snap, StateAuthenticated, nil
}

// Refresh 用户记录变更后重写快照（套餐切换、额度递增等），
// 会话不存在时静默跳过，不把登出后的用户重新写回
func (m *Manager) Refresh(ctx context.Context, sessionID string, user *model.User) error {
	if sessionID == "" {
		return nil
	}

	if _, err := m.store.Load(ctx, sessionID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	return m.store.Save(ctx, sessionID, SnapshotOf(user))
}

// Clear 登出：Authenticated → Anonymous
func (m *Manager) Clear(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}
