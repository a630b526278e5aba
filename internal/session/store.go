package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Store Redis 会话快照存储
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{
		client: client,
		ttl:    ttl,
	}
}

// Save 写入快照并刷新有效期
func (s *Store) Save(ctx context.Context, sessionID string, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return s.client.Set(ctx, keyPrefix+sessionID, data, s.ttl).Err()
}

// Load 读取快照。键不存在返回 ErrNotFound；
// 值无法解析时删除坏值并同样返回 ErrNotFound，损坏只在本地恢复，不向调用方暴露。
func (s *Store) Load(ctx context.Context, sessionID string) (*Snapshot, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Discarding corrupt session snapshot %s: %v", sessionID, err)
		if delErr := s.client.Del(ctx, keyPrefix+sessionID).Err(); delErr != nil {
			log.Printf("Failed to delete corrupt session %s: %v", sessionID, delErr)
		}
		return nil, ErrNotFound
	}

	return &snap, nil
}

// Delete 删除快照，键不存在不算错误
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, keyPrefix+sessionID).Err()
}
