package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ai900_study_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// Store 会话进度存储。进度只在会话令牌有效期内保留，无持久化层，
// 同一会话并发请求按最后写入为准。
type Store interface {
	Get(ctx context.Context, sessionID string) (*model.Progress, error)
	Put(ctx context.Context, sessionID string, p *model.Progress) error
}

type memoryEntry struct {
	progress *model.Progress
	expires  time.Time
}

// MemoryStore 默认的进程内存储，条目到期后由后台协程清理
type MemoryStore struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			s.mu.Lock()
			for id, e := range s.entries {
				if now.After(e.expires) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}()

	return s
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[sessionID]
	if !ok || time.Now().After(e.expires) {
		return nil, nil
	}
	return e.progress, nil
}

func (s *MemoryStore) Put(ctx context.Context, sessionID string, p *model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = &memoryEntry{progress: p, expires: time.Now().Add(s.ttl)}
	return nil
}

// RedisStore 可选的Redis后端，多实例部署时共享会话进度
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisKey(sessionID string) string {
	return fmt.Sprintf("study:session:%s", sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.Progress, error) {
	data, err := s.client.Get(ctx, redisKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p model.Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *RedisStore) Put(ctx context.Context, sessionID string, p *model.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKey(sessionID), data, s.ttl).Err()
}
