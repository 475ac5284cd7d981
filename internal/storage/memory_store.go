package storage

import (
	"context"
	"strings"
	"sync"

	apperrors "github.com/wfunc/fraud-game/internal/errors"
)

// MemoryStore 内存键值存储（测试和单机模式使用）
// 保持键的写入顺序，与数据库实现的枚举语义一致。
type MemoryStore struct {
	mu     sync.RWMutex
	order  []string
	values map[string]string

	// FailSet 非nil时Set直接返回该错误（测试写失败路径）
	FailSet error
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// List 枚举指定前缀下的所有键
func (s *MemoryStore) List(ctx context.Context, prefix string, global bool) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for _, key := range s.order {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Get 读取指定键的值
func (s *MemoryStore) Get(ctx context.Context, key string, global bool) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", apperrors.Newf(apperrors.ErrNotFound, "键不存在: %s", key)
	}
	return value, nil
}

// Set 写入键值对，键已存在时覆盖
func (s *MemoryStore) Set(ctx context.Context, key, value string, global bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailSet != nil {
		return apperrors.Wrap(s.FailSet, apperrors.ErrStorageSet)
	}

	if _, ok := s.values[key]; !ok {
		s.order = append(s.order, key)
	}
	s.values[key] = value
	return nil
}

// Len 返回存储的键数量
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
