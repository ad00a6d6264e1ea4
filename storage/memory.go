package storage

import (
	"encoding/json"
	"sync"
)

// Memory 内存存储实现，用于测试和不落盘的临时会话。
// 写入全部同步执行，异步选项在内存模式下无意义
type Memory struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemory 创建内存存储
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Set 实现 Store 接口
func (m *Memory) Set(key string, value any, _ ...WriteOption) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.data[key] = data
	return nil
}

// Get 实现 Store 接口
func (m *Memory) Get(key string, dest any) (bool, error) {
	if dest == nil {
		return false, ErrNilDest
	}

	m.mu.RLock()
	data, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Remove 实现 Store 接口
func (m *Memory) Remove(key string, _ ...WriteOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.data, key)
	return nil
}

// Close 实现 Store 接口
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
