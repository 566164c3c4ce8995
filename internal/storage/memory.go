package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process Store. It backs tests and the "memory" state
// backend; values round-trip through JSON so behavior matches the persistent
// backends exactly.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string, dest interface{}) bool {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (m *Memory) Set(_ context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

func (m *Memory) Remove(_ context.Context, key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	m.data = make(map[string][]byte)
	m.mu.Unlock()
}
