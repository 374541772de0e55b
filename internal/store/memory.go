package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Store. It round-trips values through JSON so it
// behaves exactly like the file-backed store, and it is what the engine and
// repository tests run against.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Load(key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Save(key string, value any) error {
	return m.SaveAll(map[string]any{key: value})
}

func (m *Memory) SaveAll(values map[string]any) error {
	// Encode everything first so a bad value cannot leave a partial write.
	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		encoded[key] = raw
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, raw := range encoded {
		m.data[key] = raw
	}
	return nil
}

func (m *Memory) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}
