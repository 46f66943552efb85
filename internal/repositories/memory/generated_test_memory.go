package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
)

type GeneratedTestMemory struct {
	mu    sync.RWMutex
	tests map[string]*models.GeneratedTest
}

func NewGeneratedTestMemory() *GeneratedTestMemory {
	return &GeneratedTestMemory{tests: make(map[string]*models.GeneratedTest)}
}

func (m *GeneratedTestMemory) Create(ctx context.Context, test *models.GeneratedTest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.tests[test.TestKey]; exists {
		return fmt.Errorf("generated test %s already exists", test.TestKey)
	}
	stored := *test
	m.tests[test.TestKey] = &stored
	return nil
}

func (m *GeneratedTestMemory) GetByKey(ctx context.Context, testKey string) (*models.GeneratedTest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	test, ok := m.tests[testKey]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *test
	return &found, nil
}

func (m *GeneratedTestMemory) List(ctx context.Context) ([]*models.GeneratedTest, error) {
	m.mu.RLock()
	out := make([]*models.GeneratedTest, 0, len(m.tests))
	for _, test := range m.tests {
		copied := *test
		out = append(out, &copied)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].TestKey < out[j].TestKey
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
