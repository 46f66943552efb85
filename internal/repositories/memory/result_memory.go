package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
)

// ResultMemory keeps results in insertion order for the life of the process
type ResultMemory struct {
	mu      sync.RWMutex
	results []*models.TestResult
}

func NewResultMemory() *ResultMemory {
	return &ResultMemory{}
}

func (m *ResultMemory) Append(ctx context.Context, result *models.TestResult) error {
	stored := *result

	m.mu.Lock()
	m.results = append(m.results, &stored)
	m.mu.Unlock()
	return nil
}

func (m *ResultMemory) FindByID(ctx context.Context, id string) (*models.TestResult, error) {
	short := repositories.ShortResultID(id)

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.results {
		if r.ID == short || r.TestID == id {
			found := *r
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *ResultMemory) ListSortedByTime(ctx context.Context) ([]*models.TestResult, error) {
	m.mu.RLock()
	out := make([]*models.TestResult, len(m.results))
	for i, r := range m.results {
		copied := *r
		out[i] = &copied
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}
