// Package memory holds process-lifetime repositories used by default and in tests.
package memory

import (
	"context"

	"github.com/SAP-F-2025/workdna-service/internal/repositories"
)

type memoryRepository struct {
	results        *ResultMemory
	generatedTests *GeneratedTestMemory
}

func NewRepository() repositories.Repository {
	return &memoryRepository{
		results:        NewResultMemory(),
		generatedTests: NewGeneratedTestMemory(),
	}
}

func (r *memoryRepository) Result() repositories.ResultRepository {
	return r.results
}

func (r *memoryRepository) GeneratedTest() repositories.GeneratedTestRepository {
	return r.generatedTests
}

func (r *memoryRepository) Ping(ctx context.Context) error { return nil }
func (r *memoryRepository) Close() error                   { return nil }
