package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"gorm.io/gorm"
)

type GeneratedTestPostgreSQL struct {
	db *gorm.DB
}

func NewGeneratedTestPostgreSQL(db *gorm.DB) repositories.GeneratedTestRepository {
	return &GeneratedTestPostgreSQL{db: db}
}

func (g *GeneratedTestPostgreSQL) Create(ctx context.Context, test *models.GeneratedTest) error {
	if err := g.db.WithContext(ctx).Create(test).Error; err != nil {
		return fmt.Errorf("failed to create generated test: %w", err)
	}
	return nil
}

func (g *GeneratedTestPostgreSQL) GetByKey(ctx context.Context, testKey string) (*models.GeneratedTest, error) {
	var test models.GeneratedTest
	if err := g.db.WithContext(ctx).Where("test_key = ?", testKey).First(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get generated test: %w", err)
	}
	return &test, nil
}

func (g *GeneratedTestPostgreSQL) List(ctx context.Context) ([]*models.GeneratedTest, error) {
	var tests []*models.GeneratedTest
	if err := g.db.WithContext(ctx).Order("created_at DESC").Find(&tests).Error; err != nil {
		return nil, fmt.Errorf("failed to list generated tests: %w", err)
	}
	return tests, nil
}
