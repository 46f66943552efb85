package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"gorm.io/gorm"
)

type ResultPostgreSQL struct {
	db *gorm.DB
}

func NewResultPostgreSQL(db *gorm.DB) repositories.ResultRepository {
	return &ResultPostgreSQL{db: db}
}

func (r *ResultPostgreSQL) Append(ctx context.Context, result *models.TestResult) error {
	if err := r.db.WithContext(ctx).Create(result).Error; err != nil {
		return fmt.Errorf("failed to create test result: %w", err)
	}
	return nil
}

func (r *ResultPostgreSQL) FindByID(ctx context.Context, id string) (*models.TestResult, error) {
	var result models.TestResult
	if err := r.db.WithContext(ctx).
		Where("id = ? OR test_id = ?", repositories.ShortResultID(id), id).
		Order("submitted_at ASC").
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get test result: %w", err)
	}
	return &result, nil
}

func (r *ResultPostgreSQL) ListSortedByTime(ctx context.Context) ([]*models.TestResult, error) {
	var results []*models.TestResult
	if err := r.db.WithContext(ctx).
		Order("submitted_at DESC").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to list test results: %w", err)
	}
	return results, nil
}
