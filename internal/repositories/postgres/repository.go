package postgres

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"gorm.io/gorm"
)

type postgresRepository struct {
	db             *gorm.DB
	results        repositories.ResultRepository
	generatedTests repositories.GeneratedTestRepository
}

// NewRepository builds the gorm-backed Repository
func NewRepository(db *gorm.DB) repositories.Repository {
	return &postgresRepository{
		db:             db,
		results:        NewResultPostgreSQL(db),
		generatedTests: NewGeneratedTestPostgreSQL(db),
	}
}

// AutoMigrate creates or updates the tables this service owns
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.TestResult{}, &models.GeneratedTest{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *postgresRepository) Result() repositories.ResultRepository {
	return r.results
}

func (r *postgresRepository) GeneratedTest() repositories.GeneratedTestRepository {
	return r.generatedTests
}

func (r *postgresRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *postgresRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}
