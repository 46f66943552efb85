package repositories

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned by every repository when a record does not exist
var ErrNotFound = errors.New("record not found")

// IsNotFoundError reports whether err means the record does not exist
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}

// ResultIDLength is how many characters of a generated UUID form a result id
const ResultIDLength = 8

// ShortResultID trims a lookup id to the stored result id length
func ShortResultID(id string) string {
	if len(id) > ResultIDLength {
		return id[:ResultIDLength]
	}
	return id
}

// ResultRepository archives scored submissions
type ResultRepository interface {
	Append(ctx context.Context, result *models.TestResult) error
	// FindByID matches the 8-character result id (longer ids are truncated)
	// or, failing that, the test id recorded in the report. The earliest
	// submission wins when several match.
	FindByID(ctx context.Context, id string) (*models.TestResult, error)
	// ListSortedByTime returns results newest first
	ListSortedByTime(ctx context.Context) ([]*models.TestResult, error)
}

// GeneratedTestRepository stores ad-hoc tests created by HR
type GeneratedTestRepository interface {
	Create(ctx context.Context, test *models.GeneratedTest) error
	GetByKey(ctx context.Context, testKey string) (*models.GeneratedTest, error)
	List(ctx context.Context) ([]*models.GeneratedTest, error)
}

// Repository groups the stores the service depends on
type Repository interface {
	Result() ResultRepository
	GeneratedTest() GeneratedTestRepository
	Ping(ctx context.Context) error
	Close() error
}
