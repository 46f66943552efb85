package repositories

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/cache"
	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGeneratedTestRepository is a mock implementation of GeneratedTestRepository
type MockGeneratedTestRepository struct {
	mock.Mock
}

func (m *MockGeneratedTestRepository) Create(ctx context.Context, test *models.GeneratedTest) error {
	args := m.Called(ctx, test)
	return args.Error(0)
}

func (m *MockGeneratedTestRepository) GetByKey(ctx context.Context, testKey string) (*models.GeneratedTest, error) {
	args := m.Called(ctx, testKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GeneratedTest), args.Error(1)
}

func (m *MockGeneratedTestRepository) List(ctx context.Context) ([]*models.GeneratedTest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.GeneratedTest), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCachedGeneratedTestRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &MockGeneratedTestRepository{}
	questions := models.QuestionSet{
		{ID: "q1", Prompt: "p", Options: []models.Option{{Text: "a", Score: map[models.TraitKey]int{models.TraitTechnicalAcumen: 4}}}},
	}
	stored := models.NewGeneratedTest("abc123", "Analyst", questions, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	inner.On("GetByKey", mock.Anything, "abc123").Return(stored, nil).Once()

	repo := NewCachedGeneratedTestRepository(inner, cache.NewMemoryCache(), time.Minute, testLogger())

	first, err := repo.GetByKey(ctx, "abc123")
	require.NoError(t, err)
	second, err := repo.GetByKey(ctx, "abc123")
	require.NoError(t, err)

	assert.Equal(t, "Analyst", first.RoleKey)
	assert.Equal(t, "Analyst", second.RoleKey)
	assert.Equal(t, questions, second.QuestionSet())
	inner.AssertExpectations(t)
}

func TestCachedGeneratedTestRepository_MissPassesThrough(t *testing.T) {
	ctx := context.Background()
	inner := &MockGeneratedTestRepository{}
	inner.On("GetByKey", mock.Anything, "nope").Return(nil, ErrNotFound).Twice()

	repo := NewCachedGeneratedTestRepository(inner, cache.NewMemoryCache(), time.Minute, testLogger())

	_, err := repo.GetByKey(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByKey(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	inner.AssertExpectations(t)
}

func TestCachedGeneratedTestRepository_CreateWarmsCache(t *testing.T) {
	ctx := context.Background()
	inner := &MockGeneratedTestRepository{}
	test := models.NewGeneratedTest("k1", "Manager", models.QuestionSet{{ID: "q1", Prompt: "p", Options: []models.Option{{Text: "a"}}}}, time.Now())
	inner.On("Create", mock.Anything, test).Return(nil).Once()

	repo := NewCachedGeneratedTestRepository(inner, cache.NewMemoryCache(), time.Minute, testLogger())
	require.NoError(t, repo.Create(ctx, test))

	got, err := repo.GetByKey(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "Manager", got.RoleKey)
	inner.AssertNotCalled(t, "GetByKey", mock.Anything, "k1")
}

func TestShortResultID(t *testing.T) {
	assert.Equal(t, "abcdefgh", ShortResultID("abcdefgh-1234"))
	assert.Equal(t, "abc", ShortResultID("abc"))
}
