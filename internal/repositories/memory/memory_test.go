package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newResult(id, testID string, submittedAt time.Time, score int) *models.TestResult {
	report := models.ScoreReport{TotalScore: score, TestID: testID, SkillScores: models.NewTraitScores()}
	return &models.TestResult{
		ID:          id,
		Username:    "candidate-" + id,
		Score:       score,
		Role:        "Analyst",
		TestID:      testID,
		SubmittedAt: submittedAt,
		FullResults: datatypes.NewJSONType(report),
		SkillScores: datatypes.NewJSONType(report.SkillScores),
	}
}

func TestResultMemory_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewResultMemory()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, newResult("a1b2c3d4", "test123", base, 80)))
	require.NoError(t, repo.Append(ctx, newResult("e5f6a7b8", "test123", base.Add(time.Minute), 60)))
	require.NoError(t, repo.Append(ctx, newResult("c9d0e1f2", "k9x8y7", base.Add(2*time.Minute), 40)))

	tests := []struct {
		name    string
		lookup  string
		wantID  string
		wantErr bool
	}{
		{name: "exact id", lookup: "e5f6a7b8", wantID: "e5f6a7b8"},
		{name: "full uuid is truncated", lookup: "c9d0e1f2-aaaa-bbbb-cccc-ddddeeeeffff", wantID: "c9d0e1f2"},
		{name: "test id returns earliest submission", lookup: "test123", wantID: "a1b2c3d4"},
		{name: "generated test key", lookup: "k9x8y7", wantID: "c9d0e1f2"},
		{name: "unknown", lookup: "zzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByID(ctx, tt.lookup)
			if tt.wantErr {
				assert.True(t, repositories.IsNotFoundError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.ID)
		})
	}
}

func TestResultMemory_ListSortedByTime(t *testing.T) {
	ctx := context.Background()
	repo := NewResultMemory()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, newResult("old00000", "t", base, 10)))
	require.NoError(t, repo.Append(ctx, newResult("new00000", "t", base.Add(time.Hour), 20)))
	require.NoError(t, repo.Append(ctx, newResult("mid00000", "t", base.Add(time.Minute), 30)))

	results, err := repo.ListSortedByTime(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "new00000", results[0].ID)
	assert.Equal(t, "mid00000", results[1].ID)
	assert.Equal(t, "old00000", results[2].ID)

	// callers get copies
	results[0].Score = 99
	again, err := repo.FindByID(ctx, "new00000")
	require.NoError(t, err)
	assert.Equal(t, 20, again.Score)
}

func TestGeneratedTestMemory(t *testing.T) {
	ctx := context.Background()
	repo := NewGeneratedTestMemory()
	questions := models.QuestionSet{{ID: "q1", Prompt: "p", Options: []models.Option{{Text: "a"}}}}
	now := time.Now()

	require.NoError(t, repo.Create(ctx, models.NewGeneratedTest("abc123", "Analyst", questions, now)))
	assert.Error(t, repo.Create(ctx, models.NewGeneratedTest("abc123", "Analyst", questions, now)))
	require.NoError(t, repo.Create(ctx, models.NewGeneratedTest("def456", "Manager", questions, now.Add(time.Second))))

	got, err := repo.GetByKey(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Analyst", got.RoleKey)
	assert.Equal(t, questions, got.QuestionSet())

	_, err = repo.GetByKey(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "def456", list[0].TestKey)
}

func TestRepository(t *testing.T) {
	repo := NewRepository()
	assert.NotNil(t, repo.Result())
	assert.NotNil(t, repo.GeneratedTest())
	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, repo.Close())
}
