package services

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/catalog"
	"github.com/SAP-F-2025/workdna-service/internal/events"
	"github.com/SAP-F-2025/workdna-service/internal/metrics"
	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/repositories/memory"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	deps      Dependencies
	repo      repositories.Repository
	publisher *events.MockEventPublisher
	metrics   *metrics.Metrics
	logs      *bytes.Buffer
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		PassThreshold: 75,
		JobProfiles: map[string]models.JobProfile{
			"Software Engineer": {
				SkillsRequired: []string{"System Design", "Ownership"},
				Questions: models.QuestionSet{
					{
						ID:     "1",
						Prompt: "Production incident",
						Options: []models.Option{
							{Text: "Roll back", Score: map[models.TraitKey]int{models.TraitTechnicalAcumen: 10}},
							{Text: "Ignore", Score: map[models.TraitKey]int{models.TraitEthicalResponsibility: -5}},
						},
					},
				},
			},
			"Product/Manager": {
				Questions: models.QuestionSet{
					{ID: "pm-1", Prompt: "Conflicting asks", Options: []models.Option{
						{Text: "Align", Score: map[models.TraitKey]int{models.TraitStrategicLeadership: 7}},
					}},
					{ID: "pm-2", Prompt: "Unused feature", Options: []models.Option{
						{Text: "Interview", Score: map[models.TraitKey]int{models.TraitBusinessProfitability: 5}},
					}},
				},
			},
		},
	}
}

func sequenceIDs(ids ...string) func() string {
	i := 0
	return func() string {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func newTestEnv(t *testing.T, ids ...string) *testEnv {
	t.Helper()
	if len(ids) == 0 {
		ids = []string{"a1b2c3d4-0000-0000-0000-000000000000"}
	}

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	repo := memory.NewRepository()
	publisher := events.NewMockEventPublisher(logger)
	_, m := metrics.NewRegistry()

	return &testEnv{
		deps: Dependencies{
			Repo:      repo,
			Catalog:   testCatalog(),
			Publisher: publisher,
			Metrics:   m,
			Validator: validator.New(),
			Logger:    logger,
			Settings:  Settings{DemoTestKey: "test123", TestDurationMinutes: 10},
			Now:       func() time.Time { return fixedNow },
			NewID:     sequenceIDs(ids...),
		},
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logs:      logs,
	}
}

func (e *testEnv) manager() ServiceManager {
	return NewServiceManager(e.deps)
}

func (e *testEnv) addGeneratedTest(t *testing.T, key, role string, questions models.QuestionSet) {
	t.Helper()
	require.NoError(t, e.repo.GeneratedTest().Create(context.Background(),
		models.NewGeneratedTest(key, role, questions, fixedNow.Add(-time.Hour))))
}

func counterValue(m *metrics.Metrics, job, passed, source string) float64 {
	return testutil.ToFloat64(m.Submissions.WithLabelValues(job, passed, source))
}
