package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/catalog"
	"github.com/SAP-F-2025/workdna-service/internal/events"
	"github.com/SAP-F-2025/workdna-service/internal/metrics"
	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
)

// maxKeyAttempts bounds retries when a freshly minted test key is taken
const maxKeyAttempts = 5

// HRService covers test key generation and the results archive
type HRService interface {
	ListRoles(ctx context.Context) []string
	GenerateTest(ctx context.Context, req *GenerateTestRequest) (*GeneratedTestResponse, error)
	GetGeneratedTest(ctx context.Context, testKey string) (*GeneratedTestResponse, error)
	ListGeneratedTests(ctx context.Context) ([]*GeneratedTestResponse, error)
	Dashboard(ctx context.Context) ([]models.CompactResult, error)
	GetResult(ctx context.Context, id string) (*ResultResponse, error)
}

type GenerateTestRequest struct {
	Role string `json:"role" validate:"required"`
}

type GeneratedTestResponse struct {
	TestKey   string             `json:"test_key"`
	Role      string             `json:"role"`
	CreatedAt time.Time          `json:"created_at"`
	Questions models.QuestionSet `json:"questions"`
}

// ResultResponse is the full HR report for one archived submission
type ResultResponse struct {
	ID          string             `json:"id"`
	SubmittedAt time.Time          `json:"submitted_at"`
	Report      models.ScoreReport `json:"report"`
}

type hrService struct {
	repo      repositories.Repository
	catalog   *catalog.Catalog
	publisher events.EventPublisher
	metrics   *metrics.Metrics
	validator *validator.Validator
	logger    *ServiceLogger
	now       func() time.Time
	newID     func() string
}

func NewHRService(deps Dependencies) HRService {
	deps = deps.withDefaults()
	return &hrService{
		repo:      deps.Repo,
		catalog:   deps.Catalog,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		validator: deps.Validator,
		logger:    NewServiceLogger(deps.Logger, LogConfig{Service: "workdna", Component: "hr"}),
		now:       deps.Now,
		newID:     deps.NewID,
	}
}

func (s *hrService) ListRoles(ctx context.Context) []string {
	return s.catalog.JobKeys()
}

// GenerateTest binds a new six character key to a snapshot of the role's
// current questions.
func (s *hrService) GenerateTest(ctx context.Context, req *GenerateTestRequest) (resp *GeneratedTestResponse, err error) {
	op := s.logger.WithOperation(ctx, "generate_test", "hr")
	testKey := ""
	defer func() { op.LogResult(testKey, "generated_test", err) }()

	req.Role = strings.TrimSpace(req.Role)
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	profile, ok := s.catalog.Profile(req.Role)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRoleNotFound, req.Role)
	}

	testKey, err = s.uniqueTestKey(ctx)
	if err != nil {
		return nil, err
	}

	test := models.NewGeneratedTest(testKey, req.Role, profile.Questions, s.now().UTC())
	if err := s.repo.GeneratedTest().Create(ctx, test); err != nil {
		return nil, fmt.Errorf("failed to store generated test: %w", err)
	}

	s.metrics.RecordTestGenerated(req.Role)
	if pubErr := s.publisher.PublishEvent(ctx, events.NewTestGeneratedEvent(test)); pubErr != nil {
		s.logger.logger.Warn("Failed to publish test generated event", "test_key", testKey, "error", pubErr)
	}

	return toGeneratedTestResponse(test), nil
}

func (s *hrService) uniqueTestKey(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key := s.newID()
		if len(key) > testKeyLength {
			key = key[:testKeyLength]
		}
		_, err := s.repo.GeneratedTest().GetByKey(ctx, key)
		if repositories.IsNotFoundError(err) {
			return key, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check test key: %w", err)
		}
	}
	return "", NewBusinessRuleError("unique_test_key", "could not allocate an unused test key", map[string]interface{}{
		"attempts": maxKeyAttempts,
	})
}

func (s *hrService) GetGeneratedTest(ctx context.Context, testKey string) (*GeneratedTestResponse, error) {
	test, err := s.repo.GeneratedTest().GetByKey(ctx, testKey)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %q", ErrGeneratedTestNotFound, testKey)
		}
		return nil, fmt.Errorf("failed to get generated test: %w", err)
	}
	return toGeneratedTestResponse(test), nil
}

func (s *hrService) ListGeneratedTests(ctx context.Context) ([]*GeneratedTestResponse, error) {
	tests, err := s.repo.GeneratedTest().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated tests: %w", err)
	}
	out := make([]*GeneratedTestResponse, 0, len(tests))
	for _, test := range tests {
		out = append(out, toGeneratedTestResponse(test))
	}
	return out, nil
}

// Dashboard lists archived results newest first
func (s *hrService) Dashboard(ctx context.Context) ([]models.CompactResult, error) {
	results, err := s.repo.Result().ListSortedByTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	out := make([]models.CompactResult, 0, len(results))
	for _, r := range results {
		out = append(out, r.Compact())
	}
	return out, nil
}

// GetResult accepts a result id (only the first eight characters count) or
// the test id recorded in the report.
func (s *hrService) GetResult(ctx context.Context, id string) (*ResultResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: result id is required", ErrBadRequest)
	}

	result, err := s.repo.Result().FindByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %q", ErrResultNotFound, id)
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	return &ResultResponse{
		ID:          result.ID,
		SubmittedAt: result.SubmittedAt,
		Report:      result.Report(),
	}, nil
}

func toGeneratedTestResponse(test *models.GeneratedTest) *GeneratedTestResponse {
	return &GeneratedTestResponse{
		TestKey:   test.TestKey,
		Role:      test.RoleKey,
		CreatedAt: test.CreatedAt,
		Questions: test.QuestionSet(),
	}
}
