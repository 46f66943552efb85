package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/catalog"
	"github.com/SAP-F-2025/workdna-service/internal/events"
	"github.com/SAP-F-2025/workdna-service/internal/metrics"
	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/scoring"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
	"gorm.io/datatypes"
)

const (
	thankYouURL      = "/thankyou"
	unknownCandidate = "N/A"
)

// AssessmentService serves the candidate flow: job details, questions and scoring
type AssessmentService interface {
	ListJobs(ctx context.Context) []string
	GetDetails(ctx context.Context, req *AssessmentDetailsRequest) (*AssessmentDetailsResponse, error)
	GetQuestions(ctx context.Context, jobKey, testID string) (*QuestionsResponse, error)
	Submit(ctx context.Context, req *SubmitAssessmentRequest) (*SubmitAssessmentResponse, error)
}

type AssessmentDetailsRequest struct {
	JobKey string `json:"jobKey" validate:"required"`
}

type AssessmentDetailsResponse struct {
	QuestionsCount   int      `json:"questions_count"`
	SkillsRequired   []string `json:"skills_required"`
	PassThreshold    int      `json:"pass_threshold"`
	TotalTimeMinutes int      `json:"total_time_minutes"`
}

// QuestionsResponse is the question set a candidate will be scored against
type QuestionsResponse struct {
	JobKey           string             `json:"job_key"`
	TestID           string             `json:"test_id,omitempty"`
	Source           catalog.Source     `json:"source"`
	TimeLimitMinutes int                `json:"time_limit_minutes"`
	Questions        models.QuestionSet `json:"questions"`
}

type SubmitAssessmentRequest struct {
	JobKey        string          `json:"jobKey" validate:"required"`
	CandidateName string          `json:"candidateName"`
	TestID        string          `json:"testId"`
	Answers       []models.Answer `json:"answers" validate:"required,min=1"`
}

type SubmitAssessmentResponse struct {
	ResultID    string `json:"result_id"`
	RedirectURL string `json:"redirect_url"`
}

type assessmentService struct {
	repo      repositories.Repository
	resolver  *catalog.Resolver
	publisher events.EventPublisher
	metrics   *metrics.Metrics
	validator *validator.Validator
	logger    *ServiceLogger
	settings  Settings
	now       func() time.Time
	newID     func() string
}

func NewAssessmentService(deps Dependencies, resolver *catalog.Resolver) AssessmentService {
	deps = deps.withDefaults()
	if resolver == nil {
		resolver = catalog.NewResolver(deps.Catalog, deps.Repo.GeneratedTest())
	}
	return &assessmentService{
		repo:      deps.Repo,
		resolver:  resolver,
		publisher: deps.Publisher,
		metrics:   deps.Metrics,
		validator: deps.Validator,
		logger:    NewServiceLogger(deps.Logger, LogConfig{Service: "workdna", Component: "assessment"}),
		settings:  deps.Settings,
		now:       deps.Now,
		newID:     deps.NewID,
	}
}

func (s *assessmentService) ListJobs(ctx context.Context) []string {
	return s.resolver.Catalog().JobKeys()
}

func (s *assessmentService) GetDetails(ctx context.Context, req *AssessmentDetailsRequest) (*AssessmentDetailsResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	cat := s.resolver.Catalog()
	profile, ok := cat.Profile(req.JobKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCatalogNotFound, req.JobKey)
	}

	skills := profile.SkillsRequired
	if skills == nil {
		skills = []string{}
	}
	return &AssessmentDetailsResponse{
		QuestionsCount:   len(profile.Questions),
		SkillsRequired:   skills,
		PassThreshold:    cat.PassThreshold,
		TotalTimeMinutes: s.settings.TestDurationMinutes,
	}, nil
}

func (s *assessmentService) GetQuestions(ctx context.Context, jobKey, testID string) (*QuestionsResponse, error) {
	resolution, err := s.resolver.ResolveSubmission(ctx, testID, jobKey)
	if err != nil {
		return nil, mapResolveError(err, jobKey)
	}

	return &QuestionsResponse{
		JobKey:           jobKey,
		TestID:           testID,
		Source:           resolution.Source,
		TimeLimitMinutes: s.settings.TestDurationMinutes,
		Questions:        resolution.Questions,
	}, nil
}

// Submit scores the answers against the resolved question set, archives the
// result and announces it. Publishing failures are logged, not returned.
func (s *assessmentService) Submit(ctx context.Context, req *SubmitAssessmentRequest) (resp *SubmitAssessmentResponse, err error) {
	op := s.logger.WithOperation(ctx, "submit_assessment", req.CandidateName)
	resultID := ""
	defer func() { op.LogResult(resultID, "test_result", err) }()

	req.JobKey = strings.TrimSpace(req.JobKey)
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resolution, err := s.resolver.ResolveSubmission(ctx, req.TestID, req.JobKey)
	if err != nil {
		return nil, mapResolveError(err, req.JobKey)
	}

	report, err := scoring.Score(resolution.Questions, req.Answers, scoring.ReportContext{
		JobTitle:      req.JobKey,
		CandidateName: orDefault(req.CandidateName, unknownCandidate),
		TestID:        orDefault(req.TestID, unknownCandidate),
		PassThreshold: s.resolver.Catalog().PassThreshold,
	})
	if err != nil {
		return nil, mapResolveError(err, req.JobKey)
	}

	result := &models.TestResult{
		ID:          repositories.ShortResultID(s.newID()),
		Username:    report.CandidateName,
		Score:       report.TotalScore,
		Role:        report.JobTitle,
		TestID:      report.TestID,
		SubmittedAt: s.now().UTC(),
		FullResults: datatypes.NewJSONType(*report),
		SkillScores: datatypes.NewJSONType(report.SkillScores),
	}
	if err := s.repo.Result().Append(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to archive result: %w", err)
	}
	resultID = result.ID

	s.metrics.RecordSubmission(report, string(resolution.Source), len(req.Answers))

	if pubErr := s.publisher.PublishEvent(ctx, events.NewAssessmentSubmittedEvent(result)); pubErr != nil {
		s.logger.logger.Warn("Failed to publish submission event", "result_id", result.ID, "error", pubErr)
	}

	return &SubmitAssessmentResponse{
		ResultID:    result.ID,
		RedirectURL: thankYouURL,
	}, nil
}

func mapResolveError(err error, jobKey string) error {
	if errors.Is(err, scoring.ErrQuestionSetNotFound) {
		return fmt.Errorf("%w: %q", ErrCatalogNotFound, jobKey)
	}
	return err
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
