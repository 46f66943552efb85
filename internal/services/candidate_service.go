package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
)

// CandidateService checks the name and test key a candidate signs in with
type CandidateService interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
}

type LoginRequest struct {
	Name   string `json:"name" validate:"required"`
	TestID string `json:"test_id" validate:"required"`
}

// LoginResponse is the candidate context the client sends back with later
// requests. AssignedRole is empty for the demo key.
type LoginResponse struct {
	CandidateName    string `json:"candidate_name"`
	TestID           string `json:"test_id"`
	AssignedRole     string `json:"assigned_role"`
	TimeLimitMinutes int    `json:"time_limit_minutes"`
}

type candidateService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    *ServiceLogger
	settings  Settings
}

func NewCandidateService(deps Dependencies) CandidateService {
	deps = deps.withDefaults()
	return &candidateService{
		repo:      deps.Repo,
		validator: deps.Validator,
		logger:    NewServiceLogger(deps.Logger, LogConfig{Service: "workdna", Component: "candidate"}),
		settings:  deps.Settings,
	}
}

func (s *candidateService) Login(ctx context.Context, req *LoginRequest) (resp *LoginResponse, err error) {
	op := s.logger.WithOperation(ctx, "candidate_login", req.Name)
	defer func() { op.LogResult(req.TestID, "test_key", err) }()

	req.Name = strings.TrimSpace(req.Name)
	req.TestID = strings.TrimSpace(req.TestID)
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	resp = &LoginResponse{
		CandidateName:    req.Name,
		TestID:           req.TestID,
		TimeLimitMinutes: s.settings.TestDurationMinutes,
	}

	test, err := s.repo.GeneratedTest().GetByKey(ctx, req.TestID)
	switch {
	case err == nil:
		resp.AssignedRole = test.RoleKey
		return resp, nil
	case !repositories.IsNotFoundError(err):
		return nil, fmt.Errorf("failed to look up test key: %w", err)
	}

	if req.TestID != s.settings.DemoTestKey {
		return nil, ErrInvalidTestKey
	}
	return resp, nil
}
