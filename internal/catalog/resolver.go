package catalog

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/repositories"
	"github.com/SAP-F-2025/workdna-service/internal/scoring"
)

// Source says where a resolved question set came from
type Source string

const (
	SourceGeneratedTest Source = "generated_test"
	SourceJobProfile    Source = "job_profile"
)

// Resolution is the question set a candidate sees and is scored against
type Resolution struct {
	Questions models.QuestionSet
	Source    Source
	// Key is the generated test key or job key that matched
	Key string
	// RoleKey is the job profile the questions belong to
	RoleKey string
}

type Resolver struct {
	catalog        *Catalog
	generatedTests repositories.GeneratedTestRepository
}

func NewResolver(catalog *Catalog, generatedTests repositories.GeneratedTestRepository) *Resolver {
	return &Resolver{
		catalog:        catalog,
		generatedTests: generatedTests,
	}
}

func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve looks key up as an active generated test first and then as a job
// profile. Returns scoring.ErrQuestionSetNotFound when neither matches.
func (r *Resolver) Resolve(ctx context.Context, key string) (*Resolution, error) {
	return r.ResolveSubmission(ctx, key, key)
}

// ResolveSubmission prefers the snapshot of the generated test identified by
// testID and otherwise uses the canonical profile for jobKey.
func (r *Resolver) ResolveSubmission(ctx context.Context, testID, jobKey string) (*Resolution, error) {
	if testID != "" {
		resolution, err := r.fromGeneratedTest(ctx, testID)
		if err != nil {
			return nil, err
		}
		if resolution != nil {
			return resolution, nil
		}
	}

	profile, ok := r.catalog.Profile(jobKey)
	if !ok || len(profile.Questions) == 0 {
		return nil, fmt.Errorf("%w: %q", scoring.ErrQuestionSetNotFound, jobKey)
	}
	return &Resolution{
		Questions: profile.Questions,
		Source:    SourceJobProfile,
		Key:       jobKey,
		RoleKey:   jobKey,
	}, nil
}

func (r *Resolver) fromGeneratedTest(ctx context.Context, testKey string) (*Resolution, error) {
	if r.generatedTests == nil {
		return nil, nil
	}
	test, err := r.generatedTests.GetByKey(ctx, testKey)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up generated test: %w", err)
	}
	questions := test.QuestionSet()
	if len(questions) == 0 {
		return nil, nil
	}
	return &Resolution{
		Questions: questions,
		Source:    SourceGeneratedTest,
		Key:       test.TestKey,
		RoleKey:   test.RoleKey,
	}, nil
}
