package events

import (
	"time"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/google/uuid"
)

// EventType represents the kinds of events the service emits
type EventType string

const (
	EventAssessmentSubmitted EventType = "assessment.submitted"
	EventTestGenerated       EventType = "test.generated"
)

const (
	eventSource  = "workdna-service"
	eventVersion = "1.0"
)

// Event is the envelope published for every domain event
type Event struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// NewEvent wraps data in an envelope with a fresh id
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

// AssessmentSubmittedEvent is published after a submission is scored and archived
type AssessmentSubmittedEvent struct {
	ResultID      string             `json:"result_id"`
	CandidateName string             `json:"candidate_name"`
	JobTitle      string             `json:"job_title"`
	TestID        string             `json:"test_id"`
	TotalScore    int                `json:"total_score"`
	PassThreshold int                `json:"pass_threshold"`
	Passed        bool               `json:"passed"`
	SkillScores   models.TraitScores `json:"skill_scores"`
	SubmittedAt   time.Time          `json:"submitted_at"`
}

type TestGeneratedEvent struct {
	TestKey       string    `json:"test_key"`
	Role          string    `json:"role"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewAssessmentSubmittedEvent builds the event for an archived result
func NewAssessmentSubmittedEvent(result *models.TestResult) *Event {
	report := result.Report()
	return NewEvent(EventAssessmentSubmitted, AssessmentSubmittedEvent{
		ResultID:      result.ID,
		CandidateName: result.Username,
		JobTitle:      result.Role,
		TestID:        result.TestID,
		TotalScore:    result.Score,
		PassThreshold: report.PassThreshold,
		Passed:        report.Passed,
		SkillScores:   result.SkillScores.Data(),
		SubmittedAt:   result.SubmittedAt,
	})
}

func NewTestGeneratedEvent(test *models.GeneratedTest) *Event {
	return NewEvent(EventTestGenerated, TestGeneratedEvent{
		TestKey:       test.TestKey,
		Role:          test.RoleKey,
		QuestionCount: len(test.QuestionSet()),
		CreatedAt:     test.CreatedAt,
	})
}
