package models

import (
	"time"

	"gorm.io/datatypes"
)

// TestResult is the archived record of a scored submission
type TestResult struct {
	ID          string                          `json:"id" gorm:"primaryKey;size:8"`
	Username    string                          `json:"username" gorm:"size:200;index"`
	Score       int                             `json:"score"`
	Role        string                          `json:"role" gorm:"size:200;index"`
	TestID      string                          `json:"test_id" gorm:"size:100;index"`
	SubmittedAt time.Time                       `json:"submitted_at" gorm:"not null;index"`
	FullResults datatypes.JSONType[ScoreReport] `json:"full_results" gorm:"type:jsonb"`
	SkillScores datatypes.JSONType[TraitScores] `json:"skill_scores" gorm:"type:jsonb"`
}

func (TestResult) TableName() string {
	return "test_results"
}

// Report returns the full score report stored with the result
func (r *TestResult) Report() ScoreReport {
	return r.FullResults.Data()
}

// CompactResult is the minimal archive view of a submission
type CompactResult struct {
	ID            string      `json:"id"`
	TotalScore    int         `json:"totalScore"`
	SkillScores   TraitScores `json:"skillScores"`
	JobTitle      string      `json:"jobTitle"`
	CandidateName string      `json:"candidateName"`
	TestID        string      `json:"testId"`
	SubmittedAt   time.Time   `json:"submittedAt"`
}

func (r *TestResult) Compact() CompactResult {
	return CompactResult{
		ID:            r.ID,
		TotalScore:    r.Score,
		SkillScores:   r.SkillScores.Data(),
		JobTitle:      r.Role,
		CandidateName: r.Username,
		TestID:        r.TestID,
		SubmittedAt:   r.SubmittedAt,
	}
}
