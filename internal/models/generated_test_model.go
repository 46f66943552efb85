package models

import (
	"time"

	"gorm.io/datatypes"
)

// GeneratedTest binds a one-time key to a frozen copy of a role's questions
type GeneratedTest struct {
	TestKey   string                          `json:"test_key" gorm:"primaryKey;size:36"`
	RoleKey   string                          `json:"role" gorm:"not null;size:200;index"`
	Questions datatypes.JSONType[QuestionSet] `json:"questions" gorm:"type:jsonb"`
	CreatedAt time.Time                       `json:"created_at"`
}

func (GeneratedTest) TableName() string {
	return "generated_tests"
}

// NewGeneratedTest snapshots the given questions under testKey
func NewGeneratedTest(testKey, roleKey string, questions QuestionSet, createdAt time.Time) *GeneratedTest {
	return &GeneratedTest{
		TestKey:   testKey,
		RoleKey:   roleKey,
		Questions: datatypes.NewJSONType(questions.Clone()),
		CreatedAt: createdAt,
	}
}

// QuestionSet returns the snapshot
func (g *GeneratedTest) QuestionSet() QuestionSet {
	return g.Questions.Data()
}
