package validator

import (
	"fmt"

	"github.com/SAP-F-2025/workdna-service/internal/models"
)

// QuestionValidator checks the rules struct tags cannot express
type QuestionValidator struct{}

func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// ValidateSet checks that question ids are unique within the set
func (v *QuestionValidator) ValidateSet(questions models.QuestionSet) error {
	seen := make(map[models.QuestionID]struct{}, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return fmt.Errorf("question %d: id is required", i+1)
		}
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("question %d: duplicate id %q", i+1, q.ID)
		}
		seen[q.ID] = struct{}{}
	}
	return nil
}

// ValidateProfiles checks every job profile's question set
func (v *QuestionValidator) ValidateProfiles(profiles map[string]models.JobProfile) error {
	for key, profile := range profiles {
		if err := v.ValidateSet(profile.Questions); err != nil {
			return fmt.Errorf("job profile %q: %w", key, err)
		}
	}
	return nil
}
