package models

// TimeBehavior classifies how long a candidate spent on one answer
type TimeBehavior string

const (
	TimeBehaviorTooFast TimeBehavior = "Too Fast (Lack of Contemplation)"
	TimeBehaviorOptimal TimeBehavior = "Optimal"
	TimeBehaviorTooSlow TimeBehavior = "Too Slow (Inefficiency)"
)

type BehavioralSummary struct {
	FastResponses    int `json:"fastResponses"`
	SlowResponses    int `json:"slowResponses"`
	OptimalResponses int `json:"optimalResponses"`
	TotalTimeMs      int `json:"totalTimeMs"`
}

// DetailedResult records how a single accepted answer was scored
type DetailedResult struct {
	QuestionID       QuestionID          `json:"questionId"`
	Prompt           string              `json:"prompt"`
	ChosenOptionText string              `json:"chosenOptionText"`
	RawScoreImpact   map[TraitKey]int    `json:"rawScoreImpact"`
	TimeTakenMs      int                 `json:"timeTakenMs"`
	TimeBehavior     TimeBehavior        `json:"timeBehavior"`
	TraitMap         map[TraitKey]string `json:"traitMap"`
}

// ScoreReport is the outcome of scoring one submission
type ScoreReport struct {
	TotalScore        int                 `json:"totalScore"`
	SkillScores       TraitScores         `json:"skillScores"`
	BehavioralSummary BehavioralSummary   `json:"behavioralSummary"`
	DetailedResults   []DetailedResult    `json:"detailedResults"`
	JobTitle          string              `json:"jobTitle"`
	CandidateName     string              `json:"candidateName"`
	TestID            string              `json:"testId"`
	PassThreshold     int                 `json:"passThreshold"`
	Passed            bool                `json:"passed"`
	TraitMap          map[TraitKey]string `json:"traitMap"`
}
