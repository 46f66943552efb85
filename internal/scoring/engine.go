// Package scoring turns a question set and a candidate's timed answers into a
// normalized multi-trait score report.
package scoring

import (
	"errors"
	"math"

	"github.com/SAP-F-2025/workdna-service/internal/models"
)

var ErrQuestionSetNotFound = errors.New("question set not found")

// ReportContext labels a report; it takes no part in the scoring itself
type ReportContext struct {
	JobTitle      string
	CandidateName string
	TestID        string
	PassThreshold int
}

// Score evaluates answers against questions. Malformed answers are excluded
// rather than rejected; the only error is an absent or empty question set.
func Score(questions models.QuestionSet, answers []models.Answer, rc ReportContext) (*models.ScoreReport, error) {
	if len(questions) == 0 {
		return nil, ErrQuestionSetNotFound
	}

	traitTotals := models.NewTraitScores()
	summary := models.BehavioralSummary{}
	details := make([]models.DetailedResult, 0, len(answers))
	totalRawScore := 0
	maxTraitBase := 0

	for _, answer := range answers {
		question, ok := questions.Find(answer.QuestionID)
		if !ok {
			continue
		}

		// Counted even when the rest of the answer turns out to be unusable.
		maxTraitBase += MaxTraitPointsPerQuestion

		optionIndex, ok := answer.SelectedOptionIndex.Int()
		if !ok {
			continue
		}
		timeTaken, ok := answer.TimeTakenMs.Int()
		if !ok {
			continue
		}
		if optionIndex < 0 || optionIndex >= len(question.Options) {
			continue
		}
		option := question.Options[optionIndex]

		summary.TotalTimeMs += timeTaken

		questionPoints := 0
		for trait, points := range option.Score {
			if !trait.IsValid() {
				continue
			}
			traitTotals[trait] += points
			questionPoints += points
		}

		adj := classify(timeTaken)
		for trait, delta := range adj.traits {
			traitTotals[trait] += delta
		}
		switch {
		case adj.fast:
			summary.FastResponses++
		case adj.slow:
			summary.SlowResponses++
		case adj.optimal:
			summary.OptimalResponses++
		}

		totalRawScore += questionPoints + adj.score

		details = append(details, models.DetailedResult{
			QuestionID:       answer.QuestionID,
			Prompt:           question.Prompt,
			ChosenOptionText: option.Text,
			RawScoreImpact:   copyScore(option.Score),
			TimeTakenMs:      timeTaken,
			TimeBehavior:     adj.behavior,
			TraitMap:         models.TraitMap(),
		})
	}

	maxPossibleScore := len(questions) * MaxPointsPerQuestion
	totalScore := clamp(roundHalfEven(float64(totalRawScore)/float64(maxPossibleScore)*100), 0, 100)

	skillScores := models.NewTraitScores()
	for _, trait := range models.AllTraits {
		if trait == models.TraitBehavioralSpeed {
			// Behavioral speed is an absolute accumulation, not a ratio.
			skillScores[trait] = clamp(traitTotals[trait], 0, 100)
			continue
		}
		if maxTraitBase > 0 {
			skillScores[trait] = clamp(roundHalfEven(float64(traitTotals[trait])/float64(maxTraitBase)*100), 0, 100)
		}
	}

	return &models.ScoreReport{
		TotalScore:        totalScore,
		SkillScores:       skillScores,
		BehavioralSummary: summary,
		DetailedResults:   details,
		JobTitle:          rc.JobTitle,
		CandidateName:     rc.CandidateName,
		TestID:            rc.TestID,
		PassThreshold:     rc.PassThreshold,
		Passed:            totalScore >= rc.PassThreshold,
		TraitMap:          models.TraitMap(),
	}, nil
}

func copyScore(score map[models.TraitKey]int) map[models.TraitKey]int {
	out := make(map[models.TraitKey]int, len(score))
	for k, v := range score {
		out[k] = v
	}
	return out
}

// roundHalfEven rounds ties to the nearest even integer
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
