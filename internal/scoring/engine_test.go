package scoring

import (
	"math/rand"
	"testing"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleQuestionSet() models.QuestionSet {
	return models.QuestionSet{
		{
			ID:     "q1",
			Prompt: "A release is blocked by a failing integration test.",
			Options: []models.Option{
				{Text: "Investigate the failure before shipping", Score: map[models.TraitKey]int{models.TraitTechnicalAcumen: 10}},
			},
		},
	}
}

func multiQuestionSet() models.QuestionSet {
	return models.QuestionSet{
		{
			ID:     "q1",
			Prompt: "A client asks for an undocumented discount.",
			Options: []models.Option{
				{Text: "Escalate to the account lead", Score: map[models.TraitKey]int{models.TraitEthicalResponsibility: 6, models.TraitStrategicLeadership: 4}},
				{Text: "Grant it quietly", Score: map[models.TraitKey]int{models.TraitBusinessProfitability: -2}},
			},
		},
		{
			ID:     "q2",
			Prompt: "The quarterly budget is cut by 20%.",
			Options: []models.Option{
				{Text: "Reprioritize the roadmap", Score: map[models.TraitKey]int{models.TraitStrategicLeadership: 5, models.TraitBusinessProfitability: 5}},
				{Text: "Freeze all hiring", Score: map[models.TraitKey]int{models.TraitBusinessProfitability: 3}},
			},
		},
		{
			ID:     "q3",
			Prompt: "Production latency doubles overnight.",
			Options: []models.Option{
				{Text: "Profile the hot path", Score: map[models.TraitKey]int{models.TraitTechnicalAcumen: 8, models.TraitBehavioralSpeed: 2}},
				{Text: "Add more servers", Score: map[models.TraitKey]int{models.TraitBusinessProfitability: -3, models.TraitTechnicalAcumen: 2}},
			},
		},
	}
}

func testContext() ReportContext {
	return ReportContext{
		JobTitle:      "Software Engineer",
		CandidateName: "Ada",
		TestID:        "test123",
		PassThreshold: DefaultPassThreshold,
	}
}

func TestScore_SingleOptimalAnswer(t *testing.T) {
	report, err := Score(singleQuestionSet(), []models.Answer{models.NewAnswer("q1", 0, 45000)}, testContext())
	require.NoError(t, err)

	assert.Equal(t, 100, report.TotalScore)
	assert.Equal(t, 100, report.SkillScores[models.TraitTechnicalAcumen])
	assert.Equal(t, 5, report.SkillScores[models.TraitBehavioralSpeed])
	assert.Equal(t, 0, report.SkillScores[models.TraitStrategicLeadership])
	assert.Equal(t, models.BehavioralSummary{OptimalResponses: 1, TotalTimeMs: 45000}, report.BehavioralSummary)
	assert.True(t, report.Passed)

	require.Len(t, report.DetailedResults, 1)
	detail := report.DetailedResults[0]
	assert.Equal(t, models.QuestionID("q1"), detail.QuestionID)
	assert.Equal(t, "Investigate the failure before shipping", detail.ChosenOptionText)
	assert.Equal(t, map[models.TraitKey]int{models.TraitTechnicalAcumen: 10}, detail.RawScoreImpact)
	assert.Equal(t, models.TimeBehaviorOptimal, detail.TimeBehavior)
	assert.Equal(t, "Technical Acumen", detail.TraitMap[models.TraitTechnicalAcumen])

	assert.Equal(t, "Software Engineer", report.JobTitle)
	assert.Equal(t, "Ada", report.CandidateName)
	assert.Equal(t, "test123", report.TestID)
	assert.Equal(t, 75, report.PassThreshold)
}

func TestScore_TimeBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		timeTakenMs int
		behavior    models.TimeBehavior
		totalScore  int
		skills      models.TraitScores
		summary     models.BehavioralSummary
	}{
		{
			name:        "14999 is too fast",
			timeTakenMs: 14999,
			behavior:    models.TimeBehaviorTooFast,
			totalScore:  0, // 10 - 20 clamps to zero
			skills:      models.TraitScores{"TA": 100, "SL": 0, "ER": 0, "BP": 0, "BS": 5},
			summary:     models.BehavioralSummary{FastResponses: 1, TotalTimeMs: 14999},
		},
		{
			name:        "15000 falls in the unadjusted gap",
			timeTakenMs: 15000,
			behavior:    models.TimeBehaviorOptimal,
			totalScore:  67, // 10 / 15
			skills:      models.TraitScores{"TA": 100, "SL": 0, "ER": 0, "BP": 0, "BS": 0},
			summary:     models.BehavioralSummary{TotalTimeMs: 15000},
		},
		{
			name:        "29999 still in the gap",
			timeTakenMs: 29999,
			behavior:    models.TimeBehaviorOptimal,
			totalScore:  67,
			skills:      models.TraitScores{"TA": 100, "SL": 0, "ER": 0, "BP": 0, "BS": 0},
			summary:     models.BehavioralSummary{TotalTimeMs: 29999},
		},
		{
			name:        "30000 is optimal",
			timeTakenMs: 30000,
			behavior:    models.TimeBehaviorOptimal,
			totalScore:  100,
			skills:      models.TraitScores{"TA": 100, "SL": 0, "ER": 0, "BP": 0, "BS": 5},
			summary:     models.BehavioralSummary{OptimalResponses: 1, TotalTimeMs: 30000},
		},
		{
			name:        "60000 is optimal",
			timeTakenMs: 60000,
			behavior:    models.TimeBehaviorOptimal,
			totalScore:  100,
			skills:      models.TraitScores{"TA": 100, "SL": 0, "ER": 0, "BP": 0, "BS": 5},
			summary:     models.BehavioralSummary{OptimalResponses: 1, TotalTimeMs: 60000},
		},
		{
			name:        "60001 is too slow",
			timeTakenMs: 60001,
			behavior:    models.TimeBehaviorTooSlow,
			totalScore:  0,
			skills:      models.TraitScores{"TA": 50, "SL": 0, "ER": 0, "BP": 0, "BS": 0},
			summary:     models.BehavioralSummary{SlowResponses: 1, TotalTimeMs: 60001},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Score(singleQuestionSet(), []models.Answer{models.NewAnswer("q1", 0, tt.timeTakenMs)}, testContext())
			require.NoError(t, err)

			assert.Equal(t, tt.totalScore, report.TotalScore)
			assert.Equal(t, tt.skills, report.SkillScores)
			assert.Equal(t, tt.summary, report.BehavioralSummary)
			require.Len(t, report.DetailedResults, 1)
			assert.Equal(t, tt.behavior, report.DetailedResults[0].TimeBehavior)
		})
	}
}

func TestScore_TooFastPenalizesEthicsAndLeadership(t *testing.T) {
	questions := models.QuestionSet{
		{
			ID:     "q1",
			Prompt: "p",
			Options: []models.Option{
				{Text: "o", Score: map[models.TraitKey]int{models.TraitEthicalResponsibility: 10, models.TraitStrategicLeadership: 10}},
			},
		},
	}

	report, err := Score(questions, []models.Answer{models.NewAnswer("q1", 0, 1000)}, testContext())
	require.NoError(t, err)

	// (10 - 5) / 10
	assert.Equal(t, 50, report.SkillScores[models.TraitEthicalResponsibility])
	assert.Equal(t, 50, report.SkillScores[models.TraitStrategicLeadership])
	assert.Equal(t, 5, report.SkillScores[models.TraitBehavioralSpeed])
	// 20 - 20 = 0
	assert.Equal(t, 0, report.TotalScore)
}

func TestScore_SkipRules(t *testing.T) {
	questions := models.QuestionSet{
		singleQuestionSet()[0],
		{
			ID:     "q2",
			Prompt: "Second",
			Options: []models.Option{
				{Text: "only", Score: map[models.TraitKey]int{models.TraitTechnicalAcumen: 10}},
			},
		},
	}
	valid := models.NewAnswer("q1", 0, 45000)

	tests := []struct {
		name          string
		extra         models.Answer
		expectedTA    int
		expectedTotal int
	}{
		{
			name:          "unknown question does not touch the trait base",
			extra:         models.NewAnswer("missing", 0, 45000),
			expectedTA:    100,
			expectedTotal: 50,
		},
		{
			name:          "unparsable time still counts toward the trait base",
			extra:         models.Answer{QuestionID: "q2", SelectedOptionIndex: models.IntValue(0), TimeTakenMs: models.InvalidInt(`"fast"`)},
			expectedTA:    50,
			expectedTotal: 50,
		},
		{
			name:          "unparsable option index still counts toward the trait base",
			extra:         models.Answer{QuestionID: "q2", SelectedOptionIndex: models.InvalidInt(`null`), TimeTakenMs: models.IntValue(45000)},
			expectedTA:    50,
			expectedTotal: 50,
		},
		{
			name:          "option index past the end",
			extra:         models.NewAnswer("q2", 1, 45000),
			expectedTA:    50,
			expectedTotal: 50,
		},
		{
			name:          "negative option index",
			extra:         models.NewAnswer("q2", -1, 45000),
			expectedTA:    50,
			expectedTotal: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Score(questions, []models.Answer{valid, tt.extra}, testContext())
			require.NoError(t, err)

			assert.Equal(t, tt.expectedTA, report.SkillScores[models.TraitTechnicalAcumen])
			assert.Equal(t, tt.expectedTotal, report.TotalScore)
			assert.Equal(t, 45000, report.BehavioralSummary.TotalTimeMs)
			assert.Equal(t, 1, report.BehavioralSummary.OptimalResponses)
			require.Len(t, report.DetailedResults, 1)
			assert.Equal(t, models.QuestionID("q1"), report.DetailedResults[0].QuestionID)
		})
	}
}

func TestScore_EmptyAnswers(t *testing.T) {
	report, err := Score(multiQuestionSet(), []models.Answer{}, testContext())
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalScore)
	for _, trait := range models.AllTraits {
		assert.Equal(t, 0, report.SkillScores[trait], trait)
	}
	assert.NotNil(t, report.DetailedResults)
	assert.Empty(t, report.DetailedResults)
	assert.False(t, report.Passed)
}

func TestScore_MissingQuestionSet(t *testing.T) {
	_, err := Score(nil, []models.Answer{models.NewAnswer("q1", 0, 45000)}, testContext())
	assert.ErrorIs(t, err, ErrQuestionSetNotFound)

	_, err = Score(models.QuestionSet{}, nil, testContext())
	assert.ErrorIs(t, err, ErrQuestionSetNotFound)
}

func TestScore_RoundsHalfToEven(t *testing.T) {
	questions := models.QuestionSet{
		{ID: "q1", Prompt: "p1", Options: []models.Option{{Text: "a", Score: map[models.TraitKey]int{models.TraitTechnicalAcumen: 5}}}},
		{ID: "q2", Prompt: "p2", Options: []models.Option{{Text: "a"}}},
		{ID: "q3", Prompt: "p3", Options: []models.Option{{Text: "a"}}},
		{ID: "q4", Prompt: "p4", Options: []models.Option{{Text: "a"}}},
	}
	answers := []models.Answer{
		models.NewAnswer("q1", 0, 20000),
		{QuestionID: "q2", SelectedOptionIndex: models.IntValue(0), TimeTakenMs: models.InvalidInt(`"x"`)},
		{QuestionID: "q3", SelectedOptionIndex: models.IntValue(0), TimeTakenMs: models.InvalidInt(`"x"`)},
		{QuestionID: "q4", SelectedOptionIndex: models.IntValue(0), TimeTakenMs: models.InvalidInt(`"x"`)},
	}

	report, err := Score(questions, answers, testContext())
	require.NoError(t, err)

	// 5 / 40 * 100 = 12.5
	assert.Equal(t, 12, report.SkillScores[models.TraitTechnicalAcumen])
	// 5 / 60 * 100 = 8.33
	assert.Equal(t, 8, report.TotalScore)
}

func TestScore_OptionWithoutScores(t *testing.T) {
	questions := models.QuestionSet{
		{ID: "q1", Prompt: "p", Options: []models.Option{{Text: "neutral"}}},
	}

	report, err := Score(questions, []models.Answer{models.NewAnswer("q1", 0, 40000)}, testContext())
	require.NoError(t, err)

	// only the +5 time bonus: 5 / 15
	assert.Equal(t, 33, report.TotalScore)
	assert.Equal(t, 0, report.SkillScores[models.TraitTechnicalAcumen])
	assert.Equal(t, 5, report.SkillScores[models.TraitBehavioralSpeed])
	require.Len(t, report.DetailedResults, 1)
	assert.Empty(t, report.DetailedResults[0].RawScoreImpact)
}

func TestScore_Idempotent(t *testing.T) {
	answers := []models.Answer{
		models.NewAnswer("q1", 0, 12000),
		models.NewAnswer("q2", 1, 45000),
		models.NewAnswer("q3", 0, 70000),
	}

	first, err := Score(multiQuestionSet(), answers, testContext())
	require.NoError(t, err)
	second, err := Score(multiQuestionSet(), answers, testContext())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_AggregatesIgnoreAnswerOrder(t *testing.T) {
	answers := []models.Answer{
		models.NewAnswer("q1", 0, 12000),
		models.NewAnswer("q2", 0, 45000),
		models.NewAnswer("q3", 1, 70000),
		models.NewAnswer("missing", 0, 1000),
	}
	reversed := []models.Answer{answers[3], answers[2], answers[1], answers[0]}

	forward, err := Score(multiQuestionSet(), answers, testContext())
	require.NoError(t, err)
	backward, err := Score(multiQuestionSet(), reversed, testContext())
	require.NoError(t, err)

	assert.Equal(t, forward.TotalScore, backward.TotalScore)
	assert.Equal(t, forward.SkillScores, backward.SkillScores)
	assert.Equal(t, forward.BehavioralSummary, backward.BehavioralSummary)

	require.Len(t, forward.DetailedResults, 3)
	require.Len(t, backward.DetailedResults, 3)
	assert.Equal(t, models.QuestionID("q1"), forward.DetailedResults[0].QuestionID)
	assert.Equal(t, models.QuestionID("q3"), backward.DetailedResults[0].QuestionID)
}

func TestScore_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	questions := multiQuestionSet()
	ids := []models.QuestionID{"q1", "q2", "q3", "nope"}

	for i := 0; i < 500; i++ {
		n := rng.Intn(8)
		answers := make([]models.Answer, 0, n)
		for j := 0; j < n; j++ {
			answers = append(answers, models.NewAnswer(ids[rng.Intn(len(ids))], rng.Intn(4)-1, rng.Intn(120000)))
		}

		report, err := Score(questions, answers, testContext())
		require.NoError(t, err)

		assert.GreaterOrEqual(t, report.TotalScore, 0)
		assert.LessOrEqual(t, report.TotalScore, 100)
		for _, trait := range models.AllTraits {
			assert.GreaterOrEqual(t, report.SkillScores[trait], 0)
			assert.LessOrEqual(t, report.SkillScores[trait], 100)
		}
	}
}

func TestScore_DetailDoesNotAliasQuestionSet(t *testing.T) {
	questions := singleQuestionSet()
	report, err := Score(questions, []models.Answer{models.NewAnswer("q1", 0, 45000)}, testContext())
	require.NoError(t, err)

	report.DetailedResults[0].RawScoreImpact[models.TraitTechnicalAcumen] = 99
	assert.Equal(t, 10, questions[0].Options[0].Score[models.TraitTechnicalAcumen])
}
