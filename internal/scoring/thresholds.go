package scoring

import "github.com/SAP-F-2025/workdna-service/internal/models"

// Time thresholds in milliseconds
const (
	TooFastBelowMs = 15000
	OptimalMinMs   = 30000
	OptimalMaxMs   = 60000
	TooSlowFromMs  = 60001
)

const (
	// MaxTraitPointsPerQuestion is the trait-normalization base added per matched answer
	MaxTraitPointsPerQuestion = 10
	// MaxPointsPerQuestion is the best case for one question: 10 trait points plus the optimal time bonus
	MaxPointsPerQuestion = 15

	DefaultPassThreshold = 75
)

// timeAdjustment is what a time classification does to the running totals
type timeAdjustment struct {
	behavior models.TimeBehavior
	score    int
	traits   map[models.TraitKey]int
	fast     bool
	slow     bool
	optimal  bool
}

var (
	tooFastAdjustment = timeAdjustment{
		behavior: models.TimeBehaviorTooFast,
		score:    -20,
		traits: map[models.TraitKey]int{
			models.TraitBehavioralSpeed:       5,
			models.TraitEthicalResponsibility: -5,
			models.TraitStrategicLeadership:   -5,
		},
		fast: true,
	}
	tooSlowAdjustment = timeAdjustment{
		behavior: models.TimeBehaviorTooSlow,
		score:    -20,
		traits: map[models.TraitKey]int{
			models.TraitTechnicalAcumen: -5,
			models.TraitBehavioralSpeed: -10,
		},
		slow: true,
	}
	optimalAdjustment = timeAdjustment{
		behavior: models.TimeBehaviorOptimal,
		score:    5,
		traits: map[models.TraitKey]int{
			models.TraitBehavioralSpeed: 5,
		},
		optimal: true,
	}
	// Between TooFastBelowMs and OptimalMinMs nothing is adjusted and the label stays Optimal.
	gapAdjustment = timeAdjustment{
		behavior: models.TimeBehaviorOptimal,
	}
)

func classify(timeTakenMs int) timeAdjustment {
	switch {
	case timeTakenMs < TooFastBelowMs:
		return tooFastAdjustment
	case timeTakenMs > OptimalMaxMs:
		return tooSlowAdjustment
	case timeTakenMs >= OptimalMinMs:
		return optimalAdjustment
	default:
		return gapAdjustment
	}
}

// ClassifyTime returns the behavior label and score adjustment for a response time
func ClassifyTime(timeTakenMs int) (models.TimeBehavior, int) {
	adj := classify(timeTakenMs)
	return adj.behavior, adj.score
}
