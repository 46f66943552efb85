package models

// TraitKey identifies one of the scored candidate dimensions
type TraitKey string

const (
	TraitTechnicalAcumen       TraitKey = "TA"
	TraitStrategicLeadership   TraitKey = "SL"
	TraitEthicalResponsibility TraitKey = "ER"
	TraitBusinessProfitability TraitKey = "BP"
	TraitBehavioralSpeed       TraitKey = "BS"
)

// AllTraits lists every trait in report order
var AllTraits = []TraitKey{
	TraitTechnicalAcumen,
	TraitStrategicLeadership,
	TraitEthicalResponsibility,
	TraitBusinessProfitability,
	TraitBehavioralSpeed,
}

// TraitLabels maps trait keys to their display names
var TraitLabels = map[TraitKey]string{
	TraitTechnicalAcumen:       "Technical Acumen",
	TraitStrategicLeadership:   "Strategic Leadership",
	TraitEthicalResponsibility: "Ethical Responsibility",
	TraitBusinessProfitability: "Business Profitability",
	TraitBehavioralSpeed:       "Behavioral Speed",
}

func (t TraitKey) IsValid() bool {
	_, ok := TraitLabels[t]
	return ok
}

func (t TraitKey) Label() string {
	return TraitLabels[t]
}

// TraitMap returns a copy of the label table, safe to hand to callers
func TraitMap() map[TraitKey]string {
	labels := make(map[TraitKey]string, len(TraitLabels))
	for k, v := range TraitLabels {
		labels[k] = v
	}
	return labels
}

// TraitScores holds one integer per trait
type TraitScores map[TraitKey]int

// NewTraitScores returns scores with every trait present and zeroed
func NewTraitScores() TraitScores {
	scores := make(TraitScores, len(AllTraits))
	for _, trait := range AllTraits {
		scores[trait] = 0
	}
	return scores
}
