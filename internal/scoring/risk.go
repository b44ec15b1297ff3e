package scoring

import "math"

// Cause messages emitted by the risk aggregator, in evaluation order.
const (
	CauseAndrogenic    = "Androgenic/Patterned hair loss likely"
	CauseDamage        = "Mechanical/chemical damage likely"
	CauseScalp         = "Scalp dermatological condition possible (dandruff/seborrhea)"
	CauseFamilyHistory = "Family history suggests genetic contribution"
	CauseStress        = "High stress may contribute"
)

// MetricValues holds the raw camera metrics feeding the aggregator and
// synthesizer, already defaulted by the assembler.
type MetricValues struct {
	HairDensity    float64
	HairThickness  float64
	DamageLevel    float64
	ScalpCondition float64
	HairType       float64
}

// LossRisk computes the composite 0-100 hair-loss concern score. Density is
// protective (its complement carries 60% of the weight), damage aggravating
// (40%). The result is not clamped: out-of-range inputs are a caller
// contract violation, not something the engine papers over.
func LossRisk(hairDensity, damageLevel float64) int {
	return int(math.Round((100-hairDensity)*0.6 + damageLevel*0.4))
}

// Aggregate combines metrics and answers into the composite loss risk and
// the ordered list of likely causes. Each rule is independent; zero, some or
// all may fire, and an empty list means no specific cause was flagged.
func (e *Engine) Aggregate(m MetricValues, answers Answers) (int, []string) {
	lossRisk := LossRisk(m.HairDensity, m.DamageLevel)

	causes := []string{}
	if lossRisk > 60 {
		causes = append(causes, CauseAndrogenic)
	}
	if m.DamageLevel > 70 {
		causes = append(causes, CauseDamage)
	}
	if m.ScalpCondition < 40 {
		causes = append(causes, CauseScalp)
	}
	if fh := answers.StringValue("familyHistory"); fh != "" && fh != "No" {
		causes = append(causes, CauseFamilyHistory)
	}
	if answers.NumberOr("stress", 0) >= 8 {
		causes = append(causes, CauseStress)
	}

	return lossRisk, causes
}
