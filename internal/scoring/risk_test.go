package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLossRiskBoundaries(t *testing.T) {
	assert.Equal(t, 0, LossRisk(100, 0))
	assert.Equal(t, 100, LossRisk(0, 100))
	assert.Equal(t, 50, LossRisk(50, 50))
}

func TestLossRiskUnclamped(t *testing.T) {
	// Out-of-range inputs pass through the formula untouched.
	assert.Equal(t, 110, LossRisk(-10, 110))
	assert.Equal(t, -12, LossRisk(120, 0))
}

// Each cause rule fires alone when only its condition holds.
func TestAggregateCauseIndependence(t *testing.T) {
	e := testEngine(t)

	// Neutral baseline: no rule fires.
	neutral := MetricValues{HairDensity: 100, DamageLevel: 0, ScalpCondition: 100}
	_, causes := e.Aggregate(neutral, Answers{})
	assert.Empty(t, causes)

	tests := []struct {
		name    string
		metrics MetricValues
		answers Answers
		want    string
	}{
		{
			name:    "loss risk above 60",
			metrics: MetricValues{HairDensity: 0, DamageLevel: 10, ScalpCondition: 100},
			want:    CauseAndrogenic,
		},
		{
			name:    "damage above 70",
			metrics: MetricValues{HairDensity: 100, DamageLevel: 71, ScalpCondition: 100},
			want:    CauseDamage,
		},
		{
			name:    "scalp below 40",
			metrics: MetricValues{HairDensity: 100, DamageLevel: 0, ScalpCondition: 39},
			want:    CauseScalp,
		},
		{
			name:    "family history",
			metrics: neutral,
			answers: Answers{"familyHistory": String("Both")},
			want:    CauseFamilyHistory,
		},
		{
			name:    "high stress",
			metrics: neutral,
			answers: Answers{"stress": Number(8)},
			want:    CauseStress,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := tt.answers
			if answers == nil {
				answers = Answers{}
			}
			_, causes := e.Aggregate(tt.metrics, answers)
			assert.Equal(t, []string{tt.want}, causes)
		})
	}
}

func TestAggregateRiskExactly60DoesNotFlagAndrogenic(t *testing.T) {
	e := testEngine(t)

	// density 0, damage 0 -> lossRisk exactly 60; the rule is strict.
	m := MetricValues{HairDensity: 0, DamageLevel: 0, ScalpCondition: 100}
	lossRisk, causes := e.Aggregate(m, Answers{})
	assert.Equal(t, 60, lossRisk)
	assert.NotContains(t, causes, CauseAndrogenic)
}

func TestAggregateFamilyHistoryNo(t *testing.T) {
	e := testEngine(t)

	m := MetricValues{HairDensity: 100, DamageLevel: 0, ScalpCondition: 100}
	_, causes := e.Aggregate(m, Answers{"familyHistory": String("No")})
	assert.Empty(t, causes)
}

func TestAggregateMissingStressDoesNotFire(t *testing.T) {
	e := testEngine(t)

	m := MetricValues{HairDensity: 100, DamageLevel: 0, ScalpCondition: 100}
	_, causes := e.Aggregate(m, Answers{})
	assert.NotContains(t, causes, CauseStress)
}

func TestAggregateAllRulesFire(t *testing.T) {
	e := testEngine(t)

	m := MetricValues{HairDensity: 0, DamageLevel: 100, ScalpCondition: 0}
	answers := Answers{
		"familyHistory": String("Yes paternal side"),
		"stress":        Number(10),
	}
	lossRisk, causes := e.Aggregate(m, answers)
	assert.Equal(t, 100, lossRisk)
	assert.Equal(t, []string{
		CauseAndrogenic,
		CauseDamage,
		CauseScalp,
		CauseFamilyHistory,
		CauseStress,
	}, causes)
}
