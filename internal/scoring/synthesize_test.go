package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNutritionTags(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name    string
		metrics MetricValues
		answers Answers
		want    []string
	}{
		{
			name:    "healthy metrics yield no tags",
			metrics: MetricValues{HairDensity: 80, HairThickness: 70, DamageLevel: 10},
			want:    []string{},
		},
		{
			name:    "low density",
			metrics: MetricValues{HairDensity: 39, HairThickness: 70, DamageLevel: 10},
			want:    []string{TagLowDensity},
		},
		{
			name:    "thin hair",
			metrics: MetricValues{HairDensity: 80, HairThickness: 39, DamageLevel: 10},
			want:    []string{TagThinHair},
		},
		{
			name:    "high damage",
			metrics: MetricValues{HairDensity: 80, HairThickness: 70, DamageLevel: 61},
			want:    []string{TagHighDamage},
		},
		{
			name:    "recognized dietary answer comes first",
			metrics: MetricValues{HairDensity: 30, HairThickness: 70, DamageLevel: 10},
			answers: Answers{"dietary": String("vegan")},
			want:    []string{"vegan", TagLowDensity},
		},
		{
			name:    "unrecognized dietary answer ignored",
			metrics: MetricValues{HairDensity: 80, HairThickness: 70, DamageLevel: 10},
			answers: Answers{"dietary": String("carnivore")},
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := tt.answers
			if answers == nil {
				answers = Answers{}
			}
			assert.Equal(t, tt.want, e.NutritionTags(tt.metrics, answers))
		})
	}
}

func TestRecommendationsThresholds(t *testing.T) {
	e := testEngine(t)

	m := MetricValues{HairDensity: 40, DamageLevel: 70, ScalpCondition: 30}
	got := e.Recommendations(nil, m)
	assert.Equal(t, []string{RecReduceStyling, RecMinoxidil, RecMedicatedShampoo}, got)

	healthy := MetricValues{HairDensity: 80, DamageLevel: 10, ScalpCondition: 90}
	assert.Empty(t, e.Recommendations(nil, healthy))
}

func TestRecommendationsIdempotentAccumulation(t *testing.T) {
	e := testEngine(t)

	m := MetricValues{HairDensity: 40, DamageLevel: 10, ScalpCondition: 90}
	first := e.Recommendations([]string{"Manual note from clinician"}, m)
	assert.Equal(t, []string{"Manual note from clinician", RecMinoxidil}, first)

	// Feeding the output back in must not duplicate anything.
	second := e.Recommendations(first, m)
	assert.Equal(t, first, second)
}

func TestBloodTestsBaseline(t *testing.T) {
	e := testEngine(t)

	got := e.BloodTests(Answers{})
	assert.Len(t, got, 10)
	assert.Equal(t, "Complete Blood Count (CBC)", got[0])
	assert.Contains(t, got, "Serum Ferritin (Iron stores)")
	assert.NotContains(t, got, TestCeliac)
	assert.NotContains(t, got, TestMedicationReview)
}

func TestBloodTestsGastricAndMedication(t *testing.T) {
	e := testEngine(t)

	got := e.BloodTests(Answers{
		"gastric":    String("Yes"),
		"medication": String("Yes"),
	})
	assert.Len(t, got, 13)
	assert.Equal(t, TestCeliac, got[10])
	assert.Equal(t, TestFolate, got[11])
	assert.Equal(t, TestMedicationReview, got[12])

	// "No" answers leave the baseline untouched.
	baseline := e.BloodTests(Answers{
		"gastric":    String("No"),
		"medication": String("No"),
	})
	assert.Len(t, baseline, 10)
}
