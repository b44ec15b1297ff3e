package scoring

import (
	"fmt"
	"strings"
	"time"
)

// EngineVersion tags every generated report with the rule set that
// produced it.
const EngineVersion = "rule-and-heuristic-engine-v1"

// MetricResult pairs a raw metric value with its interpretation.
type MetricResult struct {
	Value          float64        `json:"value"`
	Interpretation Interpretation `json:"interpretation"`
}

// HairLoss is the risk section of a report. Symptoms echoes the original
// answer bag for display.
type HairLoss struct {
	LossRisk int      `json:"lossRisk"`
	Causes   []string `json:"causes"`
	Symptoms Answers  `json:"symptoms"`
}

// Nutrition is the dietary section of a report.
type Nutrition struct {
	Tags      []string `json:"tags"`
	Narrative string   `json:"narrative"`
}

// Report is the engine's output. It is immutable once produced; regeneration
// builds a fresh Report and replaces the old one wholesale.
type Report struct {
	Metrics         map[string]MetricResult `json:"metrics"`
	HairLoss        HairLoss                `json:"hair_loss"`
	Nutrition       Nutrition               `json:"nutrition"`
	Recommendations []string                `json:"recommendations"`
	BloodTests      []string                `json:"bloodTests"`
	GeneratedAt     time.Time               `json:"generatedAt"`
	GeneratedBy     string                  `json:"generatedBy"`
}

// Record is the engine's view of an analysis: the answer bag, an optional
// prior report reused as a metric source, and any recommendations already
// attached that must survive regeneration.
type Record struct {
	Answers         Answers
	Report          *Report
	Recommendations []string
}

// metricValue resolves one metric through the fallback chain: value from a
// prior report, then the raw answers, then the default.
func (r Record) metricValue(name string, def float64) float64 {
	if r.Report != nil {
		if m, ok := r.Report.Metrics[name]; ok {
			return m.Value
		}
	}
	return r.Answers.NumberOr(name, def)
}

// GenerateReport runs the full pipeline: metric interpretation, risk and
// cause aggregation, then nutrition/recommendation/blood-test synthesis.
// It is total over record contents: missing or malformed answers fall back
// to defaults and never produce an error. Apart from the timestamp the
// result is a pure function of (guide, record).
func (e *Engine) GenerateReport(record Record) Report {
	answers := record.Answers
	if answers == nil {
		answers = Answers{}
	}

	m := MetricValues{
		HairDensity:    record.metricValue(MetricHairDensity, 0),
		HairThickness:  record.metricValue(MetricHairThickness, 0),
		DamageLevel:    record.metricValue(MetricDamageLevel, 0),
		ScalpCondition: record.metricValue(MetricScalpCondition, 0),
		HairType:       record.metricValue(MetricHairType, 1),
	}

	lossRisk, causes := e.Aggregate(m, answers)
	tags := e.NutritionTags(m, answers)

	return Report{
		Metrics: map[string]MetricResult{
			MetricHairDensity:    {Value: m.HairDensity, Interpretation: e.Interpret(MetricHairDensity, m.HairDensity)},
			MetricHairThickness:  {Value: m.HairThickness, Interpretation: e.Interpret(MetricHairThickness, m.HairThickness)},
			MetricDamageLevel:    {Value: m.DamageLevel, Interpretation: e.Interpret(MetricDamageLevel, m.DamageLevel)},
			MetricScalpCondition: {Value: m.ScalpCondition, Interpretation: e.Interpret(MetricScalpCondition, m.ScalpCondition)},
			MetricHairType:       {Value: m.HairType, Interpretation: e.Interpret(MetricHairType, m.HairType)},
		},
		HairLoss: HairLoss{
			LossRisk: lossRisk,
			Causes:   causes,
			Symptoms: answers,
		},
		Nutrition: Nutrition{
			Tags:      tags,
			Narrative: nutritionNarrative(tags),
		},
		Recommendations: e.Recommendations(record.Recommendations, m),
		BloodTests:      e.BloodTests(answers),
		GeneratedAt:     time.Now().UTC(),
		GeneratedBy:     EngineVersion,
	}
}

func nutritionNarrative(tags []string) string {
	joined := strings.Join(tags, ", ")
	if joined == "" {
		joined = "No specific tags"
	}
	return fmt.Sprintf("Nutrition analysis based on symptoms & answers — %s.", joined)
}
