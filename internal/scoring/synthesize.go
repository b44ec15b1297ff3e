package scoring

// Nutrition tags inferred from camera metrics.
const (
	TagLowDensity = "low-density"
	TagThinHair   = "thin-hair"
	TagHighDamage = "high-damage"
)

// Recommendation messages, appended in this fixed order when their
// threshold holds.
const (
	RecReduceStyling     = "Reduce chemical/heat styling; use protein repairing treatments"
	RecMinoxidil         = "Consider topical minoxidil or specialist referral"
	RecMedicatedShampoo  = "Treat scalp condition with medicated shampoo (ketoconazole) or dermatologist review"
	TestCeliac           = "Celiac serology (if malabsorption suspected)"
	TestFolate           = "Folate"
	TestMedicationReview = "Medication review with prescriber"
)

// baselineBloodTests is the evidence-based panel every report starts from.
var baselineBloodTests = []string{
	"Complete Blood Count (CBC)",
	"Serum Ferritin (Iron stores)",
	"Serum Iron & TIBC",
	"Thyroid Stimulating Hormone (TSH)",
	"Free T4 / Free T3",
	"Vitamin B12",
	"Vitamin D (25-OH)",
	"Zinc",
	"Liver function (ALT/AST)",
	"Sex Hormone profile (if clinically indicated: testosterone, DHEA, SHBG)",
}

// NutritionTags derives the set of nutrition concern tags. A user-supplied
// dietary answer is included only when the guide recognizes it. Tags are a
// set; insertion order is the stable rule order.
func (e *Engine) NutritionTags(m MetricValues, answers Answers) []string {
	tags := []string{}
	seen := map[string]bool{}
	add := func(tag string) {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	if d := answers.StringValue("dietary"); d != "" && e.guide.RecognizesDietaryTag(d) {
		add(d)
	}
	if m.HairDensity < 40 {
		add(TagLowDensity)
	}
	if m.HairThickness < 40 {
		add(TagThinHair)
	}
	if m.DamageLevel > 60 {
		add(TagHighDamage)
	}

	return tags
}

// Recommendations appends threshold-derived advice to any recommendations
// already on the record. Accumulation is idempotent: regenerating a report
// never duplicates an entry, and first-insertion order is kept.
func (e *Engine) Recommendations(existing []string, m MetricValues) []string {
	recs := []string{}
	seen := map[string]bool{}
	add := func(rec string) {
		if !seen[rec] {
			seen[rec] = true
			recs = append(recs, rec)
		}
	}

	for _, r := range existing {
		add(r)
	}
	if m.DamageLevel > 60 {
		add(RecReduceStyling)
	}
	if m.HairDensity < 50 {
		add(RecMinoxidil)
	}
	if m.ScalpCondition < 50 {
		add(RecMedicatedShampoo)
	}

	return recs
}

// BloodTests builds the recommended panel: the fixed baseline, augmented
// from gastric and medication answers. Baseline order is preserved and
// additions appended after it.
func (e *Engine) BloodTests(answers Answers) []string {
	tests := []string{}
	seen := map[string]bool{}
	add := func(test string) {
		if !seen[test] {
			seen[test] = true
			tests = append(tests, test)
		}
	}

	for _, t := range baselineBloodTests {
		add(t)
	}
	if g := answers.StringValue("gastric"); g != "" && g != "No" {
		add(TestCeliac)
		add(TestFolate)
	}
	if med := answers.StringValue("medication"); med != "" && med != "No" {
		add(TestMedicationReview)
	}

	return tests
}
