package scoring

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed guide_default.json
var defaultGuideJSON []byte

// RequiredMetrics are the camera analysis metrics every guide must define.
// A guide missing any of these is rejected at load time.
var RequiredMetrics = []string{
	MetricHairDensity,
	MetricHairThickness,
	MetricDamageLevel,
	MetricScalpCondition,
	MetricHairType,
}

// Metric names recognized by the engine.
const (
	MetricHairDensity    = "hair_density"
	MetricHairThickness  = "hair_thickness"
	MetricDamageLevel    = "damage_level"
	MetricScalpCondition = "scalp_condition"
	MetricHairType       = "hair_type"
)

// Guide is the scoring guide: per-metric interpretation tables plus the set of
// dietary tags accepted from questionnaire answers. It is loaded once and
// treated as read-only for the lifetime of the process.
type Guide struct {
	Metrics     map[string]MetricGuide
	DietaryTags []string
}

// MetricGuide describes one metric and its value-to-label bands.
type MetricGuide struct {
	Description    string
	Note           string
	Interpretation []Band
}

// Band is one entry of an interpretation table. Keys like "34-66" match the
// inclusive interval, plain numeric keys like "2" match exactly. Bands are
// evaluated in the order the guide defines them; the first match wins.
type Band struct {
	Key   string
	Label string

	min, max float64
	exact    bool
	invalid  bool
}

// Matches reports whether value falls in this band.
func (b Band) Matches(value float64) bool {
	if b.invalid {
		return false
	}
	if b.exact {
		return value == b.min
	}
	return value >= b.min && value <= b.max
}

func parseBand(key, label string) Band {
	b := Band{Key: key, Label: label}
	if i := strings.Index(key, "-"); i > 0 {
		min, errMin := strconv.ParseFloat(key[:i], 64)
		max, errMax := strconv.ParseFloat(key[i+1:], 64)
		if errMin != nil || errMax != nil {
			b.invalid = true
			return b
		}
		b.min, b.max = min, max
		return b
	}
	n, err := strconv.ParseFloat(key, 64)
	if err != nil {
		b.invalid = true
		return b
	}
	b.min, b.exact = n, true
	return b
}

// bandList preserves the JSON object's key order, which defines the
// first-match tie-break between bands.
type bandList []Band

func (bl *bandList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("interpretation: expected object, got %v", tok)
	}
	var out bandList
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var label string
		if err := dec.Decode(&label); err != nil {
			return fmt.Errorf("interpretation %q: %w", key, err)
		}
		out = append(out, parseBand(key, label))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*bl = out
	return nil
}

type metricDoc struct {
	Description    string   `json:"description"`
	Note           string   `json:"note"`
	Interpretation bandList `json:"interpretation"`
}

type guideDoc struct {
	ScoringGuide struct {
		HairCameraAnalysis map[string]metricDoc `json:"hair_camera_analysis"`
		DietaryTags        []string             `json:"dietary_tags"`
	} `json:"scoring_guide"`
}

// ParseGuide parses and validates a scoring guide document.
func ParseGuide(data []byte) (*Guide, error) {
	var doc guideDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scoring guide: %w", err)
	}

	g := &Guide{
		Metrics:     make(map[string]MetricGuide, len(doc.ScoringGuide.HairCameraAnalysis)),
		DietaryTags: doc.ScoringGuide.DietaryTags,
	}
	for name, m := range doc.ScoringGuide.HairCameraAnalysis {
		g.Metrics[name] = MetricGuide{
			Description:    m.Description,
			Note:           m.Note,
			Interpretation: m.Interpretation,
		}
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadGuide loads the guide from path, or the embedded default when path is
// empty. A broken guide is a fatal configuration error; callers should refuse
// to start rather than serve reports without one.
func LoadGuide(path string) (*Guide, error) {
	if path == "" {
		return ParseGuide(defaultGuideJSON)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scoring guide %s: %w", path, err)
	}
	return ParseGuide(data)
}

// Validate checks the guide defines every required metric with a non-empty
// interpretation table.
func (g *Guide) Validate() error {
	for _, name := range RequiredMetrics {
		m, ok := g.Metrics[name]
		if !ok {
			return fmt.Errorf("scoring guide: missing required metric %q", name)
		}
		if len(m.Interpretation) == 0 {
			return fmt.Errorf("scoring guide: metric %q has no interpretation ranges", name)
		}
	}
	return nil
}

// RecognizesDietaryTag reports whether tag is one of the guide's accepted
// dietary tags.
func (g *Guide) RecognizesDietaryTag(tag string) bool {
	for _, t := range g.DietaryTags {
		if t == tag {
			return true
		}
	}
	return false
}
