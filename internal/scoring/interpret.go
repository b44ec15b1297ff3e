package scoring

// UnknownLabel is returned when a metric is not in the guide or no band
// covers the value. Interpretation never fails: callers always get something
// they can display.
const UnknownLabel = "Unknown"

// Interpretation is the banded reading of a single metric value.
type Interpretation struct {
	Raw         float64 `json:"raw"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Note        string  `json:"note"`
}

// Engine evaluates analysis records against a scoring guide. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	guide *Guide
}

// NewEngine creates an engine bound to a validated guide.
func NewEngine(guide *Guide) *Engine {
	return &Engine{guide: guide}
}

// Guide returns the engine's scoring guide.
func (e *Engine) Guide() *Guide { return e.guide }

// Interpret maps a raw metric value to its banded label. Unrecognized
// metric names degrade to an Unknown interpretation with an empty
// description rather than failing, so future metric types pass through.
func (e *Engine) Interpret(metricName string, value float64) Interpretation {
	guide, ok := e.guide.Metrics[metricName]
	if !ok {
		return Interpretation{Raw: value, Label: UnknownLabel}
	}

	label := UnknownLabel
	for _, band := range guide.Interpretation {
		if band.Matches(value) {
			label = band.Label
			break
		}
	}

	return Interpretation{
		Raw:         value,
		Label:       label,
		Description: guide.Description,
		Note:        guide.Note,
	}
}
