package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerKind tags the underlying type of a questionnaire answer.
type AnswerKind int

const (
	AnswerString AnswerKind = iota
	AnswerNumber
	AnswerBool
)

// Answer is one questionnaire answer: a string, a number, or a boolean.
// The questionnaire schema is owned by the intake UI; the engine only gives
// special meaning to a handful of keys and passes the rest through untouched.
type Answer struct {
	Kind AnswerKind
	Str  string
	Num  float64
	Bool bool
}

func String(s string) Answer  { return Answer{Kind: AnswerString, Str: s} }
func Number(n float64) Answer { return Answer{Kind: AnswerNumber, Num: n} }
func Boolean(b bool) Answer   { return Answer{Kind: AnswerBool, Bool: b} }

// MarshalJSON serializes the answer as its plain JSON value.
func (a Answer) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerNumber:
		return json.Marshal(a.Num)
	case AnswerBool:
		return json.Marshal(a.Bool)
	default:
		return json.Marshal(a.Str)
	}
}

// UnmarshalJSON accepts any scalar JSON value. Non-scalar values are rejected;
// the questionnaire never produces them.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case string:
		*a = String(t)
	case float64:
		*a = Number(t)
	case bool:
		*a = Boolean(t)
	case nil:
		*a = String("")
	default:
		return fmt.Errorf("answer: unsupported value %T", v)
	}
	return nil
}

// Answers is the questionnaire answer bag keyed by question name.
type Answers map[string]Answer

// StringValue returns the answer as a string, or "" when the key is missing.
// Numeric answers are formatted so conditional questions stored as numbers
// still compare sanely.
func (m Answers) StringValue(key string) string {
	a, ok := m[key]
	if !ok {
		return ""
	}
	switch a.Kind {
	case AnswerNumber:
		return strconv.FormatFloat(a.Num, 'f', -1, 64)
	case AnswerBool:
		return strconv.FormatBool(a.Bool)
	default:
		return a.Str
	}
}

// NumberValue returns the answer as a number. Missing keys, non-numeric
// strings and booleans report ok=false.
func (m Answers) NumberValue(key string) (float64, bool) {
	a, ok := m[key]
	if !ok {
		return 0, false
	}
	switch a.Kind {
	case AnswerNumber:
		return a.Num, true
	case AnswerString:
		n, err := strconv.ParseFloat(a.Str, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// NumberOr returns the answer as a number, or def when absent or non-numeric.
func (m Answers) NumberOr(key string, def float64) float64 {
	if n, ok := m.NumberValue(key); ok {
		return n
	}
	return def
}
