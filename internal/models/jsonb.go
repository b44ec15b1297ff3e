package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/trichocare/backend/internal/scoring"
)

// JSONBAnswers stores the questionnaire answer bag as JSONB.
type JSONBAnswers scoring.Answers

func (a JSONBAnswers) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	return json.Marshal(scoring.Answers(a))
}

func (a *JSONBAnswers) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBAnswers{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), (*scoring.Answers)(a))
}

// JSONBReport stores a generated report as JSONB.
type JSONBReport scoring.Report

func (r JSONBReport) Value() (driver.Value, error) {
	return json.Marshal(scoring.Report(r))
}

func (r *JSONBReport) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), (*scoring.Report)(r))
}

// JSONBPermissions stores a role's module-to-actions map as JSONB.
type JSONBPermissions map[string][]string

func (p JSONBPermissions) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return json.Marshal(map[string][]string(p))
}

func (p *JSONBPermissions) Scan(value interface{}) error {
	if value == nil {
		*p = JSONBPermissions{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), (*map[string][]string)(p))
}

func jsonbBytes(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return nil
	}
}
