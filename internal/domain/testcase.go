package domain

import (
	"encoding/json"
	"fmt"
)

// TestCase is a named fixture used to validate a solution without touching
// the real puzzle input. Read from fixture files, never persisted.
type TestCase struct {
	Name     string     `json:"name"`
	Input    string     `json:"input"`
	Args     []string   `json:"args,omitempty"`
	Expected AnswerText `json:"expected"`
}

// AnswerText is an expected answer coerced to its textual form, so fixtures
// may declare numeric answers without quoting them.
type AnswerText string

func (a *AnswerText) UnmarshalJSON(raw []byte) error {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		*a = AnswerText(asString)
		return nil
	}
	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		*a = AnswerText(asNumber.String())
		return nil
	}
	return fmt.Errorf("expected answer must be a string or a number, got %s", raw)
}

func (a AnswerText) String() string {
	return string(a)
}
