package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// LooseInt is an integer field that tolerates clients sending numbers as
// strings, floats or booleans. Decoding never fails; values that cannot be read
// as an integer are kept but report ok=false from Int.
type LooseInt struct {
	value int
	valid bool
	raw   json.RawMessage
}

// IntValue builds a valid LooseInt
func IntValue(n int) LooseInt {
	return LooseInt{value: n, valid: true}
}

// InvalidInt builds a LooseInt that carries the given raw JSON but no integer
func InvalidInt(raw string) LooseInt {
	return LooseInt{raw: json.RawMessage(raw)}
}

// Int returns the integer and whether the source could be parsed as one
func (li LooseInt) Int() (int, bool) {
	return li.value, li.valid
}

func (li *LooseInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	li.raw = append(json.RawMessage(nil), trimmed...)
	li.value, li.valid = parseLooseInt(trimmed)
	return nil
}

func (li LooseInt) MarshalJSON() ([]byte, error) {
	if len(li.raw) > 0 {
		return li.raw, nil
	}
	if li.valid {
		return []byte(strconv.Itoa(li.value)), nil
	}
	return []byte("null"), nil
}

func parseLooseInt(data []byte) (int, bool) {
	if len(data) == 0 {
		return 0, false
	}

	switch string(data) {
	case "null":
		return 0, false
	case "true":
		return 1, true
	case "false":
		return 0, true
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, true
	}

	if data[0] == '{' || data[0] == '[' {
		return 0, false
	}

	if n, err := strconv.Atoi(string(data)); err == nil {
		return n, true
	}

	// JSON numbers with a fraction or exponent truncate toward zero
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	f = math.Trunc(f)
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}

// Answer is one candidate response as submitted by the timed session
type Answer struct {
	QuestionID          QuestionID `json:"questionId"`
	SelectedOptionIndex LooseInt   `json:"selectedOptionIndex"`
	TimeTakenMs         LooseInt   `json:"timeTakenMs"`
}

// NewAnswer builds a well-formed answer
func NewAnswer(questionID QuestionID, optionIndex, timeTakenMs int) Answer {
	return Answer{
		QuestionID:          questionID,
		SelectedOptionIndex: IntValue(optionIndex),
		TimeTakenMs:         IntValue(timeTakenMs),
	}
}
