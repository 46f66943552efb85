package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// QuestionID is a question identifier. Catalog sources and clients may send it
// either as a JSON string or as a bare number; both decode to the same text.
type QuestionID string

func (id *QuestionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = QuestionID(s)
		return nil
	}
	*id = QuestionID(strings.TrimSpace(string(data)))
	return nil
}

func (id *QuestionID) UnmarshalYAML(value *yaml.Node) error {
	*id = QuestionID(value.Value)
	return nil
}

// Option is one selectable answer and the trait points it carries
type Option struct {
	Text  string           `json:"text" yaml:"text" validate:"required"`
	Score map[TraitKey]int `json:"score" yaml:"score" validate:"dive,keys,trait_key,endkeys"`
}

// Question is a multiple choice prompt
type Question struct {
	ID      QuestionID `json:"id" yaml:"id" validate:"required"`
	Prompt  string     `json:"prompt" yaml:"prompt" validate:"required"`
	Options []Option   `json:"options" yaml:"options" validate:"required,min=1,dive"`
}

// QuestionSet is the ordered list of questions shown for a job or generated test
type QuestionSet []Question

// Find returns the first question with the given id
func (qs QuestionSet) Find(id QuestionID) (*Question, bool) {
	for i := range qs {
		if qs[i].ID == id {
			return &qs[i], true
		}
	}
	return nil, false
}

// Clone deep-copies the set so later edits to the source never leak into it
func (qs QuestionSet) Clone() QuestionSet {
	if qs == nil {
		return nil
	}
	out := make(QuestionSet, len(qs))
	for i, q := range qs {
		options := make([]Option, len(q.Options))
		for j, opt := range q.Options {
			score := make(map[TraitKey]int, len(opt.Score))
			for k, v := range opt.Score {
				score[k] = v
			}
			options[j] = Option{Text: opt.Text, Score: score}
		}
		out[i] = Question{ID: q.ID, Prompt: q.Prompt, Options: options}
	}
	return out
}

// JobProfile is a canonical role with its question bank
type JobProfile struct {
	SkillsRequired []string    `json:"skills_required" yaml:"skills_required"`
	Questions      QuestionSet `json:"questions" yaml:"questions" validate:"required,dive"`
}
