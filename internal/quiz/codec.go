package quiz

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// quizFile is the on-disk JSON shape for authored quizzes.
// Identifiers are optional on import; missing ones are assigned.
type quizFile struct {
	ID               string         `json:"id"`
	Title            string         `json:"title" validate:"required"`
	Language         string         `json:"language" validate:"omitempty,oneof=en ar"`
	TimeLimitMinutes int            `json:"time_limit_minutes" validate:"required,gt=0"`
	WeightMCQ        float64        `json:"weight_mcq" validate:"gte=0"`
	WeightTrueFalse  float64        `json:"weight_true_false" validate:"gte=0"`
	WeightShort      float64        `json:"weight_short_answer" validate:"gte=0"`
	Criteria         string         `json:"criteria"`
	Published        bool           `json:"published"`
	Questions        []questionFile `json:"questions" validate:"required,min=1,dive"`
}

type questionFile struct {
	ID      string       `json:"id"`
	Type    string       `json:"type" validate:"required,oneof=mcq true_false short_answer"`
	Prompt  string       `json:"prompt" validate:"required"`
	Options []optionFile `json:"options" validate:"dive"`
}

type optionFile struct {
	ID      string `json:"id"`
	Text    string `json:"text" validate:"required"`
	Correct bool   `json:"correct"`
}

var fileValidator = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON reads a quiz definition from r, assigns any missing
// identifiers, and checks both the file shape and the domain invariants.
func DecodeJSON(r io.Reader) (*Quiz, error) {
	var f quizFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode quiz file: %w", err)
	}

	if err := fileValidator.Struct(f); err != nil {
		return nil, fmt.Errorf("quiz file failed validation: %w", err)
	}

	qz := &Quiz{
		ID:               orNewID(f.ID),
		Title:            f.Title,
		Language:         Language(f.Language),
		TimeLimitMinutes: f.TimeLimitMinutes,
		Weights: Weights{
			MCQ:         f.WeightMCQ,
			TrueFalse:   f.WeightTrueFalse,
			ShortAnswer: f.WeightShort,
		},
		Criteria:  f.Criteria,
		Published: f.Published,
	}
	if qz.Language == "" {
		qz.Language = LangEnglish
	}

	for _, qf := range f.Questions {
		q := Question{
			ID:     orNewID(qf.ID),
			QuizID: qz.ID,
			Type:   Type(qf.Type),
			Prompt: qf.Prompt,
		}
		for _, of := range qf.Options {
			q.Options = append(q.Options, Option{
				ID:      orNewID(of.ID),
				Text:    of.Text,
				Correct: of.Correct,
			})
		}
		qz.Questions = append(qz.Questions, q)
	}

	if err := qz.Validate(); err != nil {
		return nil, err
	}
	return qz, nil
}

// EncodeJSON writes the quiz definition to w in the import format.
func EncodeJSON(w io.Writer, qz *Quiz) error {
	f := quizFile{
		ID:               qz.ID,
		Title:            qz.Title,
		Language:         string(qz.Language),
		TimeLimitMinutes: qz.TimeLimitMinutes,
		WeightMCQ:        qz.Weights.MCQ,
		WeightTrueFalse:  qz.Weights.TrueFalse,
		WeightShort:      qz.Weights.ShortAnswer,
		Criteria:         qz.Criteria,
		Published:        qz.Published,
	}
	for _, q := range qz.Questions {
		qf := questionFile{
			ID:     q.ID,
			Type:   string(q.Type),
			Prompt: q.Prompt,
		}
		for _, opt := range q.Options {
			qf.Options = append(qf.Options, optionFile{ID: opt.ID, Text: opt.Text, Correct: opt.Correct})
		}
		f.Questions = append(f.Questions, qf)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
