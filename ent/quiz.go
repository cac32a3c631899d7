// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/openclass/quizcore/ent/quiz"
)

// Quiz is the model entity for the Quiz schema.
type Quiz struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Presentation language: en or ar
	Language string `json:"language,omitempty"`
	// TimeLimitMinutes holds the value of the "time_limit_minutes" field.
	TimeLimitMinutes int `json:"time_limit_minutes,omitempty"`
	// WeightMcq holds the value of the "weight_mcq" field.
	WeightMcq float64 `json:"weight_mcq,omitempty"`
	// WeightTrueFalse holds the value of the "weight_true_false" field.
	WeightTrueFalse float64 `json:"weight_true_false,omitempty"`
	// WeightShortAnswer holds the value of the "weight_short_answer" field.
	WeightShortAnswer float64 `json:"weight_short_answer,omitempty"`
	// Grading instruction passed to the evaluator for short answers
	Criteria string `json:"criteria,omitempty"`
	// Published holds the value of the "published" field.
	Published bool `json:"published,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuizQuery when eager-loading is set.
	Edges        QuizEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuizEdges holds the relations/edges for other nodes in the graph.
type QuizEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e QuizEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Quiz) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quiz.FieldPublished:
			values[i] = new(sql.NullBool)
		case quiz.FieldWeightMcq, quiz.FieldWeightTrueFalse, quiz.FieldWeightShortAnswer:
			values[i] = new(sql.NullFloat64)
		case quiz.FieldTimeLimitMinutes:
			values[i] = new(sql.NullInt64)
		case quiz.FieldID, quiz.FieldTitle, quiz.FieldLanguage, quiz.FieldCriteria:
			values[i] = new(sql.NullString)
		case quiz.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Quiz fields.
func (_m *Quiz) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quiz.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case quiz.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case quiz.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case quiz.FieldTimeLimitMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit_minutes", values[i])
			} else if value.Valid {
				_m.TimeLimitMinutes = int(value.Int64)
			}
		case quiz.FieldWeightMcq:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_mcq", values[i])
			} else if value.Valid {
				_m.WeightMcq = value.Float64
			}
		case quiz.FieldWeightTrueFalse:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_true_false", values[i])
			} else if value.Valid {
				_m.WeightTrueFalse = value.Float64
			}
		case quiz.FieldWeightShortAnswer:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field weight_short_answer", values[i])
			} else if value.Valid {
				_m.WeightShortAnswer = value.Float64
			}
		case quiz.FieldCriteria:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field criteria", values[i])
			} else if value.Valid {
				_m.Criteria = value.String
			}
		case quiz.FieldPublished:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field published", values[i])
			} else if value.Valid {
				_m.Published = value.Bool
			}
		case quiz.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Quiz.
// This includes values selected through modifiers, order, etc.
func (_m *Quiz) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the Quiz entity.
func (_m *Quiz) QueryQuestions() *QuestionQuery {
	return NewQuizClient(_m.config).QueryQuestions(_m)
}

// Update returns a builder for updating this Quiz.
// Note that you need to call Quiz.Unwrap() before calling this method if this Quiz
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Quiz) Update() *QuizUpdateOne {
	return NewQuizClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Quiz entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Quiz) Unwrap() *Quiz {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Quiz is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Quiz) String() string {
	var builder strings.Builder
	builder.WriteString("Quiz(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("time_limit_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeLimitMinutes))
	builder.WriteString(", ")
	builder.WriteString("weight_mcq=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightMcq))
	builder.WriteString(", ")
	builder.WriteString("weight_true_false=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightTrueFalse))
	builder.WriteString(", ")
	builder.WriteString("weight_short_answer=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeightShortAnswer))
	builder.WriteString(", ")
	builder.WriteString("criteria=")
	builder.WriteString(_m.Criteria)
	builder.WriteString(", ")
	builder.WriteString("published=")
	builder.WriteString(fmt.Sprintf("%v", _m.Published))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Quizs is a parsable slice of Quiz.
type Quizs []*Quiz
