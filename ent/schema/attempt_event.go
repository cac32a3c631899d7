package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed quiz submission. Appended exactly
// once per submission and never mutated; retakes append new events.
type AttemptEvent struct {
	ent.Schema
}

// AttemptQuestionResult is the per-question outcome embedded in an
// attempt event.
type AttemptQuestionResult struct {
	QuestionID string  `json:"question_id"`
	Type       string  `json:"type"`
	Raw        float64 `json:"raw"`
	Weighted   float64 `json:"weighted"`
	Feedback   string  `json:"feedback"`
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("UUID of the session that produced this submission"),
		field.String("quiz_id").
			NotEmpty(),
		field.Float("overall_score").
			Min(0).
			Max(1),
		field.Int("duration_secs").
			NonNegative().
			Comment("Seconds of the time limit consumed"),
		field.Bool("time_expired").
			Default(false).
			Comment("True when the countdown forced the submission"),
		field.JSON("question_results", []AttemptQuestionResult{}),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("quiz_id"),
		index.Fields("attempt_id"),
	}
}
