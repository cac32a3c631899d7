package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Quiz is a gradable assessment owned by a course author.
type Quiz struct {
	ent.Schema
}

func (Quiz) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty(),
		field.String("language").
			Default("en").
			Comment("Presentation language: en or ar"),
		field.Int("time_limit_minutes").
			Positive(),
		field.Float("weight_mcq").
			Default(1).
			Min(0),
		field.Float("weight_true_false").
			Default(1).
			Min(0),
		field.Float("weight_short_answer").
			Default(1).
			Min(0),
		field.String("criteria").
			Optional().
			Comment("Grading instruction passed to the evaluator for short answers"),
		field.Bool("published").
			Default(false),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
	}
}

func (Quiz) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
	}
}
