package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// QuestionOption is one selectable answer on an objective question.
// Named to avoid colliding with ent's predeclared Option identifier.
type QuestionOption struct {
	ent.Schema
}

func (QuestionOption) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("text").
			NotEmpty(),
		field.Bool("correct").
			Default(false),
		field.Int("position").
			NonNegative().
			Comment("0-based order within the question"),
	}
}

func (QuestionOption) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("options").
			Unique().
			Required(),
	}
}
