package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is one item within a quiz, in display order.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("type").
			NotEmpty().
			Comment("mcq, true_false, or short_answer"),
		field.String("prompt").
			NotEmpty(),
		field.Int("position").
			NonNegative().
			Comment("0-based order within the quiz"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("quiz", Quiz.Type).
			Ref("questions").
			Unique().
			Required(),
		edge.To("options", QuestionOption.Type),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
	}
}
