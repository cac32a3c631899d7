// Code generated by ent, DO NOT EDIT.

package quiz

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openclass/quizcore/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldLanguage, v))
}

// TimeLimitMinutes applies equality check predicate on the "time_limit_minutes" field. It's identical to TimeLimitMinutesEQ.
func TimeLimitMinutes(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// WeightMcq applies equality check predicate on the "weight_mcq" field. It's identical to WeightMcqEQ.
func WeightMcq(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldWeightMcq, v))
}

// WeightTrueFalse applies equality check predicate on the "weight_true_false" field. It's identical to WeightTrueFalseEQ.
func WeightTrueFalse(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldWeightTrueFalse, v))
}

// WeightShortAnswer applies equality check predicate on the "weight_short_answer" field. It's identical to WeightShortAnswerEQ.
func WeightShortAnswer(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldWeightShortAnswer, v))
}

// Criteria applies equality check predicate on the "criteria" field. It's identical to CriteriaEQ.
func Criteria(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldCriteria, v))
}

// Published applies equality check predicate on the "published" field. It's identical to PublishedEQ.
func Published(v bool) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldPublished, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldCreatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldLanguage, v))
}

// TimeLimitMinutesEQ applies the EQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesEQ(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesNEQ applies the NEQ predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNEQ(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesIn applies the In predicate on the "time_limit_minutes" field.
func TimeLimitMinutesIn(vs ...int) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesNotIn applies the NotIn predicate on the "time_limit_minutes" field.
func TimeLimitMinutesNotIn(vs ...int) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldTimeLimitMinutes, vs...))
}

// TimeLimitMinutesGT applies the GT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGT(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesGTE applies the GTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesGTE(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLT applies the LT predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLT(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldTimeLimitMinutes, v))
}

// TimeLimitMinutesLTE applies the LTE predicate on the "time_limit_minutes" field.
func TimeLimitMinutesLTE(v int) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldTimeLimitMinutes, v))
}

// WeightMcqEQ applies the EQ predicate on the "weight_mcq" field.
func WeightMcqEQ(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldWeightMcq, v))
}

// WeightMcqNEQ applies the NEQ predicate on the "weight_mcq" field.
func WeightMcqNEQ(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldWeightMcq, v))
}

// WeightMcqIn applies the In predicate on the "weight_mcq" field.
func WeightMcqIn(vs ...float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldWeightMcq, vs...))
}

// WeightMcqNotIn applies the NotIn predicate on the "weight_mcq" field.
func WeightMcqNotIn(vs ...float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldWeightMcq, vs...))
}

// WeightMcqGT applies the GT predicate on the "weight_mcq" field.
func WeightMcqGT(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldWeightMcq, v))
}

// WeightMcqGTE applies the GTE predicate on the "weight_mcq" field.
func WeightMcqGTE(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldWeightMcq, v))
}

// WeightMcqLT applies the LT predicate on the "weight_mcq" field.
func WeightMcqLT(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldWeightMcq, v))
}

// WeightMcqLTE applies the LTE predicate on the "weight_mcq" field.
func WeightMcqLTE(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldWeightMcq, v))
}

// WeightTrueFalseEQ applies the EQ predicate on the "weight_true_false" field.
func WeightTrueFalseEQ(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldWeightTrueFalse, v))
}

// WeightTrueFalseNEQ applies the NEQ predicate on the "weight_true_false" field.
func WeightTrueFalseNEQ(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldWeightTrueFalse, v))
}

// WeightTrueFalseIn applies the In predicate on the "weight_true_false" field.
func WeightTrueFalseIn(vs ...float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldWeightTrueFalse, vs...))
}

// WeightTrueFalseNotIn applies the NotIn predicate on the "weight_true_false" field.
func WeightTrueFalseNotIn(vs ...float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldWeightTrueFalse, vs...))
}

// WeightTrueFalseGT applies the GT predicate on the "weight_true_false" field.
func WeightTrueFalseGT(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldWeightTrueFalse, v))
}

// WeightTrueFalseGTE applies the GTE predicate on the "weight_true_false" field.
func WeightTrueFalseGTE(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldWeightTrueFalse, v))
}

// WeightTrueFalseLT applies the LT predicate on the "weight_true_false" field.
func WeightTrueFalseLT(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldWeightTrueFalse, v))
}

// WeightTrueFalseLTE applies the LTE predicate on the "weight_true_false" field.
func WeightTrueFalseLTE(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldWeightTrueFalse, v))
}

// WeightShortAnswerEQ applies the EQ predicate on the "weight_short_answer" field.
func WeightShortAnswerEQ(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldWeightShortAnswer, v))
}

// WeightShortAnswerNEQ applies the NEQ predicate on the "weight_short_answer" field.
func WeightShortAnswerNEQ(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldWeightShortAnswer, v))
}

// WeightShortAnswerIn applies the In predicate on the "weight_short_answer" field.
func WeightShortAnswerIn(vs ...float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldWeightShortAnswer, vs...))
}

// WeightShortAnswerNotIn applies the NotIn predicate on the "weight_short_answer" field.
func WeightShortAnswerNotIn(vs ...float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldWeightShortAnswer, vs...))
}

// WeightShortAnswerGT applies the GT predicate on the "weight_short_answer" field.
func WeightShortAnswerGT(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldWeightShortAnswer, v))
}

// WeightShortAnswerGTE applies the GTE predicate on the "weight_short_answer" field.
func WeightShortAnswerGTE(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldWeightShortAnswer, v))
}

// WeightShortAnswerLT applies the LT predicate on the "weight_short_answer" field.
func WeightShortAnswerLT(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldWeightShortAnswer, v))
}

// WeightShortAnswerLTE applies the LTE predicate on the "weight_short_answer" field.
func WeightShortAnswerLTE(v float64) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldWeightShortAnswer, v))
}

// CriteriaEQ applies the EQ predicate on the "criteria" field.
func CriteriaEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldCriteria, v))
}

// CriteriaNEQ applies the NEQ predicate on the "criteria" field.
func CriteriaNEQ(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldCriteria, v))
}

// CriteriaIn applies the In predicate on the "criteria" field.
func CriteriaIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldCriteria, vs...))
}

// CriteriaNotIn applies the NotIn predicate on the "criteria" field.
func CriteriaNotIn(vs ...string) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldCriteria, vs...))
}

// CriteriaGT applies the GT predicate on the "criteria" field.
func CriteriaGT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldCriteria, v))
}

// CriteriaGTE applies the GTE predicate on the "criteria" field.
func CriteriaGTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldCriteria, v))
}

// CriteriaLT applies the LT predicate on the "criteria" field.
func CriteriaLT(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldCriteria, v))
}

// CriteriaLTE applies the LTE predicate on the "criteria" field.
func CriteriaLTE(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldCriteria, v))
}

// CriteriaContains applies the Contains predicate on the "criteria" field.
func CriteriaContains(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContains(FieldCriteria, v))
}

// CriteriaHasPrefix applies the HasPrefix predicate on the "criteria" field.
func CriteriaHasPrefix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasPrefix(FieldCriteria, v))
}

// CriteriaHasSuffix applies the HasSuffix predicate on the "criteria" field.
func CriteriaHasSuffix(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldHasSuffix(FieldCriteria, v))
}

// CriteriaIsNil applies the IsNil predicate on the "criteria" field.
func CriteriaIsNil() predicate.Quiz {
	return predicate.Quiz(sql.FieldIsNull(FieldCriteria))
}

// CriteriaNotNil applies the NotNil predicate on the "criteria" field.
func CriteriaNotNil() predicate.Quiz {
	return predicate.Quiz(sql.FieldNotNull(FieldCriteria))
}

// CriteriaEqualFold applies the EqualFold predicate on the "criteria" field.
func CriteriaEqualFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldEqualFold(FieldCriteria, v))
}

// CriteriaContainsFold applies the ContainsFold predicate on the "criteria" field.
func CriteriaContainsFold(v string) predicate.Quiz {
	return predicate.Quiz(sql.FieldContainsFold(FieldCriteria, v))
}

// PublishedEQ applies the EQ predicate on the "published" field.
func PublishedEQ(v bool) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldPublished, v))
}

// PublishedNEQ applies the NEQ predicate on the "published" field.
func PublishedNEQ(v bool) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldPublished, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Quiz {
	return predicate.Quiz(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.Quiz {
	return predicate.Quiz(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.Quiz {
	return predicate.Quiz(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quiz) predicate.Quiz {
	return predicate.Quiz(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quiz) predicate.Quiz {
	return predicate.Quiz(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quiz) predicate.Quiz {
	return predicate.Quiz(sql.NotPredicates(p))
}
