// Code generated by ent, DO NOT EDIT.

package quiz

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the quiz type in the database.
	Label = "quiz"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldTimeLimitMinutes holds the string denoting the time_limit_minutes field in the database.
	FieldTimeLimitMinutes = "time_limit_minutes"
	// FieldWeightMcq holds the string denoting the weight_mcq field in the database.
	FieldWeightMcq = "weight_mcq"
	// FieldWeightTrueFalse holds the string denoting the weight_true_false field in the database.
	FieldWeightTrueFalse = "weight_true_false"
	// FieldWeightShortAnswer holds the string denoting the weight_short_answer field in the database.
	FieldWeightShortAnswer = "weight_short_answer"
	// FieldCriteria holds the string denoting the criteria field in the database.
	FieldCriteria = "criteria"
	// FieldPublished holds the string denoting the published field in the database.
	FieldPublished = "published"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeQuestions holds the string denoting the questions edge name in mutations.
	EdgeQuestions = "questions"
	// Table holds the table name of the quiz in the database.
	Table = "quizs"
	// QuestionsTable is the table that holds the questions relation/edge.
	QuestionsTable = "questions"
	// QuestionsInverseTable is the table name for the Question entity.
	// It exists in this package in order to avoid circular dependency with the "question" package.
	QuestionsInverseTable = "questions"
	// QuestionsColumn is the table column denoting the questions relation/edge.
	QuestionsColumn = "quiz_questions"
)

// Columns holds all SQL columns for quiz fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldLanguage,
	FieldTimeLimitMinutes,
	FieldWeightMcq,
	FieldWeightTrueFalse,
	FieldWeightShortAnswer,
	FieldCriteria,
	FieldPublished,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// TimeLimitMinutesValidator is a validator for the "time_limit_minutes" field. It is called by the builders before save.
	TimeLimitMinutesValidator func(int) error
	// DefaultWeightMcq holds the default value on creation for the "weight_mcq" field.
	DefaultWeightMcq float64
	// WeightMcqValidator is a validator for the "weight_mcq" field. It is called by the builders before save.
	WeightMcqValidator func(float64) error
	// DefaultWeightTrueFalse holds the default value on creation for the "weight_true_false" field.
	DefaultWeightTrueFalse float64
	// WeightTrueFalseValidator is a validator for the "weight_true_false" field. It is called by the builders before save.
	WeightTrueFalseValidator func(float64) error
	// DefaultWeightShortAnswer holds the default value on creation for the "weight_short_answer" field.
	DefaultWeightShortAnswer float64
	// WeightShortAnswerValidator is a validator for the "weight_short_answer" field. It is called by the builders before save.
	WeightShortAnswerValidator func(float64) error
	// DefaultPublished holds the default value on creation for the "published" field.
	DefaultPublished bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Quiz queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByTimeLimitMinutes orders the results by the time_limit_minutes field.
func ByTimeLimitMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeLimitMinutes, opts...).ToFunc()
}

// ByWeightMcq orders the results by the weight_mcq field.
func ByWeightMcq(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightMcq, opts...).ToFunc()
}

// ByWeightTrueFalse orders the results by the weight_true_false field.
func ByWeightTrueFalse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightTrueFalse, opts...).ToFunc()
}

// ByWeightShortAnswer orders the results by the weight_short_answer field.
func ByWeightShortAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeightShortAnswer, opts...).ToFunc()
}

// ByCriteria orders the results by the criteria field.
func ByCriteria(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriteria, opts...).ToFunc()
}

// ByPublished orders the results by the published field.
func ByPublished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublished, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByQuestionsCount orders the results by questions count.
func ByQuestionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newQuestionsStep(), opts...)
	}
}

// ByQuestions orders the results by questions terms.
func ByQuestions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newQuestionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newQuestionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(QuestionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, QuestionsTable, QuestionsColumn),
	)
}
