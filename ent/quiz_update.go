// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openclass/quizcore/ent/predicate"
	"github.com/openclass/quizcore/ent/question"
	"github.com/openclass/quizcore/ent/quiz"
)

// QuizUpdate is the builder for updating Quiz entities.
type QuizUpdate struct {
	config
	hooks    []Hook
	mutation *QuizMutation
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdate) Where(ps ...predicate.Quiz) *QuizUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *QuizUpdate) SetTitle(v string) *QuizUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableTitle(v *string) *QuizUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *QuizUpdate) SetLanguage(v string) *QuizUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableLanguage(v *string) *QuizUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_u *QuizUpdate) SetTimeLimitMinutes(v int) *QuizUpdate {
	_u.mutation.ResetTimeLimitMinutes()
	_u.mutation.SetTimeLimitMinutes(v)
	return _u
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableTimeLimitMinutes(v *int) *QuizUpdate {
	if v != nil {
		_u.SetTimeLimitMinutes(*v)
	}
	return _u
}

// AddTimeLimitMinutes adds value to the "time_limit_minutes" field.
func (_u *QuizUpdate) AddTimeLimitMinutes(v int) *QuizUpdate {
	_u.mutation.AddTimeLimitMinutes(v)
	return _u
}

// SetWeightMcq sets the "weight_mcq" field.
func (_u *QuizUpdate) SetWeightMcq(v float64) *QuizUpdate {
	_u.mutation.ResetWeightMcq()
	_u.mutation.SetWeightMcq(v)
	return _u
}

// SetNillableWeightMcq sets the "weight_mcq" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableWeightMcq(v *float64) *QuizUpdate {
	if v != nil {
		_u.SetWeightMcq(*v)
	}
	return _u
}

// AddWeightMcq adds value to the "weight_mcq" field.
func (_u *QuizUpdate) AddWeightMcq(v float64) *QuizUpdate {
	_u.mutation.AddWeightMcq(v)
	return _u
}

// SetWeightTrueFalse sets the "weight_true_false" field.
func (_u *QuizUpdate) SetWeightTrueFalse(v float64) *QuizUpdate {
	_u.mutation.ResetWeightTrueFalse()
	_u.mutation.SetWeightTrueFalse(v)
	return _u
}

// SetNillableWeightTrueFalse sets the "weight_true_false" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableWeightTrueFalse(v *float64) *QuizUpdate {
	if v != nil {
		_u.SetWeightTrueFalse(*v)
	}
	return _u
}

// AddWeightTrueFalse adds value to the "weight_true_false" field.
func (_u *QuizUpdate) AddWeightTrueFalse(v float64) *QuizUpdate {
	_u.mutation.AddWeightTrueFalse(v)
	return _u
}

// SetWeightShortAnswer sets the "weight_short_answer" field.
func (_u *QuizUpdate) SetWeightShortAnswer(v float64) *QuizUpdate {
	_u.mutation.ResetWeightShortAnswer()
	_u.mutation.SetWeightShortAnswer(v)
	return _u
}

// SetNillableWeightShortAnswer sets the "weight_short_answer" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableWeightShortAnswer(v *float64) *QuizUpdate {
	if v != nil {
		_u.SetWeightShortAnswer(*v)
	}
	return _u
}

// AddWeightShortAnswer adds value to the "weight_short_answer" field.
func (_u *QuizUpdate) AddWeightShortAnswer(v float64) *QuizUpdate {
	_u.mutation.AddWeightShortAnswer(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *QuizUpdate) SetCriteria(v string) *QuizUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *QuizUpdate) SetNillableCriteria(v *string) *QuizUpdate {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *QuizUpdate) ClearCriteria() *QuizUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// SetPublished sets the "published" field.
func (_u *QuizUpdate) SetPublished(v bool) *QuizUpdate {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *QuizUpdate) SetNillablePublished(v *bool) *QuizUpdate {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *QuizUpdate) AddQuestionIDs(ids ...string) *QuizUpdate {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *QuizUpdate) AddQuestions(v ...*Question) *QuizUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdate) Mutation() *QuizMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *QuizUpdate) ClearQuestions() *QuizUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *QuizUpdate) RemoveQuestionIDs(ids ...string) *QuizUpdate {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *QuizUpdate) RemoveQuestions(v ...*Question) *QuizUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := quiz.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quiz.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitMinutes(); ok {
		if err := quiz.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "Quiz.time_limit_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightMcq(); ok {
		if err := quiz.WeightMcqValidator(v); err != nil {
			return &ValidationError{Name: "weight_mcq", err: fmt.Errorf(`ent: validator failed for field "Quiz.weight_mcq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightTrueFalse(); ok {
		if err := quiz.WeightTrueFalseValidator(v); err != nil {
			return &ValidationError{Name: "weight_true_false", err: fmt.Errorf(`ent: validator failed for field "Quiz.weight_true_false": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightShortAnswer(); ok {
		if err := quiz.WeightShortAnswerValidator(v); err != nil {
			return &ValidationError{Name: "weight_short_answer", err: fmt.Errorf(`ent: validator failed for field "Quiz.weight_short_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quiz.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(quiz.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(quiz.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(quiz.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightMcq(); ok {
		_spec.SetField(quiz.FieldWeightMcq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightMcq(); ok {
		_spec.AddField(quiz.FieldWeightMcq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeightTrueFalse(); ok {
		_spec.SetField(quiz.FieldWeightTrueFalse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightTrueFalse(); ok {
		_spec.AddField(quiz.FieldWeightTrueFalse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeightShortAnswer(); ok {
		_spec.SetField(quiz.FieldWeightShortAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightShortAnswer(); ok {
		_spec.AddField(quiz.FieldWeightShortAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(quiz.FieldCriteria, field.TypeString, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(quiz.FieldCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(quiz.FieldPublished, field.TypeBool, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quiz.QuestionsTable,
			Columns: []string{quiz.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quiz.QuestionsTable,
			Columns: []string{quiz.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quiz.QuestionsTable,
			Columns: []string{quiz.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizUpdateOne is the builder for updating a single Quiz entity.
type QuizUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizMutation
}

// SetTitle sets the "title" field.
func (_u *QuizUpdateOne) SetTitle(v string) *QuizUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableTitle(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *QuizUpdateOne) SetLanguage(v string) *QuizUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableLanguage(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTimeLimitMinutes sets the "time_limit_minutes" field.
func (_u *QuizUpdateOne) SetTimeLimitMinutes(v int) *QuizUpdateOne {
	_u.mutation.ResetTimeLimitMinutes()
	_u.mutation.SetTimeLimitMinutes(v)
	return _u
}

// SetNillableTimeLimitMinutes sets the "time_limit_minutes" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableTimeLimitMinutes(v *int) *QuizUpdateOne {
	if v != nil {
		_u.SetTimeLimitMinutes(*v)
	}
	return _u
}

// AddTimeLimitMinutes adds value to the "time_limit_minutes" field.
func (_u *QuizUpdateOne) AddTimeLimitMinutes(v int) *QuizUpdateOne {
	_u.mutation.AddTimeLimitMinutes(v)
	return _u
}

// SetWeightMcq sets the "weight_mcq" field.
func (_u *QuizUpdateOne) SetWeightMcq(v float64) *QuizUpdateOne {
	_u.mutation.ResetWeightMcq()
	_u.mutation.SetWeightMcq(v)
	return _u
}

// SetNillableWeightMcq sets the "weight_mcq" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableWeightMcq(v *float64) *QuizUpdateOne {
	if v != nil {
		_u.SetWeightMcq(*v)
	}
	return _u
}

// AddWeightMcq adds value to the "weight_mcq" field.
func (_u *QuizUpdateOne) AddWeightMcq(v float64) *QuizUpdateOne {
	_u.mutation.AddWeightMcq(v)
	return _u
}

// SetWeightTrueFalse sets the "weight_true_false" field.
func (_u *QuizUpdateOne) SetWeightTrueFalse(v float64) *QuizUpdateOne {
	_u.mutation.ResetWeightTrueFalse()
	_u.mutation.SetWeightTrueFalse(v)
	return _u
}

// SetNillableWeightTrueFalse sets the "weight_true_false" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableWeightTrueFalse(v *float64) *QuizUpdateOne {
	if v != nil {
		_u.SetWeightTrueFalse(*v)
	}
	return _u
}

// AddWeightTrueFalse adds value to the "weight_true_false" field.
func (_u *QuizUpdateOne) AddWeightTrueFalse(v float64) *QuizUpdateOne {
	_u.mutation.AddWeightTrueFalse(v)
	return _u
}

// SetWeightShortAnswer sets the "weight_short_answer" field.
func (_u *QuizUpdateOne) SetWeightShortAnswer(v float64) *QuizUpdateOne {
	_u.mutation.ResetWeightShortAnswer()
	_u.mutation.SetWeightShortAnswer(v)
	return _u
}

// SetNillableWeightShortAnswer sets the "weight_short_answer" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableWeightShortAnswer(v *float64) *QuizUpdateOne {
	if v != nil {
		_u.SetWeightShortAnswer(*v)
	}
	return _u
}

// AddWeightShortAnswer adds value to the "weight_short_answer" field.
func (_u *QuizUpdateOne) AddWeightShortAnswer(v float64) *QuizUpdateOne {
	_u.mutation.AddWeightShortAnswer(v)
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *QuizUpdateOne) SetCriteria(v string) *QuizUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillableCriteria(v *string) *QuizUpdateOne {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *QuizUpdateOne) ClearCriteria() *QuizUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// SetPublished sets the "published" field.
func (_u *QuizUpdateOne) SetPublished(v bool) *QuizUpdateOne {
	_u.mutation.SetPublished(v)
	return _u
}

// SetNillablePublished sets the "published" field if the given value is not nil.
func (_u *QuizUpdateOne) SetNillablePublished(v *bool) *QuizUpdateOne {
	if v != nil {
		_u.SetPublished(*v)
	}
	return _u
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_u *QuizUpdateOne) AddQuestionIDs(ids ...string) *QuizUpdateOne {
	_u.mutation.AddQuestionIDs(ids...)
	return _u
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_u *QuizUpdateOne) AddQuestions(v ...*Question) *QuizUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddQuestionIDs(ids...)
}

// Mutation returns the QuizMutation object of the builder.
func (_u *QuizUpdateOne) Mutation() *QuizMutation {
	return _u.mutation
}

// ClearQuestions clears all "questions" edges to the Question entity.
func (_u *QuizUpdateOne) ClearQuestions() *QuizUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// RemoveQuestionIDs removes the "questions" edge to Question entities by IDs.
func (_u *QuizUpdateOne) RemoveQuestionIDs(ids ...string) *QuizUpdateOne {
	_u.mutation.RemoveQuestionIDs(ids...)
	return _u
}

// RemoveQuestions removes "questions" edges to Question entities.
func (_u *QuizUpdateOne) RemoveQuestions(v ...*Question) *QuizUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveQuestionIDs(ids...)
}

// Where appends a list predicates to the QuizUpdate builder.
func (_u *QuizUpdateOne) Where(ps ...predicate.Quiz) *QuizUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizUpdateOne) Select(field string, fields ...string) *QuizUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Quiz entity.
func (_u *QuizUpdateOne) Save(ctx context.Context) (*Quiz, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizUpdateOne) SaveX(ctx context.Context) *Quiz {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := quiz.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Quiz.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeLimitMinutes(); ok {
		if err := quiz.TimeLimitMinutesValidator(v); err != nil {
			return &ValidationError{Name: "time_limit_minutes", err: fmt.Errorf(`ent: validator failed for field "Quiz.time_limit_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightMcq(); ok {
		if err := quiz.WeightMcqValidator(v); err != nil {
			return &ValidationError{Name: "weight_mcq", err: fmt.Errorf(`ent: validator failed for field "Quiz.weight_mcq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightTrueFalse(); ok {
		if err := quiz.WeightTrueFalseValidator(v); err != nil {
			return &ValidationError{Name: "weight_true_false", err: fmt.Errorf(`ent: validator failed for field "Quiz.weight_true_false": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WeightShortAnswer(); ok {
		if err := quiz.WeightShortAnswerValidator(v); err != nil {
			return &ValidationError{Name: "weight_short_answer", err: fmt.Errorf(`ent: validator failed for field "Quiz.weight_short_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizUpdateOne) sqlSave(ctx context.Context) (_node *Quiz, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quiz.Table, quiz.Columns, sqlgraph.NewFieldSpec(quiz.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Quiz.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quiz.FieldID)
		for _, f := range fields {
			if !quiz.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quiz.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(quiz.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(quiz.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeLimitMinutes(); ok {
		_spec.SetField(quiz.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeLimitMinutes(); ok {
		_spec.AddField(quiz.FieldTimeLimitMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightMcq(); ok {
		_spec.SetField(quiz.FieldWeightMcq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightMcq(); ok {
		_spec.AddField(quiz.FieldWeightMcq, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeightTrueFalse(); ok {
		_spec.SetField(quiz.FieldWeightTrueFalse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightTrueFalse(); ok {
		_spec.AddField(quiz.FieldWeightTrueFalse, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.WeightShortAnswer(); ok {
		_spec.SetField(quiz.FieldWeightShortAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightShortAnswer(); ok {
		_spec.AddField(quiz.FieldWeightShortAnswer, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(quiz.FieldCriteria, field.TypeString, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(quiz.FieldCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Published(); ok {
		_spec.SetField(quiz.FieldPublished, field.TypeBool, value)
	}
	if _u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quiz.QuestionsTable,
			Columns: []string{quiz.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedQuestionsIDs(); len(nodes) > 0 && !_u.mutation.QuestionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quiz.QuestionsTable,
			Columns: []string{quiz.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quiz.QuestionsTable,
			Columns: []string{quiz.QuestionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Quiz{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quiz.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
