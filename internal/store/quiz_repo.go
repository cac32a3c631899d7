package store

import (
	"context"
	"fmt"

	"github.com/openclass/quizcore/ent"
	entquestion "github.com/openclass/quizcore/ent/question"
	entquiz "github.com/openclass/quizcore/ent/quiz"
	"github.com/openclass/quizcore/internal/quiz"
)

type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) Get(ctx context.Context, id string) (*quiz.Quiz, error) {
	eq, err := r.client.Quiz.Query().
		Where(entquiz.ID(id)).
		WithQuestions(func(q *ent.QuestionQuery) {
			q.Order(ent.Asc(entquestion.FieldPosition)).
				WithOptions()
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("quiz %q not found", id)
		}
		return nil, fmt.Errorf("query quiz %q: %w", id, err)
	}

	return toDomainQuiz(eq), nil
}

func (r *quizRepo) Save(ctx context.Context, qz *quiz.Quiz) error {
	if err := qz.Validate(); err != nil {
		return err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	err = saveQuizTx(ctx, tx, qz)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

func saveQuizTx(ctx context.Context, tx *ent.Tx, qz *quiz.Quiz) error {
	eq, err := tx.Quiz.Create().
		SetID(qz.ID).
		SetTitle(qz.Title).
		SetLanguage(string(qz.Language)).
		SetTimeLimitMinutes(qz.TimeLimitMinutes).
		SetWeightMcq(qz.Weights.MCQ).
		SetWeightTrueFalse(qz.Weights.TrueFalse).
		SetWeightShortAnswer(qz.Weights.ShortAnswer).
		SetCriteria(qz.Criteria).
		SetPublished(qz.Published).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz %q: %w", qz.ID, err)
	}

	for pos, q := range qz.Questions {
		eqn, err := tx.Question.Create().
			SetID(q.ID).
			SetType(string(q.Type)).
			SetPrompt(q.Prompt).
			SetPosition(pos).
			SetQuiz(eq).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save question %q: %w", q.ID, err)
		}
		for opos, opt := range q.Options {
			_, err := tx.QuestionOption.Create().
				SetID(opt.ID).
				SetText(opt.Text).
				SetCorrect(opt.Correct).
				SetPosition(opos).
				SetQuestion(eqn).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("save option %q: %w", opt.ID, err)
			}
		}
	}
	return nil
}

func (r *quizRepo) List(ctx context.Context) ([]QuizSummary, error) {
	quizzes, err := r.client.Quiz.Query().
		Order(ent.Asc(entquiz.FieldCreatedAt)).
		WithQuestions().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}

	out := make([]QuizSummary, 0, len(quizzes))
	for _, eq := range quizzes {
		out = append(out, QuizSummary{
			ID:            eq.ID,
			Title:         eq.Title,
			Language:      quiz.Language(eq.Language),
			QuestionCount: len(eq.Edges.Questions),
			Published:     eq.Published,
			CreatedAt:     eq.CreatedAt,
		})
	}
	return out, nil
}

func (r *quizRepo) SetPublished(ctx context.Context, id string, published bool) error {
	err := r.client.Quiz.UpdateOneID(id).
		SetPublished(published).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("quiz %q not found", id)
		}
		return fmt.Errorf("update quiz %q: %w", id, err)
	}
	return nil
}

// toDomainQuiz maps an ent quiz (with questions and options loaded) to
// the domain type.
func toDomainQuiz(eq *ent.Quiz) *quiz.Quiz {
	qz := &quiz.Quiz{
		ID:               eq.ID,
		Title:            eq.Title,
		Language:         quiz.Language(eq.Language),
		TimeLimitMinutes: eq.TimeLimitMinutes,
		Weights: quiz.Weights{
			MCQ:         eq.WeightMcq,
			TrueFalse:   eq.WeightTrueFalse,
			ShortAnswer: eq.WeightShortAnswer,
		},
		Criteria:  eq.Criteria,
		Published: eq.Published,
	}

	for _, eqn := range eq.Edges.Questions {
		q := quiz.Question{
			ID:     eqn.ID,
			QuizID: eq.ID,
			Type:   quiz.Type(eqn.Type),
			Prompt: eqn.Prompt,
		}
		// Options ride along unordered; restore authoring order.
		opts := eqn.Edges.Options
		for pos := 0; pos < len(opts); pos++ {
			for _, eo := range opts {
				if eo.Position == pos {
					q.Options = append(q.Options, quiz.Option{
						ID:      eo.ID,
						Text:    eo.Text,
						Correct: eo.Correct,
					})
					break
				}
			}
		}
		qz.Questions = append(qz.Questions, q)
	}
	return qz
}
