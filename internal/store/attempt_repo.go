package store

import (
	"context"
	"fmt"

	"github.com/openclass/quizcore/ent"
	entattempt "github.com/openclass/quizcore/ent/attemptevent"
	entschema "github.com/openclass/quizcore/ent/schema"
	"github.com/openclass/quizcore/internal/quiz"
)

type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, rec AttemptRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	results := make([]entschema.AttemptQuestionResult, 0, len(rec.Questions))
	for _, qr := range rec.Questions {
		results = append(results, entschema.AttemptQuestionResult{
			QuestionID: qr.QuestionID,
			Type:       string(qr.Type),
			Raw:        qr.Raw,
			Weighted:   qr.Weighted,
			Feedback:   qr.Feedback,
		})
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(rec.AttemptID).
		SetQuizID(rec.QuizID).
		SetOverallScore(rec.OverallScore).
		SetDurationSecs(rec.DurationSecs).
		SetTimeExpired(rec.TimeExpired).
		SetQuestionResults(results).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByQuiz(ctx context.Context, quizID string, limit int) ([]AttemptRecord, error) {
	q := r.client.AttemptEvent.Query().
		Where(entattempt.QuizID(quizID)).
		Order(ent.Desc(entattempt.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts for quiz %q: %w", quizID, err)
	}

	out := make([]AttemptRecord, 0, len(events))
	for _, e := range events {
		rec := AttemptRecord{
			Sequence:     e.Sequence,
			Timestamp:    e.Timestamp,
			AttemptID:    e.AttemptID,
			QuizID:       e.QuizID,
			OverallScore: e.OverallScore,
			DurationSecs: e.DurationSecs,
			TimeExpired:  e.TimeExpired,
		}
		for _, qr := range e.QuestionResults {
			rec.Questions = append(rec.Questions, AttemptQuestionRecord{
				QuestionID: qr.QuestionID,
				Type:       quiz.Type(qr.Type),
				Raw:        qr.Raw,
				Weighted:   qr.Weighted,
				Feedback:   qr.Feedback,
			})
		}
		out = append(out, rec)
	}
	return out, nil
}
