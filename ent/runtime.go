// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openclass/quizcore/ent/attemptevent"
	"github.com/openclass/quizcore/ent/llmrequestevent"
	"github.com/openclass/quizcore/ent/question"
	"github.com/openclass/quizcore/ent/questionoption"
	"github.com/openclass/quizcore/ent/quiz"
	"github.com/openclass/quizcore/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescQuizID is the schema descriptor for quiz_id field.
	attempteventDescQuizID := attempteventFields[1].Descriptor()
	// attemptevent.QuizIDValidator is a validator for the "quiz_id" field. It is called by the builders before save.
	attemptevent.QuizIDValidator = attempteventDescQuizID.Validators[0].(func(string) error)
	// attempteventDescOverallScore is the schema descriptor for overall_score field.
	attempteventDescOverallScore := attempteventFields[2].Descriptor()
	// attemptevent.OverallScoreValidator is a validator for the "overall_score" field. It is called by the builders before save.
	attemptevent.OverallScoreValidator = func() func(float64) error {
		validators := attempteventDescOverallScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(overall_score float64) error {
			for _, fn := range fns {
				if err := fn(overall_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[3].Descriptor()
	// attemptevent.DurationSecsValidator is a validator for the "duration_secs" field. It is called by the builders before save.
	attemptevent.DurationSecsValidator = attempteventDescDurationSecs.Validators[0].(func(int) error)
	// attempteventDescTimeExpired is the schema descriptor for time_expired field.
	attempteventDescTimeExpired := attempteventFields[4].Descriptor()
	// attemptevent.DefaultTimeExpired holds the default value on creation for the time_expired field.
	attemptevent.DefaultTimeExpired = attempteventDescTimeExpired.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescType is the schema descriptor for type field.
	questionDescType := questionFields[1].Descriptor()
	// question.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	question.TypeValidator = questionDescType.Validators[0].(func(string) error)
	// questionDescPrompt is the schema descriptor for prompt field.
	questionDescPrompt := questionFields[2].Descriptor()
	// question.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	question.PromptValidator = questionDescPrompt.Validators[0].(func(string) error)
	// questionDescPosition is the schema descriptor for position field.
	questionDescPosition := questionFields[3].Descriptor()
	// question.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	question.PositionValidator = questionDescPosition.Validators[0].(func(int) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionFields[0].Descriptor()
	// question.IDValidator is a validator for the "id" field. It is called by the builders before save.
	question.IDValidator = questionDescID.Validators[0].(func(string) error)
	questionoptionFields := schema.QuestionOption{}.Fields()
	_ = questionoptionFields
	// questionoptionDescText is the schema descriptor for text field.
	questionoptionDescText := questionoptionFields[1].Descriptor()
	// questionoption.TextValidator is a validator for the "text" field. It is called by the builders before save.
	questionoption.TextValidator = questionoptionDescText.Validators[0].(func(string) error)
	// questionoptionDescCorrect is the schema descriptor for correct field.
	questionoptionDescCorrect := questionoptionFields[2].Descriptor()
	// questionoption.DefaultCorrect holds the default value on creation for the correct field.
	questionoption.DefaultCorrect = questionoptionDescCorrect.Default.(bool)
	// questionoptionDescPosition is the schema descriptor for position field.
	questionoptionDescPosition := questionoptionFields[3].Descriptor()
	// questionoption.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	questionoption.PositionValidator = questionoptionDescPosition.Validators[0].(func(int) error)
	// questionoptionDescID is the schema descriptor for id field.
	questionoptionDescID := questionoptionFields[0].Descriptor()
	// questionoption.IDValidator is a validator for the "id" field. It is called by the builders before save.
	questionoption.IDValidator = questionoptionDescID.Validators[0].(func(string) error)
	quizFields := schema.Quiz{}.Fields()
	_ = quizFields
	// quizDescTitle is the schema descriptor for title field.
	quizDescTitle := quizFields[1].Descriptor()
	// quiz.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	quiz.TitleValidator = quizDescTitle.Validators[0].(func(string) error)
	// quizDescLanguage is the schema descriptor for language field.
	quizDescLanguage := quizFields[2].Descriptor()
	// quiz.DefaultLanguage holds the default value on creation for the language field.
	quiz.DefaultLanguage = quizDescLanguage.Default.(string)
	// quizDescTimeLimitMinutes is the schema descriptor for time_limit_minutes field.
	quizDescTimeLimitMinutes := quizFields[3].Descriptor()
	// quiz.TimeLimitMinutesValidator is a validator for the "time_limit_minutes" field. It is called by the builders before save.
	quiz.TimeLimitMinutesValidator = quizDescTimeLimitMinutes.Validators[0].(func(int) error)
	// quizDescWeightMcq is the schema descriptor for weight_mcq field.
	quizDescWeightMcq := quizFields[4].Descriptor()
	// quiz.DefaultWeightMcq holds the default value on creation for the weight_mcq field.
	quiz.DefaultWeightMcq = quizDescWeightMcq.Default.(float64)
	// quiz.WeightMcqValidator is a validator for the "weight_mcq" field. It is called by the builders before save.
	quiz.WeightMcqValidator = quizDescWeightMcq.Validators[0].(func(float64) error)
	// quizDescWeightTrueFalse is the schema descriptor for weight_true_false field.
	quizDescWeightTrueFalse := quizFields[5].Descriptor()
	// quiz.DefaultWeightTrueFalse holds the default value on creation for the weight_true_false field.
	quiz.DefaultWeightTrueFalse = quizDescWeightTrueFalse.Default.(float64)
	// quiz.WeightTrueFalseValidator is a validator for the "weight_true_false" field. It is called by the builders before save.
	quiz.WeightTrueFalseValidator = quizDescWeightTrueFalse.Validators[0].(func(float64) error)
	// quizDescWeightShortAnswer is the schema descriptor for weight_short_answer field.
	quizDescWeightShortAnswer := quizFields[6].Descriptor()
	// quiz.DefaultWeightShortAnswer holds the default value on creation for the weight_short_answer field.
	quiz.DefaultWeightShortAnswer = quizDescWeightShortAnswer.Default.(float64)
	// quiz.WeightShortAnswerValidator is a validator for the "weight_short_answer" field. It is called by the builders before save.
	quiz.WeightShortAnswerValidator = quizDescWeightShortAnswer.Validators[0].(func(float64) error)
	// quizDescPublished is the schema descriptor for published field.
	quizDescPublished := quizFields[8].Descriptor()
	// quiz.DefaultPublished holds the default value on creation for the published field.
	quiz.DefaultPublished = quizDescPublished.Default.(bool)
	// quizDescCreatedAt is the schema descriptor for created_at field.
	quizDescCreatedAt := quizFields[9].Descriptor()
	// quiz.DefaultCreatedAt holds the default value on creation for the created_at field.
	quiz.DefaultCreatedAt = quizDescCreatedAt.Default.(func() time.Time)
	// quizDescID is the schema descriptor for id field.
	quizDescID := quizFields[0].Descriptor()
	// quiz.IDValidator is a validator for the "id" field. It is called by the builders before save.
	quiz.IDValidator = quizDescID.Validators[0].(func(string) error)
}
