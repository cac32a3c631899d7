package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/openclass/quizcore/internal/grader"
	"github.com/openclass/quizcore/internal/llm"
	"github.com/openclass/quizcore/internal/quiz"
	"github.com/openclass/quizcore/internal/report"
	"github.com/openclass/quizcore/internal/session"
	"github.com/openclass/quizcore/internal/store"
)

var takeCmd = &cobra.Command{
	Use:   "take <quiz-id>",
	Short: "Take a quiz at the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		qz, err := st.QuizRepo().Get(ctx, args[0])
		if err != nil {
			return err
		}

		// The evaluator is optional: without a configured provider,
		// short answers degrade to zero-credit failure feedback.
		var evaluator grader.Evaluator
		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Short answer questions will not be graded.")
		} else {
			evaluator = grader.NewLLMEvaluator(provider, grader.DefaultEvaluatorConfig())
		}

		attemptRepo := st.AttemptRepo()
		sess, err := session.New(qz, session.Config{
			Grader: grader.New(evaluator),
			OnComplete: func(sum session.Summary) {
				if err := persistAttempt(ctx, attemptRepo, sum); err != nil {
					fmt.Fprintln(os.Stderr, "warning: failed to record attempt:", err)
				}
			},
		})
		if err != nil {
			return err
		}

		return runAttempt(sess)
	},
}

// runAttempt drives one attempt: a ticker feeds the countdown while the
// prompt loop collects answers, then the result is rendered.
func runAttempt(sess *session.Session) error {
	qz := sess.Quiz()

	fmt.Printf("\n%s — %d questions, %d minutes\n\n", qz.Title, len(qz.Questions), qz.TimeLimitMinutes)

	sess.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				sess.Tick()
			}
		}
	}()

	reader := bufio.NewScanner(os.Stdin)
	for sess.State() == session.StateInProgress {
		q := sess.CurrentQuestion()
		if q == nil {
			break
		}
		idx := sess.CurrentIndex()

		fmt.Printf("[%s remaining]\n", formatClock(sess.TimeRemaining()))
		fmt.Printf("Q%d/%d: %s\n", idx+1, len(qz.Questions), q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt.Text)
		}
		if q.Type == quiz.TypeShortAnswer {
			fmt.Print("Your answer: ")
		} else {
			fmt.Print("Pick an option (or press enter to skip): ")
		}

		if !reader.Scan() {
			break
		}
		// Time may have forced submission while the prompt was open.
		if sess.State() != session.StateInProgress {
			break
		}

		input := strings.TrimSpace(reader.Text())
		if input != "" {
			sess.SelectAnswer(q.ID, resolveAnswer(q, input))
		}

		if idx == len(qz.Questions)-1 {
			break
		}
		sess.GoToNext()
		fmt.Println()
	}

	fmt.Println("\nSubmitting…")
	sess.Submit(context.Background())

	res, ok := sess.Result()
	if !ok {
		return fmt.Errorf("no result produced")
	}
	fmt.Println(report.Render(qz, res))
	return nil
}

// resolveAnswer maps a typed option number to its option id; free text
// passes through untouched.
func resolveAnswer(q *quiz.Question, input string) string {
	if q.Type == quiz.TypeShortAnswer {
		return input
	}
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1].ID
	}
	// Not a valid option number; the grader treats it as incorrect.
	return input
}

func formatClock(secs int) string {
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func persistAttempt(ctx context.Context, repo store.AttemptRepo, sum session.Summary) error {
	rec := store.AttemptRecord{
		AttemptID:    sum.AttemptID,
		QuizID:       sum.Quiz.ID,
		OverallScore: sum.Result.Overall,
		DurationSecs: sum.DurationSecs,
		TimeExpired:  sum.TimeExpired,
	}
	for _, qr := range sum.Result.Questions {
		rec.Questions = append(rec.Questions, store.AttemptQuestionRecord{
			QuestionID: qr.QuestionID,
			Type:       qr.Type,
			Raw:        qr.Raw,
			Weighted:   qr.Weighted,
			Feedback:   qr.Feedback,
		})
	}
	return repo.Append(ctx, rec)
}
