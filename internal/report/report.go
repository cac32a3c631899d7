// Package report renders a completed attempt for the terminal: the
// overall score and a per-question review. Presentation only — it never
// recomputes scores.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/openclass/quizcore/internal/grader"
	"github.com/openclass/quizcore/internal/quiz"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)

	partialStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316")).
			Bold(true)

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC"))

	feedbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)
)

// Render produces the review screen for a completed attempt.
func Render(qz *quiz.Quiz, res *grader.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(qz.Title))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %.0f%%", res.Overall*100)))
	b.WriteString("\n\n")

	for i := range qz.Questions {
		q := &qz.Questions[i]
		qr := res.ByQuestion(q.ID)
		if qr == nil {
			continue
		}

		b.WriteString(promptStyle.Render(fmt.Sprintf("%d. %s", i+1, q.Prompt)))
		b.WriteString("\n")
		b.WriteString("   " + markFor(qr).Render(scoreLabel(qr)))
		b.WriteString("  " + feedbackStyle.Render(qr.Feedback))
		b.WriteString("\n\n")
	}

	return b.String()
}

func markFor(qr *grader.QuestionResult) lipgloss.Style {
	switch {
	case qr.Raw >= 1:
		return correctStyle
	case qr.Raw > 0:
		return partialStyle
	default:
		return wrongStyle
	}
}

func scoreLabel(qr *grader.QuestionResult) string {
	switch {
	case qr.Raw >= 1:
		return "✓"
	case qr.Raw > 0:
		return fmt.Sprintf("◐ %.0f%%", qr.Raw*100)
	default:
		return "✗"
	}
}
