package grader

import "github.com/openclass/quizcore/internal/quiz"

// Fixed feedback strings, localized by the quiz language. Scoring is
// language-independent; only these strings change.
type messages struct {
	correct          string
	incorrect        string
	noAnswer         string
	evalFailed       string
	couldNotEvaluate string
}

var messageTable = map[quiz.Language]messages{
	quiz.LangEnglish: {
		correct:          "Correct",
		incorrect:        "Incorrect",
		noAnswer:         "No answer provided",
		evalFailed:       "Your answer could not be evaluated due to a technical problem",
		couldNotEvaluate: "Could not evaluate this answer",
	},
	quiz.LangArabic: {
		correct:          "إجابة صحيحة",
		incorrect:        "إجابة خاطئة",
		noAnswer:         "لم يتم تقديم إجابة",
		couldNotEvaluate: "تعذر تقييم هذه الإجابة",
		evalFailed:       "تعذر تقييم إجابتك بسبب مشكلة تقنية",
	},
}

// messagesFor returns the feedback strings for lang, defaulting to English.
func messagesFor(lang quiz.Language) messages {
	if m, ok := messageTable[lang]; ok {
		return m
	}
	return messageTable[quiz.LangEnglish]
}
