package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openclass/quizcore/internal/llm"
	"github.com/openclass/quizcore/internal/quiz"
	"github.com/openclass/quizcore/internal/quizgen"
)

var (
	genLanguage    string
	genDifficulty  string
	genMCQ         int
	genTrueFalse   int
	genShortAnswer int
	genTimeLimit   int
)

var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a draft quiz on a topic using an LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRole(cmd)
		if err != nil {
			return err
		}
		if err := requireAuthor(r); err != nil {
			return err
		}

		lang := quiz.Language(genLanguage)
		if lang != quiz.LangEnglish && lang != quiz.LangArabic {
			return fmt.Errorf("unsupported language %q (want en or ar)", genLanguage)
		}

		ctx := context.Background()

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("quiz generation needs a configured LLM provider: %w", err)
		}

		gen := quizgen.New(provider, quizgen.DefaultConfig())
		qz, err := gen.Generate(ctx, quizgen.Spec{
			Topic:            args[0],
			Language:         lang,
			Difficulty:       genDifficulty,
			NumMCQ:           genMCQ,
			NumTrueFalse:     genTrueFalse,
			NumShortAnswer:   genShortAnswer,
			TimeLimitMinutes: genTimeLimit,
		})
		if err != nil {
			return err
		}

		if err := st.QuizRepo().Save(ctx, qz); err != nil {
			return err
		}

		fmt.Printf("Generated %q (%d questions) as %s\n", qz.Title, len(qz.Questions), qz.ID)
		fmt.Println("The draft is unpublished. Review it, then run `quizcore publish`.")
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genLanguage, "lang", "en", "Quiz language (en or ar)")
	generateCmd.Flags().StringVar(&genDifficulty, "difficulty", "introductory", "Difficulty hint for the generator")
	generateCmd.Flags().IntVar(&genMCQ, "mcq", 3, "Number of multiple choice questions")
	generateCmd.Flags().IntVar(&genTrueFalse, "tf", 2, "Number of true/false questions")
	generateCmd.Flags().IntVar(&genShortAnswer, "short", 1, "Number of short answer questions")
	generateCmd.Flags().IntVar(&genTimeLimit, "minutes", 15, "Time limit in minutes")
}
