package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openclass/quizcore/internal/quiz"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a quiz definition from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRole(cmd)
		if err != nil {
			return err
		}
		if err := requireAuthor(r); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		qz, err := quiz.DecodeJSON(f)
		if err != nil {
			return fmt.Errorf("invalid quiz file: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.QuizRepo().Save(context.Background(), qz); err != nil {
			return err
		}

		fmt.Printf("Imported %q (%d questions) as %s\n", qz.Title, len(qz.Questions), qz.ID)
		if !qz.Published {
			fmt.Println("The quiz is unpublished. Run `quizcore publish` to make it takeable.")
		}
		return nil
	},
}
