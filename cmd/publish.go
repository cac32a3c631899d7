package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var publishUnset bool

var publishCmd = &cobra.Command{
	Use:   "publish <quiz-id>",
	Short: "Publish a quiz so learners can take it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := resolveRole(cmd)
		if err != nil {
			return err
		}
		if err := requireAuthor(r); err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		published := !publishUnset
		if err := st.QuizRepo().SetPublished(context.Background(), args[0], published); err != nil {
			return err
		}

		if published {
			fmt.Printf("Quiz %s is now published.\n", args[0])
		} else {
			fmt.Printf("Quiz %s is back in draft.\n", args[0])
		}
		return nil
	},
}

func init() {
	publishCmd.Flags().BoolVar(&publishUnset, "undo", false, "Unpublish instead (return the quiz to draft)")
}
