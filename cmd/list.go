package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored quizzes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		summaries, err := st.QuizRepo().List(context.Background())
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No quizzes stored. Import one with `quizcore import` or generate one with `quizcore generate`.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tLANG\tQUESTIONS\tSTATUS\tCREATED")
		for _, s := range summaries {
			status := "draft"
			if s.Published {
				status = "published"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
				s.ID, s.Title, s.Language, s.QuestionCount, status,
				s.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}
