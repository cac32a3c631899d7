package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results <quiz-id>",
	Short: "Show recorded attempts for a quiz",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		attempts, err := st.AttemptRepo().ListByQuiz(context.Background(), args[0], resultsLimit)
		if err != nil {
			return err
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts recorded for this quiz yet.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tATTEMPT\tSCORE\tDURATION\tTIME")
		for _, a := range attempts {
			timing := "finished"
			if a.TimeExpired {
				timing = "expired"
			}
			fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%s\t%s\n",
				a.Timestamp.Format("2006-01-02 15:04"),
				shortID(a.AttemptID),
				a.OverallScore*100,
				formatClock(a.DurationSecs),
				timing)
		}
		return w.Flush()
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	resultsCmd.Flags().IntVar(&resultsLimit, "limit", 20, "Maximum number of attempts to show")
}
