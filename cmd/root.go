package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openclass/quizcore/internal/role"
	"github.com/openclass/quizcore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizcore",
	Short: "Quiz engine for the OpenClass learning platform",
	Long:  "Quizcore — timed, mixed-type assessments with deterministic and AI-assisted grading.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZCORE_DB env var)")
	rootCmd.PersistentFlags().String("role", "", "Acting role: student, teacher, or admin (overrides QUIZCORE_ROLE)")

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZCORE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveRole determines the acting role once, from the --role flag or
// QUIZCORE_ROLE, defaulting to student. Commands receive it explicitly.
func resolveRole(cmd *cobra.Command) (role.Role, error) {
	s, _ := cmd.Flags().GetString("role")
	if s == "" {
		s = os.Getenv("QUIZCORE_ROLE")
	}
	if s == "" {
		return role.RoleStudent, nil
	}
	return role.Parse(s)
}

// requireAuthor guards authoring commands.
func requireAuthor(r role.Role) error {
	if !r.CanAuthor() {
		return fmt.Errorf("role %q may not author quizzes (need teacher or admin)", r)
	}
	return nil
}

// openStore opens the store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}
