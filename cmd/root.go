package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vijayyy-code/question-paper-generator/internal/store"
	"github.com/vijayyy-code/question-paper-generator/internal/ui/theme"
)

var rootCmd = &cobra.Command{
	Use:   "qpgen",
	Short: "AI exam question paper generator",
	Long: "Qpgen turns a course syllabus and reference material into a complete\n" +
		"three-part exam paper: one-mark MCQs, six-mark and twelve-mark\n" +
		"descriptive questions, deduplicated against previous sessions.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, theme.Fail.Render("error: "+err.Error()))
		return err
	}
	return nil
}

func init() {
	// Provider keys commonly live in a .env next to the binary.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QPGEN_DB env var)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QPGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
