package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vijayyy-code/question-paper-generator/internal/history"
	"github.com/vijayyy-code/question-paper-generator/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear the question history",
}

// tierFiles maps the --tier flag values to history file names.
var tierFiles = map[string]string{
	"one":    history.OneMarkFile,
	"six":    history.SixMarkFile,
	"twelve": history.TwelveMarkFile,
}

func selectedTiers(cmd *cobra.Command) (map[string]string, error) {
	tier, _ := cmd.Flags().GetString("tier")
	if tier == "" || tier == "all" {
		return tierFiles, nil
	}
	file, ok := tierFiles[tier]
	if !ok {
		return nil, fmt.Errorf("unknown tier %q: want one, six, twelve or all", tier)
	}
	return map[string]string{tier: file}, nil
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show how many questions each unit has accumulated",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("history-dir")
		tiers, err := selectedTiers(cmd)
		if err != nil {
			return err
		}

		ctx := context.Background()
		for _, tier := range sortedKeys(tiers) {
			h, err := history.NewFileStore(filepath.Join(dir, tiers[tier])).Load(ctx)
			if err != nil {
				return fmt.Errorf("load %s-mark history: %w", tier, err)
			}

			fmt.Println(theme.Title.Render(tier + "-mark"))
			if len(h) == 0 {
				fmt.Println(theme.Dim.Render("  (empty)"))
				continue
			}
			for _, unit := range sortedKeys(h) {
				fmt.Printf("  %-40s %d questions\n", unit, len(h[unit]))
			}
		}
		return nil
	},
}

var historyResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the question history so past questions can recur",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("history-dir")
		tiers, err := selectedTiers(cmd)
		if err != nil {
			return err
		}

		for _, tier := range sortedKeys(tiers) {
			path := filepath.Join(dir, tiers[tier])
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("reset %s-mark history: %w", tier, err)
			}
			fmt.Println(theme.Ok.Render("cleared " + tier + "-mark history"))
		}
		return nil
	},
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	historyCmd.PersistentFlags().String("tier", "all", "Tier to act on: one, six, twelve or all")
	historyCmd.PersistentFlags().String("history-dir", ".", "Directory holding the question history files")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyResetCmd)
}
