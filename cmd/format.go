package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijayyy-code/question-paper-generator/internal/printable"
	"github.com/vijayyy-code/question-paper-generator/internal/ui/theme"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Reformat a generated paper into the printable exam layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, _ := cmd.Flags().GetString("in")
		outPath, _ := cmd.Flags().GetString("out")

		content, err := os.ReadFile(inPath)
		if err != nil {
			return fmt.Errorf("read paper: %w", err)
		}

		rendered := printable.Render(string(content))

		if outPath == "" {
			fmt.Print(rendered)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write formatted paper: %w", err)
		}
		fmt.Println(theme.Ok.Render("Formatted paper written to " + outPath))
		return nil
	},
}

func init() {
	formatCmd.Flags().String("in", "", "Generated paper file")
	formatCmd.Flags().String("out", "", "Output file (default stdout)")
	_ = formatCmd.MarkFlagRequired("in")
}
