package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijayyy-code/question-paper-generator/internal/extract"
	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
	"github.com/vijayyy-code/question-paper-generator/internal/ui/theme"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Preview how a syllabus splits into units",
	RunE: func(cmd *cobra.Command, args []string) error {
		syllabusPath, _ := cmd.Flags().GetString("syllabus")

		text, err := extract.File(syllabusPath)
		if err != nil {
			return fmt.Errorf("read syllabus: %w", err)
		}

		units, degraded := syllabus.SegmentWithFallback(text)
		if degraded {
			fmt.Fprintln(os.Stderr, theme.Warn.Render(
				"warning: no units detected, showing the default unit set"))
		}

		for i, unit := range units {
			fmt.Println(theme.Title.Render(fmt.Sprintf("%d. %s", i+1, unit.ShortName())))
			fmt.Println(theme.Dim.Render(truncate(string(unit), 120)))
		}
		return nil
	},
}

func init() {
	unitsCmd.Flags().String("syllabus", "", "Syllabus file (PDF, DOCX or plain text)")
	_ = unitsCmd.MarkFlagRequired("syllabus")
}
