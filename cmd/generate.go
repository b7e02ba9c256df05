package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vijayyy-code/question-paper-generator/internal/extract"
	"github.com/vijayyy-code/question-paper-generator/internal/history"
	"github.com/vijayyy-code/question-paper-generator/internal/llm"
	"github.com/vijayyy-code/question-paper-generator/internal/paper"
	"github.com/vijayyy-code/question-paper-generator/internal/store"
	"github.com/vijayyy-code/question-paper-generator/internal/syllabus"
	"github.com/vijayyy-code/question-paper-generator/internal/ui/theme"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a complete question paper from a syllabus",
	RunE: func(cmd *cobra.Command, args []string) error {
		syllabusPath, _ := cmd.Flags().GetString("syllabus")
		referencePath, _ := cmd.Flags().GetString("reference")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		mcqsPerUnit, _ := cmd.Flags().GetInt("mcqs-per-unit")
		outPath, _ := cmd.Flags().GetString("out")
		historyDir, _ := cmd.Flags().GetString("history-dir")

		if mcqsPerUnit < 1 {
			return fmt.Errorf("--mcqs-per-unit must be at least 1")
		}

		syllabusText, err := extract.File(syllabusPath)
		if err != nil {
			return fmt.Errorf("read syllabus: %w", err)
		}

		// The reference material defaults to the syllabus itself.
		referenceText := syllabusText
		if referencePath != "" {
			referenceText, err = extract.File(referencePath)
			if err != nil {
				return fmt.Errorf("read reference: %w", err)
			}
		}

		units, degraded := syllabus.SegmentWithFallback(syllabusText)
		if degraded {
			fmt.Fprintln(os.Stderr, theme.Warn.Render(
				"warning: no units detected in syllabus, using the default unit set"))
		}

		cfg, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: set GROQ_API_KEY, GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runID := uuid.NewString()
		ctx := llm.WithRun(context.Background(), runID)

		provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		fmt.Println(theme.Title.Render("Generating question paper"))
		fmt.Println(theme.Dim.Render(fmt.Sprintf("provider=%s model=%s units=%d run=%s",
			cfg.Provider, provider.ModelID(), len(units), runID)))

		var warnings []paper.Warning

		fmt.Println("Part A: one-mark questions...")
		oneMark := &paper.OneMark{
			Provider:         provider,
			History:          history.NewFileStore(filepath.Join(historyDir, history.OneMarkFile)),
			Difficulty:       difficulty,
			QuestionsPerUnit: mcqsPerUnit,
			Pacing:           paper.DefaultPacing,
		}
		blocks, w := oneMark.Generate(ctx, referenceText, units)
		warnings = append(warnings, w...)

		fmt.Println("Part B: six-mark questions...")
		sixMark := &paper.SixMark{
			Provider:   provider,
			History:    history.NewFileStore(filepath.Join(historyDir, history.SixMarkFile)),
			Difficulty: difficulty,
			Pacing:     paper.DefaultPacing,
		}
		sixText, w := sixMark.Generate(ctx, referenceText, units)
		warnings = append(warnings, w...)

		fmt.Println("Part C: twelve-mark questions...")
		twelveMark := &paper.TwelveMark{
			Provider:   provider,
			History:    history.NewFileStore(filepath.Join(historyDir, history.TwelveMarkFile)),
			Difficulty: difficulty,
			Pacing:     paper.DefaultPacing,
		}
		twelveText, w := twelveMark.Generate(ctx, referenceText, units)
		warnings = append(warnings, w...)

		content := fmt.Sprintf("Generated: %s\nRun: %s\n\n%s",
			time.Now().Format("2006-01-02 15:04:05"), runID,
			paper.Assemble(blocks, sixText, twelveText))

		if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write paper: %w", err)
		}

		for _, warning := range warnings {
			fmt.Fprintln(os.Stderr, theme.Warn.Render(
				fmt.Sprintf("warning: %s: %s", warning.Unit.ShortName(), warning.Message)))
		}
		fmt.Println(theme.Ok.Render("Paper written to " + outPath))
		return nil
	},
}

func init() {
	generateCmd.Flags().String("syllabus", "", "Syllabus file (PDF, DOCX or plain text)")
	generateCmd.Flags().String("reference", "", "Reference material file (defaults to the syllabus)")
	generateCmd.Flags().String("difficulty", "medium", "Question difficulty (easy, medium, hard)")
	generateCmd.Flags().Int("mcqs-per-unit", 2, "One-mark questions per unit")
	generateCmd.Flags().String("out", "question_paper.txt", "Output file")
	generateCmd.Flags().String("history-dir", ".", "Directory holding the question history files")
	_ = generateCmd.MarkFlagRequired("syllabus")
}
