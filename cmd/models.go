package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijayyy-code/question-paper-generator/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List Gemini models available to the configured API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if cfg.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is not set")
		}

		ctx := context.Background()
		provider, err := llm.NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return fmt.Errorf("create gemini client: %w", err)
		}

		models, err := provider.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("list models: %w", err)
		}

		for _, m := range models {
			fmt.Println(m)
		}
		return nil
	},
}
