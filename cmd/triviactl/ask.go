package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trivia-quest/backend/internal/generator"
	"github.com/trivia-quest/backend/internal/models"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Generate one question with the configured backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("level")
		level := models.Level(strings.ToLower(raw))
		if !level.Valid() {
			return fmt.Errorf("invalid level %q: valid levels are %s", raw, models.ValidLevelSet())
		}
		showRaw, _ := cmd.Flags().GetBool("raw")

		ctx := context.Background()
		gen, err := generator.NewGenerator(ctx, cfg.Generator, log)
		if err != nil {
			return fmt.Errorf("init generator: %w", err)
		}

		q, resp, err := gen.GenerateQuestion(ctx, level)
		if showRaw && resp != nil {
			fmt.Printf("Raw:       %q\n", resp.Content)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Model:     %s\n", gen.ModelName())
		fmt.Printf("Question:  %s\n", q.Question)
		fmt.Printf("Answer:    %s\n", q.Answer)
		if resp != nil {
			fmt.Printf("Tokens:    %d in / %d out\n", resp.PromptTokens, resp.OutputTokens)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().String("level", string(models.DefaultLevel), "Difficulty level (easy, medium, hard)")
	askCmd.Flags().Bool("raw", false, "Print the raw completion")
}
