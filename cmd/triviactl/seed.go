package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trivia-quest/backend/internal/docstore"
	"github.com/trivia-quest/backend/internal/questions"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load a JSON array of questions into the document store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSeedBackend(cfg.Store.Backend); err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open seed file: %w", err)
		}
		defer f.Close()

		ctx := context.Background()
		store, err := docstore.Open(ctx, cfg.Store, log)
		if err != nil {
			return fmt.Errorf("open document store: %w", err)
		}
		defer store.Close()

		n, err := questions.Seed(ctx, store, f)
		if err != nil {
			return err
		}

		log.Info().Int("count", n).Str("backend", cfg.Store.Backend).Msg("Questions seeded")
		fmt.Printf("Inserted %d questions.\n", n)
		return nil
	},
}

// checkSeedBackend rejects backends that do not outlive the process.
func checkSeedBackend(backend string) error {
	if backend == "memory" {
		return fmt.Errorf("cannot seed the memory store: its data is lost when triviactl exits")
	}
	return nil
}
