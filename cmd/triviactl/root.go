package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/trivia-quest/backend/internal/config"
	"github.com/trivia-quest/backend/internal/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:          "triviactl",
	Short:        "Operator tool for the trivia backend",
	Long:         "triviactl manages the question store schema, loads question sets and runs one-off generations.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if b, _ := cmd.Flags().GetString("store"); b != "" {
			cfg.Store.Backend = b
		}
		if g, _ := cmd.Flags().GetString("generator"); g != "" {
			cfg.Generator.Backend = g
		}
		log = logger.Setup(cfg.LogLevel, cfg.LogFormat)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("store", "", "Document store backend (overrides STORE_BACKEND)")
	rootCmd.PersistentFlags().String("generator", "", "Generation backend (overrides GENERATOR)")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(askCmd)
}
