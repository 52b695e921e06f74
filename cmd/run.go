package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/akashpai/quizdrill/internal/app"
	"github.com/akashpai/quizdrill/internal/logger"
	"github.com/akashpai/quizdrill/internal/session"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	// A .env next to the binary may set QUIZDRILL_BANK; absence is fine.
	_ = godotenv.Load()

	debug, _ := cmd.Flags().GetBool("debug")
	log, err := logger.New(debug)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	bankPath, err := resolveBankPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve bank path: %w", err)
	}

	cfg := session.DefaultConfig()
	if n, err := cmd.Flags().GetInt("study-prompt-every"); err == nil && n > 0 {
		cfg.StudyPromptEvery = n
	}
	if n, err := cmd.Flags().GetInt("test-prompt-every"); err == nil && n > 0 {
		cfg.TestPromptEvery = n
	}

	return app.Run(app.Options{
		DefaultBankPath: bankPath,
		Logger:          log,
		Config:          cfg,
	})
}
