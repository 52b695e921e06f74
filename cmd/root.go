package cmd

import (
	"github.com/akashpai/quizdrill/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizdrill",
	Short: "Adaptive multiple-choice study aid",
	Long:  "Quizdrill is a terminal study aid that drills chapters of multiple-choice questions, asking the ones you miss more often.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to bank JSON file (overrides QUIZDRILL_BANK env var)")
	rootCmd.PersistentFlags().Bool("debug", false, "Verbose logging")
	rootCmd.Flags().Int("study-prompt-every", 1, "Ask to continue after every Nth question while studying a chapter")
	rootCmd.Flags().Int("test-prompt-every", 5, "Ask to continue after every Nth question during a full test")

	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveBankPath returns the bank path using --bank flag (highest
// priority), then QUIZDRILL_BANK env var, then the default XDG path.
func resolveBankPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultBankPath()
}
