package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashpai/quizdrill/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a bank file and show its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := store.Read(args[0])
		if err != nil {
			return err
		}

		for i, name := range b.Chapters() {
			fmt.Printf("%d. %s (%d questions)\n", i+1, name, len(b.Questions(name)))
		}
		fmt.Printf("OK: %d chapters, %d questions\n", len(b.Chapters()), b.QuestionCount())
		return nil
	},
}
