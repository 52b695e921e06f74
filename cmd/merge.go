package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akashpai/quizdrill/internal/quiz"
	"github.com/akashpai/quizdrill/internal/store"
)

var mergeCmd = &cobra.Command{
	Use:   "merge FILE1 FILE2",
	Short: "Merge two question banks into one",
	Long: "Merge unions the chapter sets of two banks. Chapters present in both " +
		"get the first file's questions followed by the second's; the output " +
		"lists chapters in alphabetical order.",
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := store.Read(args[0])
		if err != nil {
			return err
		}
		b, err := store.Read(args[1])
		if err != nil {
			return err
		}

		merged := quiz.Merge(a, b)

		out, _ := cmd.Flags().GetString("output")
		if err := store.EnsureDir(out); err != nil {
			return err
		}
		if err := store.Save(out, merged); err != nil {
			return err
		}

		fmt.Printf("Merged %d chapters (%d questions) into %s\n",
			len(merged.Chapters()), merged.QuestionCount(), out)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringP("output", "o", "merged_bank.json", "Output file")
}
