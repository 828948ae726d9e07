package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhardy773/security-plus-study-app/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank [file]",
	Short: "Validate and summarize a question bank file",
	Long:  "Validates a question bank JSON file against the bank schema. With no argument, summarizes the built-in bank.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			repo *bank.Repository
			err  error
		)
		if len(args) == 1 {
			repo, err = bank.LoadFile(args[0])
		} else {
			repo, err = bank.Default()
		}
		if err != nil {
			return err
		}

		fmt.Printf("Bank OK: %d questions in %d domains\n\n", repo.Len(), len(repo.Categories()))
		for _, name := range repo.Categories() {
			fmt.Printf("  %-45s %d questions\n", name, len(repo.ByCategory(name)))
		}
		return nil
	},
}
