package cli

import (
	"github.com/spf13/cobra"

	"github.com/emberforge/emberforge/dice"
)

var rollPool int

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Make a d6 action roll",
	Long:  "Rolls a pool of six-sided dice and grades the outcome. A pool of zero rolls two dice and keeps the lowest.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := dice.D6()
		if err != nil {
			return err
		}
		result, err := dice.ActionRoll(d, rollPool)
		if err != nil {
			return err
		}
		cmd.Printf("%s %v\n", result.Outcome, result.Rolls)
		return nil
	},
}

func init() {
	rollCmd.Flags().IntVar(&rollPool, "pool", 1, "number of dice in the pool")
	rootCmd.AddCommand(rollCmd)
}
