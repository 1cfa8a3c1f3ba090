package cmd

import (
	"github.com/spf13/cobra"
)

var baseStatsCmd = &cobra.Command{
	Use:   "basestats <pokemon>",
	Short: "Show the base stats of a Pokémon",
	Long: `Show the base stats of a Pokémon as of the selected generation.

Examples:
  ivchecker basestats pikachu
  ivchecker basestats pikachu -g 5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBaseStats,
}

func init() {
	rootCmd.AddCommand(baseStatsCmd)
}

func runBaseStats(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	name, err := a.speciesName(args)
	if err != nil {
		return err
	}

	base, err := a.checker.BaseStats(name, a.gen)
	if err != nil {
		return err
	}

	a.printer.BaseStats(name, a.gen, base)
	return nil
}
