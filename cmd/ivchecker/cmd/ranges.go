package cmd

import (
	"github.com/spf13/cobra"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges <pokemon>",
	Short: "Show the lowest and highest stats of a Pokémon at a level",
	Long: `Show the lowest and highest possible value of every stat of a Pokémon at
a level. The minimum assumes 0 IVs, 0 EVs and a lowering nature; the maxima
assume 31 IVs and a raising nature, without EVs and with 252 EVs.

Example:
  ivchecker ranges garchomp -l 50`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRanges,
}

var rangesLevel int

func init() {
	rootCmd.AddCommand(rangesCmd)
	rangesCmd.Flags().IntVarP(&rangesLevel, "level", "l", 0, "level of the Pokémon")
	rangesCmd.MarkFlagRequired("level")
}

func runRanges(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	name, err := a.speciesName(args)
	if err != nil {
		return err
	}

	res, err := a.checker.Ranges(name, a.gen, rangesLevel)
	if err != nil {
		return err
	}

	a.printer.Ranges(res)
	return nil
}
