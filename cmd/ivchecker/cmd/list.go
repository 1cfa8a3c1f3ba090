package cmd

import (
	"github.com/lilellia/ivchecker/internal/display"
	"github.com/lilellia/ivchecker/internal/iv"
	"github.com/lilellia/ivchecker/internal/pokedex"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list pokemon|natures|characteristics|hidden-power",
	Short: "List the names ivchecker accepts",
	Long: `List the Pokémon, natures, characteristics or Hidden Power types that the
other commands accept. Natures are sorted as configured by
ui.neutral_nature_sort ("alphabetical" or "statwise").

The bundled Pokémon table is a sample of 89 species. Load a full table from
a directory of YAML files (data.dir) or a SQLite database (data.sqlite).

Examples:
  ivchecker list pokemon
  ivchecker list natures`,
	ValidArgs: []string{"pokemon", "natures", "characteristics", "hidden-power"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE:      runList,
}

var listWidth int

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listWidth, "width", "w", 80, "terminal width for column layout")
}

func runList(cmd *cobra.Command, args []string) error {
	if args[0] == "hidden-power" {
		types := iv.HiddenPowerTypes()
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = t.String()
		}
		display.New(cmd.OutOrStdout()).Columns(names, listWidth)
		return nil
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	switch args[0] {
	case "pokemon":
		a.printer.Columns(a.dex.SpeciesNames(), listWidth)
	case "natures":
		order, err := pokedex.ParseNatureOrder(a.cfg.UI.NeutralNatureSort)
		if err != nil {
			return err
		}
		a.printer.Natures(a.dex.Natures(order))
	case "characteristics":
		a.printer.Characteristics(a.dex.Characteristics())
	}
	return nil
}
