package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Manage the game data tables",
	Long: `Manage the species, nature and characteristic tables.

The bundled species table is a sample of 89 Pokémon. To check any other
species, set data.dir to a directory holding species.yaml, natures.yaml and
characteristics.yaml, or set data.sqlite to a database written by
"ivchecker data export" and extended with the missing rows.`,
}

var dataExportCmd = &cobra.Command{
	Use:   "export <file.db>",
	Short: "Write the loaded game data to a SQLite database",
	Long: `Write the species, nature and characteristic tables currently in use to a
new SQLite database. Point data.sqlite in config.yaml (or IVCHECKER_DATA_SQLITE)
at the file to load the tables from it afterwards.

Example:
  ivchecker data export ~/.config/ivchecker/pokedex.db`,
	Args: cobra.ExactArgs(1),
	RunE: runDataExport,
}

func init() {
	rootCmd.AddCommand(dataCmd)
	dataCmd.AddCommand(dataExportCmd)
}

func runDataExport(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	if err := a.dex.ExportSQLite(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("exporting game data: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d Pokémon to %s\n", len(a.dex.SpeciesNames()), args[0])
	return nil
}
