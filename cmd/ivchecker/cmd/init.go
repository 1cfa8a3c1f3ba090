package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lilellia/ivchecker/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ivchecker configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

The file controls:
  - generations  (most recent and oldest supported generation)
  - data         (load tables from a directory or SQLite database)
  - ui           (nature sort order, number of name suggestions)`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := filepath.Join(getConfigDir(), config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to change the generation bounds or data source")
	fmt.Fprintln(out, "  2. Run 'ivchecker list pokemon' to see the known Pokémon")
	fmt.Fprintln(out, "  3. Run 'ivchecker check <pokemon> -l <level> -s <stats> -n <nature>'")

	return nil
}
