// Package cmd contains all CLI commands for the ivchecker tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lilellia/ivchecker/internal/config"
	"github.com/lilellia/ivchecker/internal/display"
	"github.com/lilellia/ivchecker/internal/iv"
	"github.com/lilellia/ivchecker/internal/pokedex"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ivchecker",
	Short: "Work out a Pokémon's IVs from its stats",
	Long: `ivchecker deduces the possible individual values (IVs) of a Pokémon from
its displayed stats, level and nature, and narrows them further with the
optional characteristic and Hidden Power type.

Examples:
  ivchecker check garchomp -l 20 -s 76,68,44,36,45,47 -n adamant
  ivchecker check garchomp -l 20 -s 76,68,44,36,45,47 -n adamant -c "somewhat vain"
  ivchecker ranges garchomp -l 50
  ivchecker list natures`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/ivchecker)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().IntP("gen", "g", 0, "game generation (default is the most recent configured)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("gen", rootCmd.PersistentFlags().Lookup("gen"))
}

// initConfig reads in ENV variables and settles the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	// IVCHECKER_DATA_SQLITE overrides data.sqlite, and so on.
	viper.SetEnvPrefix("IVCHECKER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// app bundles everything a command needs once the configuration is loaded.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	dex     *pokedex.Pokedex
	checker *iv.Checker
	printer *display.Printer
	gen     int
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads config.yaml and applies environment overrides.
func loadConfig(logger *slog.Logger) (*config.Config, error) {
	path := filepath.Join(getConfigDir(), config.FileName)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if v := viper.GetString("data.dir"); v != "" {
		cfg.Data.Dir = v
	}
	if v := viper.GetString("data.sqlite"); v != "" {
		cfg.Data.SQLite = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("loaded config", "path", path, "data_dir", cfg.Data.Dir, "data_sqlite", cfg.Data.SQLite)
	return cfg, nil
}

// setup loads the config and game tables and wires the checker.
func setup(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	opts := pokedex.Options{
		MostRecentGen:   cfg.Generations.MostRecent,
		MinSupportedGen: cfg.Generations.MinSupported,
		Suggestions:     cfg.UI.Suggestions,
		Logger:          logger,
	}

	var dex *pokedex.Pokedex
	switch {
	case cfg.Data.SQLite != "":
		dex, err = pokedex.LoadSQLite(ctx, cfg.Data.SQLite, opts)
	case cfg.Data.Dir != "":
		dex, err = pokedex.LoadDir(cfg.Data.Dir, opts)
	default:
		dex, err = pokedex.Load(opts)
	}
	if err != nil {
		return nil, fmt.Errorf("loading game data: %w", err)
	}

	gen := viper.GetInt("gen")
	if gen == 0 {
		gen = cfg.Generations.MostRecent
	}

	printer := display.New(cmd.OutOrStdout())
	printer.Verbose = viper.GetBool("verbose")

	return &app{
		cfg:     cfg,
		logger:  logger,
		dex:     dex,
		checker: iv.NewChecker(dex, logger),
		printer: printer,
		gen:     gen,
	}, nil
}

// speciesName joins the positional arguments so "ho oh" works unquoted,
// and returns the name as spelled in the tables.
func (a *app) speciesName(args []string) (string, error) {
	sp, err := a.dex.Species(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	return sp.Name, nil
}

// parseStats reads six comma or space separated integers in stat order.
func parseStats(flag, value string) (iv.Stats, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})

	values := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return iv.Stats{}, fmt.Errorf("--%s: %q is not a number", flag, f)
		}
		values[i] = n
	}

	stats, err := iv.StatsFromSlice(values)
	if err != nil {
		return stats, fmt.Errorf("--%s: %w", flag, err)
	}
	return stats, nil
}
