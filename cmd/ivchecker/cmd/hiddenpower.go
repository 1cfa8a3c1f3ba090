package cmd

import (
	"fmt"

	"github.com/lilellia/ivchecker/internal/display"
	"github.com/lilellia/ivchecker/internal/iv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var hiddenPowerCmd = &cobra.Command{
	Use:   "hidden-power",
	Short: "Show the Hidden Power of known IVs",
	Long: `Show the Hidden Power type and base power that a set of IVs produces.

Example:
  ivchecker hidden-power --ivs 31,30,30,31,31,31`,
	Args: cobra.NoArgs,
	RunE: runHiddenPower,
}

var hiddenPowerIVs string

func init() {
	rootCmd.AddCommand(hiddenPowerCmd)
	hiddenPowerCmd.Flags().StringVar(&hiddenPowerIVs, "ivs", "", "IVs: hp,atk,def,spa,spd,spe")
	hiddenPowerCmd.MarkFlagRequired("ivs")
}

func runHiddenPower(cmd *cobra.Command, args []string) error {
	ivs, err := parseStats("ivs", hiddenPowerIVs)
	if err != nil {
		return err
	}
	for _, s := range iv.AllStats {
		if ivs[s] < iv.MinIV || ivs[s] > iv.MaxIV {
			return fmt.Errorf("--ivs: %s IV %d is outside %d-%d", s, ivs[s], iv.MinIV, iv.MaxIV)
		}
	}

	p := display.New(cmd.OutOrStdout())
	p.HiddenPower(ivs)

	if gen := viper.GetInt("gen"); gen != 0 && (gen < iv.FirstHiddenPowerGen || gen > iv.LastHiddenPowerGen) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Note: Hidden Power does not exist in generation %d.\n", gen)
	}
	return nil
}
