package cmd

import (
	"fmt"

	"github.com/lilellia/ivchecker/internal/clipboard"
	"github.com/lilellia/ivchecker/internal/display"
	"github.com/lilellia/ivchecker/internal/iv"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <pokemon>",
	Short: "Work out the possible IVs of a Pokémon",
	Long: `Work out the possible IVs of a Pokémon from its displayed stats.

Stats and EVs are given in the order HP, Atk, Def, SpA, SpD, Spe. Each stat
prints the possible IVs as a single value, a range, or a range marked
(even)/(odd) when Hidden Power fixed the parity. ERROR means no IV fits the
inputs; --strict turns that into a failing exit code.

Examples:
  ivchecker check garchomp -l 20 -s 76,68,44,36,45,47 -n adamant
  ivchecker check garchomp -l 20 -s 76,68,44,36,45,47 -n adamant -c "somewhat vain" --hidden-power water
  ivchecker check ho oh -l 50 -s 181,150,110,130,174,110 -n hardy -e 0,0,0,0,0,0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var (
	checkLevel          int
	checkStats          string
	checkEVs            string
	checkNature         string
	checkCharacteristic string
	checkHiddenPower    string
	checkStrict         bool
	checkCopy           bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&checkLevel, "level", "l", 0, "level of the Pokémon")
	checkCmd.Flags().StringVarP(&checkStats, "stats", "s", "", "displayed stats: hp,atk,def,spa,spd,spe")
	checkCmd.Flags().StringVarP(&checkEVs, "evs", "e", "", "effort values: hp,atk,def,spa,spd,spe (default all 0)")
	checkCmd.Flags().StringVarP(&checkNature, "nature", "n", "", "nature, e.g. adamant")
	checkCmd.Flags().StringVarP(&checkCharacteristic, "characteristic", "c", "", `characteristic, e.g. "somewhat vain"`)
	checkCmd.Flags().StringVar(&checkHiddenPower, "hidden-power", "", "Hidden Power type, e.g. water")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "fail when no IV fits a stat")
	checkCmd.Flags().BoolVar(&checkCopy, "copy", false, "copy the result to the clipboard")

	checkCmd.MarkFlagRequired("level")
	checkCmd.MarkFlagRequired("stats")
	checkCmd.MarkFlagRequired("nature")
}

func runCheck(cmd *cobra.Command, args []string) error {
	stats, err := parseStats("stats", checkStats)
	if err != nil {
		return err
	}

	var evs iv.Stats
	if checkEVs != "" {
		if evs, err = parseStats("evs", checkEVs); err != nil {
			return err
		}
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	name, err := a.speciesName(args)
	if err != nil {
		return err
	}

	res, err := a.checker.Check(iv.CheckRequest{
		Species:        name,
		Generation:     a.gen,
		Level:          checkLevel,
		Stats:          stats,
		EVs:            evs,
		Nature:         checkNature,
		Characteristic: checkCharacteristic,
		HiddenPower:    checkHiddenPower,
		Strict:         checkStrict,
	})
	if res != nil {
		// strict failures still show what was narrowed so far
		a.printer.CheckResult(res)
	}
	if err != nil {
		return err
	}

	if checkCopy {
		if err := clipboard.Write(display.PlainIVs(res)); err != nil {
			a.logger.Warn("could not copy result", "error", err)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		}
	}

	return nil
}
