package main

import (
	"github.com/spf13/cobra"

	"github.com/geohash-tools/geohash-cli/internal/geohash"
)

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Globalhash for a date",
	Long: `Compute the globalhash: a single whole-globe coordinate per day,
independent of any graticule. The 30W rule does not apply.`,
	Args: cobra.NoArgs,
	RunE: runGlobal,
}

func init() {
	f := globalCmd.Flags()
	f.String("date", "", "geohash date in YYYY-MM-DD form (default: today)")
	f.String("djia", "", "Dow Jones opening value with two decimal places (default: fetched)")
	f.Bool("simple", false, "print only lat and lon, newline separated")
	rootCmd.AddCommand(globalCmd)
}

func runGlobal(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	target, err := flagDate(cmd)
	if err != nil {
		return err
	}
	effective, err := selector().SelectGlobal(target)
	if err != nil {
		return err
	}
	value, err := resolveDJIA(ctx, cmd, effective)
	if err != nil {
		return err
	}

	res := geohash.HashGlobal(geohash.ExtractFractions(geohash.Digest(effective, value)))

	simple, _ := cmd.Flags().GetBool("simple")
	printResult(cmd.OutOrStdout(), res, simple)
	return nil
}
