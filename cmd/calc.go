package main

import (
	"github.com/spf13/cobra"

	"github.com/geohash-tools/geohash-cli/internal/geohash"
)

var calcCmd = &cobra.Command{
	Use:   "calc <latitude> <longitude>",
	Short: "Geohash for a graticule",
	Long: `Compute the geohash for the graticule containing the given position.

The integer parts of the arguments name the graticule; pass "-0" for the
zero graticules south of the equator or west of the prime meridian. With
--centicule the full coordinates anchor a 0.01°-resolution hash instead.

Flags come first; "--" keeps negative coordinates out of flag parsing.

Examples:
  # Today's geohash for the San Francisco graticule
  calc -- 37 -122

  # The founding example from the comic
  calc --date 2005-05-26 --djia 10458.68 -- 37 -122

  # Force the east side of the 30W rule
  calc --30w e -- 68 -30

  # Centicule hash around a precise spot
  calc --centicule -- 37.85 -122.54`,
	Args: cobra.ExactArgs(2),
	RunE: runCalc,
}

func init() {
	f := calcCmd.Flags()
	f.String("date", "", "geohash date in YYYY-MM-DD form (default: today)")
	f.String("djia", "", "Dow Jones opening value with two decimal places (default: fetched)")
	f.String("30w", "", "force 30W side: e[ast] or w[est]")
	f.Bool("centicule", false, "compute the centicule hash instead")
	f.Bool("simple", false, "print only lat and lon, newline separated")
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	loc, err := parseLocation(args[0], args[1])
	if err != nil {
		return err
	}
	target, err := flagDate(cmd)
	if err != nil {
		return err
	}
	side, err := flagSide(cmd)
	if err != nil {
		return err
	}

	effective, err := selector().Select(target, loc.graticule, side)
	if err != nil {
		return err
	}
	value, err := resolveDJIA(ctx, cmd, effective)
	if err != nil {
		return err
	}
	fr := geohash.ExtractFractions(geohash.Digest(effective, value))

	centicule, _ := cmd.Flags().GetBool("centicule")
	var res geohash.Result
	if centicule {
		res, err = geohash.HashCenticule(loc.lat, loc.lon, fr)
		if err != nil {
			return err
		}
	} else {
		res = geohash.Hash(loc.graticule, fr)
	}

	simple, _ := cmd.Flags().GetBool("simple")
	printResult(cmd.OutOrStdout(), res, simple)
	return nil
}
