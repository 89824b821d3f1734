package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/geohash-tools/geohash-cli/internal/geohash"
)

var nearbyCmd = &cobra.Command{
	Use:   "nearby <latitude> <longitude>",
	Short: "Geohashes for a block of neighboring graticules",
	Long: `Compute the geohash for every graticule in a rectangular block around
the given position. Cells on the far side of the -30° meridian resolve
their own DJIA date, so a scan crossing it fetches two opening values.

Examples:
  # 3x3 block around the San Francisco graticule
  nearby -- 37 -122

  # Two rows north, same column
  nearby --lat-span 0:2 --lon-span 0:0 -- 37 -122`,
	Args: cobra.ExactArgs(2),
	RunE: runNearby,
}

func init() {
	f := nearbyCmd.Flags()
	f.String("date", "", "geohash date in YYYY-MM-DD form (default: today)")
	f.String("djia", "", "Dow Jones opening value used for every cell (default: fetched per cell)")
	f.String("30w", "", "force 30W side: e[ast] or w[est]")
	f.String("lat-span", "-1:1", "inclusive latitude offset range, start:stop")
	f.String("lon-span", "-1:1", "inclusive longitude offset range, start:stop")
	f.Bool("simple", false, "print only lat and lon pairs, newline separated")
	rootCmd.AddCommand(nearbyCmd)
}

func runNearby(cmd *cobra.Command, args []string) error {
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
	latSpan, err := flagSpan(cmd, "lat-span")
	if err != nil {
		return err
	}
	lonSpan, err := flagSpan(cmd, "lon-span")
	if err != nil {
		return err
	}

	scanner := &geohash.Scanner{
		Selector:  selector(),
		Target:    target,
		Side:      side,
		Fractions: cachedFractions(cmd),
	}

	points, err := scanner.ScanAll(loc.graticule, latSpan, lonSpan, cfg.Scan.Concurrency)
	if err != nil {
		return err
	}

	simple, _ := cmd.Flags().GetBool("simple")
	out := cmd.OutOrStdout()
	for _, p := range points {
		if simple {
			printResult(out, p.Result, true)
			continue
		}
		fmt.Fprintf(out, "%-12s %s, %s\n", p.Graticule, fmtCoord(p.Result.Lat), fmtCoord(p.Result.Lon))
	}
	return nil
}

// cachedFractions resolves digest fractions per effective date, fetching
// each date's opening value at most once. A scan crossing the -30° meridian
// needs exactly two dates; the cache keeps the second row from refetching.
func cachedFractions(cmd *cobra.Command) func(geohash.Date) (geohash.Fractions, error) {
	var mu sync.Mutex
	cache := make(map[geohash.Date]geohash.Fractions)
	ctx := cmd.Context()

	return func(effective geohash.Date) (geohash.Fractions, error) {
		mu.Lock()
		defer mu.Unlock()

		if fr, ok := cache[effective]; ok {
			return fr, nil
		}
		value, err := resolveDJIA(ctx, cmd, effective)
		if err != nil {
			return geohash.Fractions{}, err
		}
		fr := geohash.ExtractFractions(geohash.Digest(effective, value))
		cache[effective] = fr
		return fr, nil
	}
}

// flagSpan parses an inclusive "start:stop" offset range.
func flagSpan(cmd *cobra.Command, name string) (geohash.Span, error) {
	s, _ := cmd.Flags().GetString(name)
	return parseSpan(name, s)
}

func parseSpan(name, s string) (geohash.Span, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return geohash.Span{}, eris.Errorf("--%s must be start:stop (got %q)", name, s)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return geohash.Span{}, eris.Errorf("--%s start %q is not an integer", name, parts[0])
	}
	stop, err := strconv.Atoi(parts[1])
	if err != nil {
		return geohash.Span{}, eris.Errorf("--%s stop %q is not an integer", name, parts[1])
	}
	if stop < start {
		return geohash.Span{}, eris.Errorf("--%s stop %d is before start %d", name, stop, start)
	}
	return geohash.Span{Start: start, Stop: stop}, nil
}
