package main

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geohash-tools/geohash-cli/internal/geohash"
	"github.com/geohash-tools/geohash-cli/pkg/djia"
)

// parsedLocation is a position argument pair: the full coordinates for
// centicule mode plus the graticule they fall in.
type parsedLocation struct {
	lat, lon  float64
	graticule geohash.Graticule
}

// parseLocation parses the lat/lon arguments. The strings go through
// strconv so "-0" keeps its sign bit and the zero graticules stay
// south/west of the axes.
func parseLocation(latArg, lonArg string) (parsedLocation, error) {
	lat, err := strconv.ParseFloat(latArg, 64)
	if err != nil {
		return parsedLocation{}, eris.Errorf("latitude %q is not a number", latArg)
	}
	lon, err := strconv.ParseFloat(lonArg, 64)
	if err != nil {
		return parsedLocation{}, eris.Errorf("longitude %q is not a number", lonArg)
	}

	g, err := geohash.NewSignedGraticule(
		int(math.Trunc(math.Abs(lat))),
		int(math.Trunc(math.Abs(lon))),
		math.Signbit(lat),
		math.Signbit(lon),
	)
	if err != nil {
		return parsedLocation{}, err
	}
	return parsedLocation{lat: lat, lon: lon, graticule: g}, nil
}

// flagDate resolves --date, defaulting to today. "Today" is read once here
// and passed down; the core never consults the clock.
func flagDate(cmd *cobra.Command) (geohash.Date, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		return geohash.DateOf(time.Now()), nil
	}
	return geohash.ParseDate(s)
}

// flagSide resolves the --30w override.
func flagSide(cmd *cobra.Command) (geohash.Side, error) {
	s, _ := cmd.Flags().GetString("30w")
	switch s {
	case "":
		return geohash.SideAuto, nil
	case "e", "east":
		return geohash.SideEast, nil
	case "w", "west":
		return geohash.SideWest, nil
	}
	return geohash.SideAuto, eris.Errorf("--30w must be e, east, w, or west (got %q)", s)
}

// selector builds the DJIA date selector from config.
func selector() geohash.Selector {
	return geohash.Selector{BoundaryExclusive: cfg.ThirtyW.BoundaryExclusive}
}

// djiaClient builds the opening-value client from config.
func djiaClient() *djia.Client {
	return djia.NewClient(
		djia.WithSources(cfg.DJIA.Sources),
		djia.WithTimeout(time.Duration(cfg.DJIA.TimeoutSecs)*time.Second),
		djia.WithMaxRetries(cfg.DJIA.MaxRetries),
		djia.WithRateLimit(cfg.DJIA.RatePerSec, 4),
		djia.WithUserAgent(cfg.DJIA.UserAgent),
	)
}

// resolveDJIA returns the opening value for the effective date, preferring
// an explicit --djia flag over the network sources.
func resolveDJIA(ctx context.Context, cmd *cobra.Command, effective geohash.Date) (geohash.Value, error) {
	if s, _ := cmd.Flags().GetString("djia"); s != "" {
		return geohash.ParseValue(s)
	}

	zap.L().Debug("fetching DJIA opening", zap.String("date", effective.String()))
	val, err := djiaClient().Opening(ctx, effective)
	if err != nil {
		if errors.Is(err, djia.ErrNoData) {
			return geohash.Value{}, eris.Wrapf(err,
				"no Dow Jones value available for %s; pass one with --djia", effective)
		}
		return geohash.Value{}, err
	}
	return val, nil
}
