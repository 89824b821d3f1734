package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/geohash-tools/geohash-cli/internal/geohash"
)

// printResult writes the coordinate pair: bare numbers for --simple,
// otherwise an aligned block followed by map links.
func printResult(w io.Writer, res geohash.Result, simple bool) {
	if simple {
		fmt.Fprintf(w, "%s\n%s\n", fmtCoord(res.Lat), fmtCoord(res.Lon))
		return
	}

	// Positive values get a leading space so the columns line up with the
	// sign column of negative ones.
	fmt.Fprintf(w, "Latitude:  %s\n", padSign(fmtCoord(res.Lat)))
	fmt.Fprintf(w, "Longitude: %s\n", padSign(fmtCoord(res.Lon)))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Google Maps:")
	fmt.Fprintf(w, "\thttps://www.google.com/maps/search/?api=1&query=%s,%s\n", fmtCoord(res.Lat), fmtCoord(res.Lon))
	fmt.Fprintln(w, "OpenStreetMap:")
	fmt.Fprintf(w, "\thttps://www.openstreetmap.org/?mlat=%s&mlon=%s&zoom=10\n", fmtCoord(res.Lat), fmtCoord(res.Lon))
}

// fmtCoord renders a coordinate at 6-decimal (≈0.1m) precision, keeping
// the sign of negative zero.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func padSign(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return s
	}
	return " " + s
}
