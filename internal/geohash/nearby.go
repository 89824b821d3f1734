package geohash

import (
	"iter"

	"golang.org/x/sync/errgroup"
)

// Point pairs a scanned graticule with its geohash.
type Point struct {
	Graticule Graticule
	Result    Result
}

// Span is an inclusive offset range.
type Span struct {
	Start int
	Stop  int
}

// Scanner repeats the graticule hash over a rectangular block of
// neighboring cells. Shifting a cell can move it across the -30° meridian,
// so the effective DJIA date is re-resolved per cell rather than reused
// from the base cell. Fractions is the caller's lookup from effective date
// to digest fractions, typically backed by its DJIA provider.
type Scanner struct {
	Selector  Selector
	Target    Date
	Side      Side
	Fractions func(effective Date) (Fractions, error)
}

// Scan yields one point per cell in row-major order (latitude outer,
// longitude inner), both spans inclusive. The sequence is finite, can be
// iterated multiple times, and stops at the first error.
func (s *Scanner) Scan(base Graticule, latSpan, lonSpan Span) iter.Seq2[Point, error] {
	return func(yield func(Point, error) bool) {
		for dLat := latSpan.Start; dLat <= latSpan.Stop; dLat++ {
			for dLon := lonSpan.Start; dLon <= lonSpan.Stop; dLon++ {
				p, err := s.cell(base, dLat, dLon)
				if !yield(p, err) || err != nil {
					return
				}
			}
		}
	}
}

// ScanAll evaluates the block eagerly, fanning cells out across parallel
// workers while keeping row-major output order.
func (s *Scanner) ScanAll(base Graticule, latSpan, lonSpan Span, concurrency int) ([]Point, error) {
	rows := latSpan.Stop - latSpan.Start + 1
	cols := lonSpan.Stop - lonSpan.Start + 1
	if rows <= 0 || cols <= 0 {
		return nil, nil
	}
	if concurrency <= 0 {
		concurrency = 4
	}

	points := make([]Point, rows*cols)
	var eg errgroup.Group
	eg.SetLimit(concurrency)

	for i := range points {
		dLat := latSpan.Start + i/cols
		dLon := lonSpan.Start + i%cols
		eg.Go(func() error {
			p, err := s.cell(base, dLat, dLon)
			if err != nil {
				return err
			}
			points[i] = p
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *Scanner) cell(base Graticule, dLat, dLon int) (Point, error) {
	g, err := base.Offset(dLat, dLon)
	if err != nil {
		return Point{}, err
	}
	effective, err := s.Selector.Select(s.Target, g, s.Side)
	if err != nil {
		return Point{}, err
	}
	fr, err := s.Fractions(effective)
	if err != nil {
		return Point{}, err
	}
	return Point{Graticule: g, Result: Hash(g, fr)}, nil
}
