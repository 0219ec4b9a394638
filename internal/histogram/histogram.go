// Package histogram computes fixed-bin histograms of weight and activation
// values for visualization.
package histogram

import (
	"errors"
	"fmt"
	"math"

	"op-converter/utils"
)

// DefaultBins is the bin count used when none is configured.
const DefaultBins = 5

// ErrBins is returned for bin counts below one.
var ErrBins = errors.New("bin count must be at least 1")

// Bin is one histogram bucket [Left, Left+Width).
type Bin struct {
	Left  float64
	Width float64
	Count float64
}

// Calc returns bins equal-width buckets over the range of the finite
// values. NaN and infinities are ignored. Without finite values, or when
// every finite value is equal, the range is widened by 0.5 on both sides,
// so an all-invalid input yields empty bins around zero. The last bucket
// includes its right edge.
func Calc(values []float64, bins int) ([]Bin, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBins, bins)
	}

	lo, hi, ok := bounds(values)
	if !ok {
		lo, hi = 0, 0
	}

	if lo >= hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + (hi-lo)*float64(i)/float64(bins)
	}

	edges[bins] = hi

	counts := make([]float64, bins)
	norm := float64(bins) / (hi - lo)

	for _, v := range values {
		if !utils.IsFinite(v) || !utils.IsInRange(lo, v, hi) {
			continue
		}

		i := int((v - lo) * norm)
		if i >= bins {
			i = bins - 1
		}

		// rounding in the division may land next to the true bucket
		if v < edges[i] {
			i--
		} else if i+1 < bins && v >= edges[i+1] {
			i++
		}

		counts[i]++
	}

	out := make([]Bin, bins)
	for i := range out {
		out[i] = Bin{Left: edges[i], Width: edges[i+1] - edges[i], Count: counts[i]}
	}

	return out, nil
}

// bounds returns the minimum and maximum finite value.
func bounds(values []float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)

	for _, v := range values {
		if !utils.IsFinite(v) {
			continue
		}

		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}

	return lo, hi, ok
}

// Triples returns the bins as [left, width, count] rows, the layout the
// visualization front end consumes.
func Triples(bins []Bin) [][3]float64 {
	out := make([][3]float64, len(bins))
	for i, b := range bins {
		out[i] = [3]float64{b.Left, b.Width, b.Count}
	}

	return out
}
