package layout

import "github.com/planfab/interio/pkg/zone"

const eps = 1e-9

// DistributeWidths splits totalWidth among vertically divided siblings.
// widths[i] is the i-th child's width config; nil means proportional with
// ratio 1. The partition gaps ((n-1) x partitionThickness) are subtracted
// first, then fixed children consume their request (clamped to what is
// available) and the remainder is split among proportional children by
// ratio. A zero ratio total falls back to an even split.
//
// Results are fractional and parallel to the input. They are never
// negative: a negative remainder clamps to 0 before the proportional
// pass, so over-constrained inputs degrade to zero-width children rather
// than propagating negative sizes downstream.
func DistributeWidths(widths []*zone.WidthConfig, totalWidth, partitionThickness float64) []float64 {
	n := len(widths)
	if n == 0 {
		return nil
	}

	available := totalWidth - float64(n-1)*partitionThickness
	if available < 0 {
		available = 0
	}

	out := make([]float64, n)

	// Pass 1: fixed children consume their request.
	fixedTotal := 0.0
	for i, w := range widths {
		if w != nil && w.Mode == zone.WidthFixed {
			size := w.FixedMM
			if size > available {
				size = available
			}
			if size < 0 {
				size = 0
			}
			out[i] = size
			fixedTotal += size
		}
	}

	// Pass 2: split the remainder among proportional children.
	remaining := available - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	ratios := make([]float64, n)
	ratioTotal := 0.0
	flexCount := 0
	for i, w := range widths {
		if w != nil && w.Mode == zone.WidthFixed {
			continue
		}
		r := 1.0
		if w != nil && w.Ratio != 0 {
			r = w.Ratio
		}
		if r < 0 {
			r = 0
		}
		ratios[i] = r
		ratioTotal += r
		flexCount++
	}

	for i, w := range widths {
		if w != nil && w.Mode == zone.WidthFixed {
			continue
		}
		if ratioTotal > eps {
			out[i] = remaining * ratios[i] / ratioTotal
		} else if flexCount > 0 {
			out[i] = remaining / float64(flexCount)
		}
	}
	return out
}

// DistributeHeights splits totalHeight among horizontally stacked
// siblings. Identical two-pass shape to DistributeWidths with exact
// heights playing the fixed role and ratio heights the proportional one;
// there is no partition subtraction.
func DistributeHeights(heights []zone.HeightConfig, totalHeight float64) []float64 {
	n := len(heights)
	if n == 0 {
		return nil
	}

	available := totalHeight
	if available < 0 {
		available = 0
	}

	out := make([]float64, n)

	exactTotal := 0.0
	for i, h := range heights {
		if h.Mode == zone.HeightExact {
			size := h.ExactMM
			if size > available {
				size = available
			}
			if size < 0 {
				size = 0
			}
			out[i] = size
			exactTotal += size
		}
	}

	remaining := available - exactTotal
	if remaining < 0 {
		remaining = 0
	}

	ratioFor := func(h zone.HeightConfig) float64 {
		r := h.Ratio
		if r == 0 {
			r = 1
		}
		if r < 0 {
			r = 0
		}
		return r
	}

	ratioTotal := 0.0
	flexCount := 0
	for _, h := range heights {
		if h.Mode == zone.HeightExact {
			continue
		}
		ratioTotal += ratioFor(h)
		flexCount++
	}

	for i, h := range heights {
		if h.Mode == zone.HeightExact {
			continue
		}
		if ratioTotal > eps {
			out[i] = remaining * ratioFor(h) / ratioTotal
		} else if flexCount > 0 {
			out[i] = remaining / float64(flexCount)
		}
	}
	return out
}

// DistributeByRatio splits total proportionally to ratios, the one-pass
// distribution used inside drawer zones where only ratio sizing exists.
// Non-positive ratios count as 0; an all-zero ratio list splits evenly.
func DistributeByRatio(ratios []float64, total float64) []float64 {
	n := len(ratios)
	if n == 0 {
		return nil
	}
	if total < 0 {
		total = 0
	}

	sum := 0.0
	for _, r := range ratios {
		if r > 0 {
			sum += r
		}
	}

	out := make([]float64, n)
	for i, r := range ratios {
		if sum > eps {
			if r > 0 {
				out[i] = total * r / sum
			}
		} else {
			out[i] = total / float64(n)
		}
	}
	return out
}
