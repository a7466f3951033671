// Package measure defines the width measurement a renderable can report
// before a full render: the minimum width at which its content stays
// readable and the maximum width at which no wrapping would occur.
package measure

// Measurement is a (minimum, maximum) content width pair in cells.
type Measurement struct {
	Minimum int
	Maximum int
}

// New clamps minimum to maximum and returns the pair.
func New(minimum, maximum int) Measurement {
	if minimum > maximum {
		minimum = maximum
	}
	return Measurement{Minimum: minimum, Maximum: maximum}
}

// Span returns the measurement clamped into [low, high].
func (m Measurement) Span(low, high int) Measurement {
	return New(clamp(m.Minimum, low, high), clamp(m.Maximum, low, high))
}

// Grow adds fixed overhead (borders, padding, separators) to both bounds.
func (m Measurement) Grow(overhead int) Measurement {
	return Measurement{Minimum: m.Minimum + overhead, Maximum: m.Maximum + overhead}
}

// Max folds measurements by taking the widest bounds, the rule for
// vertically stacked children.
func Max(measurements ...Measurement) Measurement {
	var out Measurement
	for _, m := range measurements {
		if m.Minimum > out.Minimum {
			out.Minimum = m.Minimum
		}
		if m.Maximum > out.Maximum {
			out.Maximum = m.Maximum
		}
	}
	return out
}

// Sum folds measurements by adding bounds, the rule for side-by-side
// columns.
func Sum(measurements ...Measurement) Measurement {
	var out Measurement
	for _, m := range measurements {
		out.Minimum += m.Minimum
		out.Maximum += m.Maximum
	}
	return out
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
