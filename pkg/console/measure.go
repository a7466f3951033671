package console

import (
	"strings"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/arthur-debert/glint/pkg/measure"
)

// Measure reports the width bounds of r without materializing finalized
// lines. Renderables implementing Measurable answer directly (a failure
// there is a MEASUREMENT error aborting the call); everything else gets
// the default rule: minimum is the width of the longest unbreakable word
// across the content, maximum is the widest logical line as if rendered
// unwrapped.
func (c *Console) Measure(r Renderable, opts Options) (measure.Measurement, error) {
	if m, ok := r.(Measurable); ok {
		mm, err := m.GlintMeasure(c, opts)
		if err != nil {
			return measure.Measurement{}, errors.Wrap(err, errors.ErrMeasurement, "renderable measurement failed")
		}
		return mm, nil
	}

	segments := c.collect(r, opts)
	var minimum, maximum int
	lineWidth := 0
	wordWidth := 0

	endWord := func() {
		if wordWidth > minimum {
			minimum = wordWidth
		}
		wordWidth = 0
	}
	endLine := func() {
		endWord()
		if lineWidth > maximum {
			maximum = lineWidth
		}
		lineWidth = 0
	}

	for _, s := range segments {
		if s.IsControl() {
			continue
		}
		if s.IsNewLine() {
			endLine()
			continue
		}
		lineWidth += s.Width()
		text := s.Text
		for text != "" {
			idx := strings.IndexByte(text, ' ')
			if idx < 0 {
				wordWidth += cells.Width(text)
				break
			}
			wordWidth += cells.Width(text[:idx])
			endWord()
			text = strings.TrimLeft(text[idx:], " ")
		}
	}
	endLine()
	return measure.New(minimum, maximum), nil
}

// MeasureAll folds the measurements of vertically stacked renderables.
func (c *Console) MeasureAll(opts Options, renderables ...Renderable) (measure.Measurement, error) {
	var out measure.Measurement
	for _, r := range renderables {
		m, err := c.Measure(r, opts)
		if err != nil {
			return measure.Measurement{}, err
		}
		out = measure.Max(out, m)
	}
	return out, nil
}
