// Package progress provides task progress renderables: a determinate
// Bar, an animated Spinner, and a Tracker that lays out one line per
// tracked task. A Tracker is safe to mutate from worker goroutines
// while a live session redraws it.
package progress

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/glint/pkg/cells"
	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/live"
	"github.com/arthur-debert/glint/pkg/measure"
	"github.com/arthur-debert/glint/pkg/segment"
	"github.com/arthur-debert/glint/pkg/style"
)

const (
	barComplete  = "━"
	barRemaining = "─"
	minBarWidth  = 4
)

// Bar renders a single-line progress bar filled in proportion to
// Completed/Total.
type Bar struct {
	Completed float64
	Total     float64
	// Width fixes the bar width; 0 fills the available width.
	Width          int
	CompleteStyle  style.Style
	RemainingStyle style.Style
}

// NewBar returns a bar with the default magenta-on-dim styling.
func NewBar(completed, total float64) *Bar {
	return &Bar{
		Completed:      completed,
		Total:          total,
		CompleteStyle:  style.MustParse("magenta"),
		RemainingStyle: style.MustParse("dim"),
	}
}

// Ratio returns the completion fraction clamped to [0, 1].
func (b *Bar) Ratio() float64 {
	if b.Total <= 0 {
		return 0
	}
	r := b.Completed / b.Total
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func (b *Bar) GlintRender(_ *console.Console, opts console.Options) ([]console.Item, error) {
	width := b.Width
	if width <= 0 {
		width = opts.MaxWidth
	}
	if width < minBarWidth {
		width = minBarWidth
	}

	filled := int(b.Ratio() * float64(width))
	if filled > width {
		filled = width
	}

	var segs []segment.Segment
	if filled > 0 {
		segs = append(segs, segment.Styled(repeat(barComplete, filled), b.CompleteStyle))
	}
	if filled < width {
		segs = append(segs, segment.Styled(repeat(barRemaining, width-filled), b.RemainingStyle))
	}
	return []console.Item{console.Segments(segs...)}, nil
}

func (b *Bar) GlintMeasure(_ *console.Console, opts console.Options) (measure.Measurement, error) {
	if b.Width > 0 {
		return measure.New(b.Width, b.Width), nil
	}
	return measure.New(minBarWidth, opts.MaxWidth), nil
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// Spinner is an animated activity indicator for work without a known
// total. The frame advances with wall-clock time so every redraw picks
// the current frame without external bookkeeping.
type Spinner struct {
	Message  string
	Style    style.Style
	frames   []string
	interval time.Duration
	started  time.Time
}

// NewSpinner returns a braille-dot spinner with an 80ms frame step.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		Message:  message,
		Style:    style.MustParse("cyan"),
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 80 * time.Millisecond,
		started:  time.Now(),
	}
}

// Frame returns the spinner glyph for the given elapsed time.
func (s *Spinner) Frame(elapsed time.Duration) string {
	i := int(elapsed/s.interval) % len(s.frames)
	if i < 0 {
		i = 0
	}
	return s.frames[i]
}

func (s *Spinner) GlintRender(_ *console.Console, _ console.Options) ([]console.Item, error) {
	segs := []segment.Segment{
		segment.Styled(s.Frame(time.Since(s.started)), s.Style),
	}
	if s.Message != "" {
		segs = append(segs, segment.New(" "+s.Message))
	}
	return []console.Item{console.Segments(segs...)}, nil
}

func (s *Spinner) GlintMeasure(_ *console.Console, _ console.Options) (measure.Measurement, error) {
	w := 1
	if s.Message != "" {
		w += 1 + cells.Width(s.Message)
	}
	return measure.New(w, w), nil
}

// Task is one unit of tracked work. Total <= 0 marks the task
// indeterminate; it shows a spinner instead of a bar until a total is
// set.
type Task struct {
	Description string
	Total       float64
	Completed   float64
	finished    bool
}

// Done reports whether the task finished.
func (t *Task) Done() bool {
	return t.finished
}

// Tracker renders one progress line per task: description, bar or
// spinner, and a percentage. All mutators are goroutine-safe.
type Tracker struct {
	mu       sync.Mutex
	tasks    []*Task
	barWidth int
	spinner  *Spinner
}

// NewTracker returns an empty tracker with 20-cell bars.
func NewTracker() *Tracker {
	return &Tracker{
		barWidth: 20,
		spinner:  NewSpinner(""),
	}
}

// Add registers a task and returns its handle.
func (tr *Tracker) Add(description string, total float64) *Task {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	t := &Task{Description: description, Total: total}
	tr.tasks = append(tr.tasks, t)
	return t
}

// Advance increments a task's completed amount, marking it finished
// when the total is reached.
func (tr *Tracker) Advance(t *Task, amount float64) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	t.Completed += amount
	if t.Total > 0 && t.Completed >= t.Total {
		t.Completed = t.Total
		t.finished = true
	}
}

// SetTotal replaces a task's total, turning an indeterminate task into
// a determinate one.
func (tr *Tracker) SetTotal(t *Task, total float64) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	t.Total = total
}

// Finish marks a task complete regardless of its counters.
func (tr *Tracker) Finish(t *Task) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	if t.Total > 0 {
		t.Completed = t.Total
	}
	t.finished = true
}

// Finished reports whether every task is done.
func (tr *Tracker) Finished() bool {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	for _, t := range tr.tasks {
		if !t.finished {
			return false
		}
	}
	return len(tr.tasks) > 0
}

// GlintRender emits one line per task. The snapshot is taken under the
// lock; rendering happens on the copies.
func (tr *Tracker) GlintRender(_ *console.Console, _ console.Options) ([]console.Item, error) {
	tr.mu.Lock()
	snapshot := make([]Task, len(tr.tasks))
	for i, t := range tr.tasks {
		snapshot[i] = *t
	}
	tr.mu.Unlock()

	// Descriptions align by display cells, not bytes, so wide-character
	// descriptions keep their bars in column.
	descWidth := 0
	for _, t := range snapshot {
		if w := cells.Width(t.Description); w > descWidth {
			descWidth = w
		}
	}

	var items []console.Item
	for i := range snapshot {
		t := &snapshot[i]
		pad := descWidth - cells.Width(t.Description)
		segs := []segment.Segment{
			segment.New(t.Description + strings.Repeat(" ", pad+1)),
		}
		segs = append(segs, tr.indicator(t)...)
		segs = append(segs, segment.NewLine)
		items = append(items, console.Segments(segs...))
	}
	return items, nil
}

func (tr *Tracker) indicator(t *Task) []segment.Segment {
	if t.Total <= 0 && !t.finished {
		return []segment.Segment{
			segment.Styled(tr.spinner.Frame(time.Since(tr.spinner.started)), tr.spinner.Style),
		}
	}
	bar := NewBar(t.Completed, t.Total)
	bar.Width = tr.barWidth

	filled := int(bar.Ratio() * float64(tr.barWidth))
	segs := make([]segment.Segment, 0, 3)
	if filled > 0 {
		segs = append(segs, segment.Styled(repeat(barComplete, filled), bar.CompleteStyle))
	}
	if filled < tr.barWidth {
		segs = append(segs, segment.Styled(repeat(barRemaining, tr.barWidth-filled), bar.RemainingStyle))
	}
	segs = append(segs, segment.New(fmt.Sprintf(" %3.0f%%", bar.Ratio()*100)))
	return segs
}

func (tr *Tracker) GlintMeasure(_ *console.Console, opts console.Options) (measure.Measurement, error) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	descWidth := 0
	for _, t := range tr.tasks {
		if w := cells.Width(t.Description); w > descWidth {
			descWidth = w
		}
	}
	w := descWidth + 1 + tr.barWidth + 5
	if w > opts.MaxWidth {
		w = opts.MaxWidth
	}
	return measure.New(w, w), nil
}

// Run drives fn inside a live session showing the tracker, guaranteeing
// the final frame is drawn when fn returns.
func (tr *Tracker) Run(c *console.Console, fn func(*Tracker) error, opts ...live.Option) error {
	return live.Run(c, tr, func(*live.Session) error {
		return fn(tr)
	}, opts...)
}
