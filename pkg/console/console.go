// Package console orchestrates rendering: it turns any Renderable into
// finalized, width-exact lines and writes them, escape-encoded for the
// detected terminal capability, to an output sink.
package console

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/arthur-debert/glint/pkg/logging"
	"github.com/arthur-debert/glint/pkg/measure"
	"github.com/arthur-debert/glint/pkg/segment"
)

// Fallback dimensions when the sink is not a terminal and no explicit
// size was configured.
const (
	FallbackWidth  = 80
	FallbackHeight = 25
)

// Renderable is anything that can produce render items given Options.
// Returned items are either raw segments or nested renderables that the
// console expands recursively.
type Renderable interface {
	GlintRender(c *Console, opts Options) ([]Item, error)
}

// Measurable is optionally implemented by renderables that can report
// their width bounds without a full render.
type Measurable interface {
	GlintMeasure(c *Console, opts Options) (measure.Measurement, error)
}

// Item is one step of a renderable's output: a run of raw segments or a
// child renderable, optionally with adjusted options.
type Item struct {
	segments  []segment.Segment
	child     Renderable
	childOpts *Options
}

// Segments wraps raw segments as a render item.
func Segments(segs ...segment.Segment) Item {
	return Item{segments: segs}
}

// Child wraps a nested renderable as a render item. opts may be nil to
// inherit the parent's options unchanged.
func Child(r Renderable, opts *Options) Item {
	return Item{child: r, childOpts: opts}
}

// Console owns an output sink and its capability context. The render
// loop itself is synchronous and side-effect-free; a Console is safe to
// share between independent render calls.
type Console struct {
	out        io.Writer
	profile    termenv.Profile
	hasProfile bool
	width      int
	height     int
	log        zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithWidth fixes the console width instead of detecting it.
func WithWidth(width int) Option {
	return func(c *Console) { c.width = width }
}

// WithHeight fixes the console height instead of detecting it.
func WithHeight(height int) Option {
	return func(c *Console) { c.height = height }
}

// WithProfile fixes the color capability level instead of detecting it.
func WithProfile(p termenv.Profile) Option {
	return func(c *Console) { c.profile = p; c.hasProfile = true }
}

// New creates a Console writing to out. Width, height, and color
// capability are detected from the sink when it is a terminal, and fall
// back to 80x25 plain text otherwise.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		out: out,
		log: logging.GetLogger("console"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if !c.hasProfile {
		c.profile = detectProfile(out)
	}
	if c.width == 0 || c.height == 0 {
		w, h := detectSize(out)
		if c.width == 0 {
			c.width = w
		}
		if c.height == 0 {
			c.height = h
		}
	}
	c.log.Debug().
		Int("width", c.width).
		Int("height", c.height).
		Str("profile", profileName(c.profile)).
		Msg("console created")
	return c
}

func detectProfile(out io.Writer) termenv.Profile {
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return termenv.Ascii
	}
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func detectSize(out io.Writer) (int, int) {
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w, h
		}
	}
	return FallbackWidth, FallbackHeight
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	}
	return "ascii"
}

// Size returns the console dimensions in cells.
func (c *Console) Size() (width, height int) {
	return c.width, c.height
}

// Width returns the console width in cells.
func (c *Console) Width() int {
	return c.width
}

// Profile returns the detected color capability level.
func (c *Console) Profile() termenv.Profile {
	return c.profile
}

// Options returns the default render options at the console width.
func (c *Console) Options() Options {
	return Options{MaxWidth: c.width}
}

// EncodeLine renders a finalized line into an escape-coded string, with
// colors downgraded to the console's capability level.
func (c *Console) EncodeLine(line segment.Line) string {
	var b strings.Builder
	for _, s := range line.Segments {
		switch {
		case s.IsControl():
			b.WriteString(s.Text)
		case s.Style != nil:
			b.WriteString(s.Style.Apply(c.profile, s.Text))
		default:
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

// WriteLines encodes lines and writes them to the sink, one terminal row
// per line.
func (c *Console) WriteLines(lines []segment.Line) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(c.EncodeLine(line))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(c.out, b.String())
	return err
}

// WriteControl writes a raw control sequence (cursor movement, erase)
// straight to the sink, bypassing encoding.
func (c *Console) WriteControl(seq string) error {
	_, err := io.WriteString(c.out, seq)
	return err
}

// Print renders r at the console width and writes the result.
func (c *Console) Print(r Renderable) error {
	lines, err := c.RenderLines(r, c.Options())
	if err != nil {
		return err
	}
	return c.WriteLines(lines)
}
