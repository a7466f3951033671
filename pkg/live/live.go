// Package live manages a terminal region that is repeatedly redrawn in
// place. A background refresh loop re-renders the current renderable at
// a fixed interval, erases the previously drawn rows with cursor
// controls, and draws the new ones.
//
// The (renderable, last line count) pair is the session's only shared
// state; it is read and replaced atomically under one lock, so the
// refresh loop never observes a new renderable paired with a stale line
// count. Sink writes are serialized on a second lock that Update never
// takes, so a slow terminal write cannot stall updaters.
package live

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/glint/pkg/console"
	"github.com/arthur-debert/glint/pkg/errors"
	"github.com/arthur-debert/glint/pkg/logging"
	"github.com/arthur-debert/glint/pkg/segment"
)

// State is the session lifecycle state.
type State uint8

const (
	Stopped State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "stopped"
}

// DefaultInterval is the refresh period when none is configured.
const DefaultInterval = 100 * time.Millisecond

const eraseLine = "\x1b[2K"
const cursorUp = "\x1b[1A"

// Session drives one live region.
type Session struct {
	console     *console.Console
	log         zerolog.Logger
	interval    time.Duration
	autoRefresh bool

	// mu guards the mutable pair plus lifecycle state.
	mu         sync.Mutex
	state      State
	renderable console.Renderable
	lastCount  int
	done       chan struct{}

	// writeMu serializes sink writes; Update never takes it.
	writeMu sync.Mutex
}

// Option configures a Session.
type Option func(*Session)

// WithInterval sets the refresh period.
func WithInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithAutoRefresh disables the timed redraw when false; the region then
// only redraws on Update and on Stop's final draw.
func WithAutoRefresh(on bool) Option {
	return func(s *Session) { s.autoRefresh = on }
}

// New creates a stopped session that will draw r when started.
func New(c *console.Console, r console.Renderable, opts ...Option) *Session {
	s := &Session{
		console:     c,
		log:         logging.GetLogger("live"),
		interval:    DefaultInterval,
		autoRefresh: true,
		renderable:  r,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start transitions stopped -> running and launches the refresh loop.
// The first draw happens on the first refresh (or Update), so a
// renderable replaced immediately after Start never reaches the screen.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.state != Stopped {
		s.mu.Unlock()
		return errors.Newf(errors.ErrLiveSession, "start while %s", s.state)
	}
	s.state = Running
	s.lastCount = 0
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	s.log.Debug().Dur("interval", s.interval).Msg("live session started")
	go s.loop(done)
	return nil
}

func (s *Session) loop(done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if s.autoRefresh {
				s.draw()
			}
		}
	}
}

// Update replaces the current renderable. It is safe to call from any
// goroutine while the session is running or paused; while paused the
// replacement is stored but not drawn until resume. Calling Update on a
// stopped session is a LIVE_SESSION error.
func (s *Session) Update(r console.Renderable) error {
	s.mu.Lock()
	if s.state == Stopped {
		s.mu.Unlock()
		return errors.New(errors.ErrLiveSession, "update on stopped session")
	}
	s.renderable = r
	paused := s.state == Paused
	s.mu.Unlock()

	if !paused {
		s.draw()
	}
	return nil
}

// Refresh forces an immediate redraw.
func (s *Session) Refresh() {
	s.draw()
}

// Pause suspends redrawing; Update may still replace the renderable.
func (s *Session) Pause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Running {
		return errors.Newf(errors.ErrLiveSession, "pause while %s", s.state)
	}
	s.state = Paused
	return nil
}

// Resume re-enables redrawing and draws the current renderable.
func (s *Session) Resume() error {
	s.mu.Lock()
	if s.state != Paused {
		state := s.state
		s.mu.Unlock()
		return errors.Newf(errors.ErrLiveSession, "resume while %s", state)
	}
	s.state = Running
	s.mu.Unlock()

	s.draw()
	return nil
}

// Stop transitions to stopped, performs the final draw, and releases
// the region. It is idempotent, safe to call from within a refresh
// callback, and guarantees that no redraw happens after it returns.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state == Stopped {
		s.mu.Unlock()
		return nil
	}
	s.state = Stopped
	done := s.done
	s.mu.Unlock()
	close(done)

	err := s.finalDraw()
	s.log.Debug().Msg("live session stopped")
	return err
}

// Close stops the session; it exists for defer so the final draw is
// guaranteed even when the surrounding scope exits with an error.
func (s *Session) Close() error {
	return s.Stop()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// draw re-renders the current renderable and redraws the region. The
// render happens outside all locks; the (renderable, lastCount) pair is
// re-read and replaced atomically just before writing.
func (s *Session) draw() {
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	r := s.renderable
	s.mu.Unlock()

	lines, err := s.console.Render(r, 0)
	if err != nil {
		s.log.Warn().Err(err).Msg("live render failed")
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	if s.state != Running {
		s.mu.Unlock()
		return
	}
	previous := s.lastCount
	s.lastCount = len(lines)
	s.mu.Unlock()

	s.redraw(previous, lines)
}

// finalDraw renders and writes one last frame after the state is
// already stopped.
func (s *Session) finalDraw() error {
	s.mu.Lock()
	r := s.renderable
	s.mu.Unlock()

	lines, err := s.console.Render(r, 0)
	if err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	previous := s.lastCount
	s.lastCount = len(lines)
	s.mu.Unlock()

	s.redraw(previous, lines)
	return nil
}

// redraw erases the previously drawn rows and writes the new ones.
// Caller holds writeMu.
func (s *Session) redraw(previous int, lines []segment.Line) {
	if previous > 0 {
		var b strings.Builder
		for i := 0; i < previous; i++ {
			b.WriteString(cursorUp)
			b.WriteString(eraseLine)
		}
		b.WriteString("\r")
		if err := s.console.WriteControl(b.String()); err != nil {
			s.log.Warn().Err(err).Msg("erase failed")
		}
	}
	if err := s.console.WriteLines(lines); err != nil {
		s.log.Warn().Err(err).Msg("draw failed")
	}
}

// Run starts a session around fn and guarantees the final draw and
// region release even when fn returns an error or panics.
func Run(c *console.Console, r console.Renderable, fn func(*Session) error, opts ...Option) error {
	s := New(c, r, opts...)
	if err := s.Start(); err != nil {
		return err
	}
	defer func() {
		_ = s.Close()
	}()
	return fn(s)
}
