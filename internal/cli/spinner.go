package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pubdate/pkg/observability"
)

// Spinner provides a simple progress indicator with context cancellation support.
type Spinner struct {
	out     *lineWriter
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	mu      sync.Mutex
	once    sync.Once
	started atomic.Bool
}

// newSpinnerWithContext creates a spinner drawing on out that stops when
// ctx is cancelled.
func newSpinnerWithContext(ctx context.Context, out *lineWriter, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		out:     out,
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.out.clear()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.out.frame(styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.Message()))
				i++
			}
		}
	}()
}

// SetMessage replaces the text shown next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = msg
}

// Message returns the text shown next to the spinner.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Stop stops the spinner and clears the line. It is safe to call more than
// once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		if s.started.Load() {
			<-s.stopped
		}
		s.cancel()
	})
	s.out.clear()
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	printSuccess(s.out, format, args...)
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil && !s.isStopped()
}

func (s *Spinner) isStopped() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// =============================================================================
// Shared stderr
// =============================================================================

// lineWriter serializes writes to stderr between the logger and the
// spinner. Any write first erases the spinner frame on screen, so log lines
// never land in the middle of one.
type lineWriter struct {
	mu    sync.Mutex
	w     io.Writer
	width int // printable width of the frame currently on screen
}

func (l *lineWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
	return l.w.Write(p)
}

// frame replaces the current spinner frame with s.
func (l *lineWriter) frame(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
	fmt.Fprint(l.w, "\r"+s)
	l.width = lipgloss.Width(s)
}

func (l *lineWriter) clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearLocked()
}

func (l *lineWriter) clearLocked() {
	if l.width == 0 {
		return
	}
	fmt.Fprintf(l.w, "\r%s\r", strings.Repeat(" ", l.width))
	l.width = 0
}

// =============================================================================
// Pipeline progress
// =============================================================================

// spinnerHooks shows pipeline progress in the spinner message.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
}

func (h *spinnerHooks) OnListStart(context.Context) {
	h.spinner.SetMessage("Listing dependencies...")
}

func (h *spinnerHooks) OnResolveStart(_ context.Context, name, version string) {
	h.spinner.SetMessage(fmt.Sprintf("Resolving %s@%s...", name, version))
}

func (h *spinnerHooks) OnReportReady(context.Context, int, int) {
	h.spinner.SetMessage("Sorting...")
}
