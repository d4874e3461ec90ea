package render

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"golang.org/x/term"
)

// Progress is the samples-taken atomic counter spec.md §4.6 requires,
// backing a roughly-10fps text progress readout. Since this renderer
// has no preview window (spec.md §1's explicit Non-goal), the readout
// is a terminal-width-aware progress line rather than a graphical
// overlay — ambient output-stream housekeeping, not a GUI.
type Progress struct {
	taken atomic.Int64
	total int64
}

// NewProgress creates a counter against the total number of samples
// the whole render will take (width * height * samplesPerPixel).
func NewProgress(total int64) *Progress {
	return &Progress{total: total}
}

// Add records n more samples taken, safe to call from any worker.
func (p *Progress) Add(n int64) { p.taken.Add(n) }

// Fraction returns the current completion ratio in [0, 1].
func (p *Progress) Fraction() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.taken.Load()) / float64(p.total)
}

// WatchTerminal writes a width-aware progress bar to w every tick
// until done is closed, capped at roughly 10fps. fd is the file
// descriptor backing w, used only to query terminal width; when w is
// not a terminal (e.g. redirected to a file) a fixed 80-column bar is
// used instead.
func (p *Progress) WatchTerminal(w io.Writer, fd int, done <-chan struct{}) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			p.render(w, fd)
			fmt.Fprintln(w)
			return
		case <-ticker.C:
			p.render(w, fd)
		}
	}
}

func (p *Progress) render(w io.Writer, fd int) {
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 20 {
		width = 80
	}
	barWidth := width - 10
	frac := p.Fraction()
	filled := int(frac * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	fmt.Fprintf(w, "\r[%s%s] %3.0f%%", bar('=', filled), bar(' ', barWidth-filled), frac*100)
}

func bar(c byte, n int) string {
	if n < 0 {
		n = 0
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
