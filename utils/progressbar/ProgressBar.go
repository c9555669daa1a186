// Package progressbar implements functionality of printing a progress
// bar to a terminal
package progressbar

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ProgressBar implements progress bar functionality that is managed
// by its caller. The bar is redrawn by Increment whenever the number of
// filled cells changes, so it does not use concurrency.
type ProgressBar struct {
	out             io.Writer
	width           int
	maxProgress     int
	currentProgress int
	drawn           int
	bar             strings.Builder
	startTime       time.Time
	closed          bool
}

// New returns a new ProgressBar that is width characters wide, reaches
// 100% after max calls to Increment, and draws to out
func New(out io.Writer, width, max int) *ProgressBar {
	if width < 1 || max < 1 {
		panic(fmt.Sprintf("new: width and max must be > 0, have %v and %v",
			width, max))
	}
	return &ProgressBar{
		out:         out,
		width:       width,
		maxProgress: max,
		drawn:       -1,
		startTime:   time.Now(),
	}
}

// Increment increments the internal progress counter. Each time an
// iteration is performed, Increment should be called.
func (p *ProgressBar) Increment() {
	if p.closed || p.currentProgress >= p.maxProgress {
		return
	}
	p.currentProgress++
	if p.filled() != p.drawn {
		p.Display()
	}
}

// Progress returns the number of calls to Increment counted so far
func (p *ProgressBar) Progress() int {
	return p.currentProgress
}

// filled returns the number of filled cells of the bar
func (p *ProgressBar) filled() int {
	return p.currentProgress * p.width / p.maxProgress
}

// Display redraws the progress bar over the current line
func (p *ProgressBar) Display() {
	if p.closed {
		return
	}
	p.drawn = p.filled()

	p.bar.Reset()
	p.bar.WriteString("|")
	p.bar.WriteString(strings.Repeat("█", p.drawn))
	p.bar.WriteString(strings.Repeat(" ", p.width-p.drawn))
	fmt.Fprintf(&p.bar, "| [%.2f%% | elapsed: %v]",
		float64(p.currentProgress)/float64(p.maxProgress)*100,
		time.Since(p.startTime).Truncate(time.Second))

	fmt.Fprintf(p.out, "\r\033[K%v", p.bar.String())
}

// Close finishes the bar so that it is no longer drawn
func (p *ProgressBar) Close() {
	if p.closed {
		return
	}
	p.Display()
	p.closed = true
	fmt.Fprintln(p.out)
}
