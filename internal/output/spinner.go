package output

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// Spinner shows in-flight query progress. Start and Stop bracket
// a single blocking operation; the spinner erases itself on Stop so it
// never mixes with result output.
type Spinner struct {
	w    io.Writer
	msg  string
	done chan struct{}
	wg   sync.WaitGroup

	once sync.Once
}

// NewSpinner creates a spinner writing to w with the given message.
func NewSpinner(w io.Writer, msg string) *Spinner {
	return &Spinner{w: w, msg: msg, done: make(chan struct{})}
}

// Start begins animating. It spawns one goroutine, stopped by Stop.
func (s *Spinner) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.done:
				// Erase the spinner line.
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprintf(s.w, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.msg)
				frame++
			}
		}
	}()
}

// Stop halts the animation and clears the line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
	})
	s.wg.Wait()
}
