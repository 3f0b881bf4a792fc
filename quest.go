// Package quest provides widgets for building interactive command-line
// prompts: text entry, numeric entry, single and multi select lists and
// confirmations. Widgets render into a fixed-width, line-oriented
// terminal viewport and degrade gracefully when their content exceeds
// the available screen space.
package quest

import "errors"

// Validation is returned by a Question when the user presses enter.
type Validation int

const (
	// ValidationFinish means the prompt is ready to finish.
	ValidationFinish Validation = iota
	// ValidationContinue means the state is valid but the prompt should
	// persist. The enter key is treated as processed, nothing is printed
	// and the prompt keeps running.
	ValidationContinue
)

var (
	// ErrInterrupted is returned by Input.Run when the user presses ctrl-c.
	ErrInterrupted = errors.New("interrupted")

	// ErrEOF is returned by Input.Run when the input stream ends.
	ErrEOF = errors.New("end of input")
)
