// Package console provides line-based helpers for reading user input from standard input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Reader consumes lines from an input stream, optionally displaying a prompt on an output stream first.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader returns a 'Reader' which consumes lines from the given input stream and writes prompts to the given
// output stream.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Input blocks until a full line (or end-of-stream) is available, returning the line with its trailing terminator
// removed.
//
// NOTE: An empty line yields an empty string, a closed/exhausted stream yields 'ErrInputUnavailable'; the two are
// distinct.
func (r *Reader) Input() (string, error) {
	line, err := r.in.ReadString('\n')

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		// A final unterminated line is still a successful read, only a zero byte read is a failure
		if line == "" {
			return "", ErrInputUnavailable
		}
	default:
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

// Prompt writes the given message to the output stream without a trailing line break, then blocks reading a line as
// 'Input' does.
func (r *Reader) Prompt(message string) (string, error) {
	if _, err := fmt.Fprint(r.out, message); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	// The standard streams are unbuffered, anything wrapped in a 'bufio.Writer' must be flushed so that the prompt
	// is visible before blocking on input
	if flusher, ok := r.out.(interface{ Flush() error }); ok {
		if err := flusher.Flush(); err != nil {
			return "", fmt.Errorf("failed to flush prompt: %w", err)
		}
	}

	return r.Input()
}

// std is shared by the package level functions so that buffered input isn't lost between calls.
var std = NewReader(os.Stdin, os.Stdout)

// Input reads a single line from standard input, similar to Python's 'input' function.
func Input() (string, error) {
	return std.Input()
}

// Prompt displays the given message on standard output then reads a single line from standard input.
func Prompt(message string) (string, error) {
	return std.Prompt(message)
}
