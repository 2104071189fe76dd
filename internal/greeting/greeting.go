package greeting

import (
	"fmt"
	"io"
)

const (
	Hello   = "Hello!"
	Welcome = "Welcome to, Rust!"

	// Transcript is the exact byte sequence Write produces on success.
	Transcript = Hello + "\n" + Welcome + "\n"
)

// step is one ordered write of the transcript.
type step struct {
	name string
	text string
}

var steps = []step{
	{name: "hello", text: Hello},
	{name: "newline", text: "\n"},
	{name: "welcome", text: Welcome + "\n"},
}

// Write emits the transcript to w. It stops at the first failed write and
// returns an error naming that step; nothing is retried.
func Write(w io.Writer) error {
	for _, s := range steps {
		if _, err := io.WriteString(w, s.text); err != nil {
			return fmt.Errorf("write %s: %w", s.name, err)
		}
	}
	return nil
}
