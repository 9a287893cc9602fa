package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinConfirmer asks on the error stream and reads one line from the
// input. Only the exact line "y" is affirmative: "Y", "yes" and an empty
// line all decline. The strictness is deliberate for a prompt that guards
// deleting a file.
type StdinConfirmer struct {
	in     *bufio.Reader
	errOut io.Writer
}

// NewStdinConfirmer creates a confirmer reading from in and prompting on
// errOut.
func NewStdinConfirmer(in io.Reader, errOut io.Writer) *StdinConfirmer {
	return &StdinConfirmer{
		in:     bufio.NewReader(in),
		errOut: errOut,
	}
}

// Confirm prints the prompt and reads the answer. EOF before any input
// counts as a decline, not an error, so piping an empty stdin aborts
// cleanly.
func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprint(c.errOut, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return IsAffirmative(line), nil
}

// IsAffirmative reports whether a raw answer line means yes. Line endings
// are stripped, nothing else; the comparison is case-sensitive.
func IsAffirmative(line string) bool {
	return strings.TrimRight(line, "\r\n") == "y"
}
