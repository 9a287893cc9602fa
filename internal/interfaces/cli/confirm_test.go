package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStdinConfirmer_Confirm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "LowercaseY_Accepts", input: "y\n", expected: true},
		{name: "CRLF_Accepts", input: "y\r\n", expected: true},
		{name: "EOFAfterY_Accepts", input: "y", expected: true},
		{name: "UppercaseY_Declines", input: "Y\n", expected: false},
		{name: "Yes_Declines", input: "yes\n", expected: false},
		{name: "EmptyLine_Declines", input: "\n", expected: false},
		{name: "EmptyInput_Declines", input: "", expected: false},
		{name: "LeadingSpace_Declines", input: " y\n", expected: false},
		{name: "TrailingSpace_Declines", input: "y \n", expected: false},
		{name: "No_Declines", input: "n\n", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errOut := &bytes.Buffer{}
			c := NewStdinConfirmer(strings.NewReader(tt.input), errOut)

			ok, err := c.Confirm("Overwrite? [y/N] ")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ok)
			assert.Equal(t, "Overwrite? [y/N] ", errOut.String(), "prompt goes to the error stream")
		})
	}
}

func TestIsAffirmative_OnlyExactY(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		answer := rapid.StringMatching(`[^\r\n]*`).Draw(t, "answer")

		c := NewStdinConfirmer(strings.NewReader(answer+"\n"), &bytes.Buffer{})
		ok, err := c.Confirm("? ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok != (answer == "y") {
			t.Fatalf("answer %q: got %v", answer, ok)
		}
	})
}
