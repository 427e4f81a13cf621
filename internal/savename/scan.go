package savename

import (
	"fmt"
	"strings"
)

// ParseError reports a structural mismatch: which grammar element was
// expected and the unconsumed remainder at the point of failure. A name that
// produces one does not belong to the naming scheme at all; there is no
// partial record to recover.
type ParseError struct {
	Expected  string
	Remainder string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("save name: expected %s at %q", e.Expected, e.Remainder)
}

// Scanner helpers. Each consumes a prefix of its input and returns the
// remainder, so matchers compose by threading the rest string through.

// scanLiteral consumes lit from the front of input. ok is false (and the
// input is returned untouched) when the literal is not there.
func scanLiteral(input, lit string) (rest string, ok bool) {
	if !strings.HasPrefix(input, lit) {
		return input, false
	}
	return input[len(lit):], true
}

// scanDigits consumes the leading run of ASCII digits. The run may be empty;
// callers that need at least one digit check for "".
func scanDigits(input string) (digits, rest string) {
	i := 0
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	return input[:i], input[i:]
}

// scanUntil consumes everything before the first occurrence of marker and
// leaves the marker itself unconsumed. ok is false when the marker never
// occurs.
func scanUntil(input, marker string) (consumed, rest string, ok bool) {
	i := strings.Index(input, marker)
	if i < 0 {
		return "", input, false
	}
	return input[:i], input[i:], true
}
