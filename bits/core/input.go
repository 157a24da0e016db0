package core

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrConflictingInput is returned when both a positional literal and --stdin
// are given.
var ErrConflictingInput = errors.New("core: a literal argument and --stdin are mutually exclusive")

// ReadInput returns the literal to decode. With Stdin set the reader is
// drained and the result trimmed of surrounding whitespace; otherwise the
// positional literal is used as given. ok is false when no input was
// supplied at all.
func ReadInput(opts Options, stdin io.Reader) (input string, ok bool, err error) {
	if opts.Stdin && opts.Input != nil {
		return "", false, ErrConflictingInput
	}
	if opts.Stdin {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", false, fmt.Errorf("read stdin: %w", err)
		}
		return strings.TrimSpace(string(b)), true, nil
	}
	if opts.Input == nil {
		return "", false, nil
	}
	return *opts.Input, true, nil
}
