package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ErrUnknownColorChoice is returned by ParseColorChoice for unsupported values.
var ErrUnknownColorChoice = errors.New("render: unknown color choice")

// ColorChoice selects when output is colored.
type ColorChoice uint8

const (
	// Auto colors only when the destination is a terminal.
	Auto ColorChoice = iota
	// Always colors, translating escapes for legacy Windows consoles.
	Always
	// AlwaysANSI colors with raw ANSI escapes on every platform.
	AlwaysANSI
	// Never disables color.
	Never
)

// ColorChoices lists the accepted spellings.
var ColorChoices = []string{"always", "always-ansi", "auto", "never"}

// getenv is swapped out in tests.
var getenv = os.Getenv

// ParseColorChoice parses one of ColorChoices. The empty string means Auto.
func ParseColorChoice(s string) (ColorChoice, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "always-ansi":
		return AlwaysANSI, nil
	case "never":
		return Never, nil
	default:
		return Auto, fmt.Errorf("%w %q (expected %s)", ErrUnknownColorChoice, s, strings.Join(ColorChoices, "|"))
	}
}

func (c ColorChoice) String() string {
	switch c {
	case Always:
		return "always"
	case AlwaysANSI:
		return "always-ansi"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

// Resolve returns the writer to use for f and whether color is enabled.
func (c ColorChoice) Resolve(f *os.File) (io.Writer, bool) {
	switch c {
	case Always:
		return colorable.NewColorable(f), true
	case AlwaysANSI:
		return f, true
	case Never:
		return f, false
	default:
		if isTerminal(f) && getenv("NO_COLOR") == "" && getenv("TERM") != "dumb" {
			return colorable.NewColorable(f), true
		}
		return f, false
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
