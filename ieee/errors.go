package ieee

import (
	"errors"
	"strconv"
)

// ErrUnknownFormat is returned when a format name is not registered.
var ErrUnknownFormat error = errors.New("ieee: unknown format")

// UnknownFormatError reports the name that failed to resolve.
// It matches ErrUnknownFormat with errors.Is.
type UnknownFormatError struct {
	Name string
}

// Error implements the error interface
func (e UnknownFormatError) Error() string {
	return "ieee: unknown format " + strconv.Quote(e.Name) + " (expected one of " + joinNames() + ")"
}

// Is reports whether target is ErrUnknownFormat.
func (e UnknownFormatError) Is(target error) bool { return target == ErrUnknownFormat }

// ParseError is returned by Decode when a literal is not accepted by the
// grammar of the requested format. Err is the underlying cause, usually
// strconv.ErrSyntax.
type ParseError struct {
	Format string
	Input  string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "ieee: cannot parse " + strconv.Quote(e.Input) + " as " + e.Format + ": " + e.Err.Error()
}

// Unwrap returns the cause.
func (e *ParseError) Unwrap() error { return e.Err }
