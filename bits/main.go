package main

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/synadia-labs/bits.go/bits/core"
	"github.com/synadia-labs/bits.go/export"
	"github.com/synadia-labs/bits.go/ieee"
	"github.com/synadia-labs/bits.go/internal/logging"
	"github.com/synadia-labs/bits.go/internal/version"
	"github.com/synadia-labs/bits.go/render"
)

// CLI defines the bits command-line interface.
//
// The literal comes either from the positional argument or, with --stdin,
// from standard input. With neither, bits prints nothing and exits 0.
type CLI struct {
	Input   *string          `arg:"" optional:"" help:"Numeric literal to decode, e.g. 1.0, -0.0, 6.02e23, inf."`
	Stdin   bool             `help:"Read the literal from standard input instead of the argument."`
	Color   string           `enum:"always,always-ansi,auto,never" default:"auto" env:"BITS_COLOR" help:"When to color the fields (${enum})."`
	Type    []string         `short:"t" enum:"f16,bf16,f32,f64" sep:"," env:"BITS_TYPE" placeholder:"FORMAT" help:"Only show these formats; may be repeated. ${formats}."`
	Output  string           `short:"o" enum:"text,json,cbor,msgpack" default:"text" help:"Output encoding (${enum})."`
	Verbose int              `short:"v" type:"counter" help:"Log diagnostics to stderr; repeat for more."`
	Version kong.VersionFlag `help:"Print version information and exit."`
}

// Validate rejects conflicting input sources before anything is read.
func (c *CLI) Validate() error {
	if c.Stdin && c.Input != nil {
		return core.ErrConflictingInput
	}
	return nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("bits"),
		kong.Description("Show the IEEE-754 bit layout of a number as f16, bf16, f32 and f64."),
		kong.Vars{
			"version": "bits " + version.String(),
			"formats": formatHelp(),
		},
		kong.UsageOnError(),
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(normalizeArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)

	if err := run(&cli, os.Stdin, os.Stdout, os.Stderr); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI, stdin io.Reader, stdout *os.File, stderr io.Writer) error {
	color, err := render.ParseColorChoice(cli.Color)
	if err != nil {
		return err
	}
	output, err := export.ParseEncoding(cli.Output)
	if err != nil {
		return err
	}
	return core.Run(core.Options{
		Stdin:  cli.Stdin,
		Input:  cli.Input,
		Types:  cli.Type,
		Color:  color,
		Output: output,
		Logger: logging.Setup(cli.Verbose, stderr),
	}, stdin, stdout)
}

// formatHelp lists the registered formats with their titles.
func formatHelp() string {
	parts := make([]string, 0, len(ieee.Formats()))
	for _, f := range ieee.Formats() {
		parts = append(parts, f.Name+": "+f.Title)
	}
	return strings.Join(parts, ", ")
}

// normalizeArgs moves every argument that starts with '-' but is not one
// of the short flags below behind a "--" terminator, so literals such as
// -0.0, -inf or -not-a-number are read as the positional input instead of
// failing as unknown flags.
func normalizeArgs(args []string) []string {
	var rest, literals []string
	for i, a := range args {
		if a == "--" {
			literals = append(literals, args[i+1:]...)
			break
		}
		if isHyphenLiteral(a) {
			literals = append(literals, a)
			continue
		}
		rest = append(rest, a)
	}
	if len(literals) == 0 {
		return rest
	}
	rest = append(rest, "--")
	return append(rest, literals...)
}

const (
	// boolShortFlags may be combined, as in -vv or -hv.
	boolShortFlags = "hv"
	// valueShortFlags take a value, attached or as the next argument.
	valueShortFlags = "to"
)

func isHyphenLiteral(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	if strings.IndexByte(valueShortFlags, arg[1]) >= 0 {
		return false
	}
	for i := 1; i < len(arg); i++ {
		if strings.IndexByte(boolShortFlags, arg[i]) < 0 {
			return true
		}
	}
	return false
}
