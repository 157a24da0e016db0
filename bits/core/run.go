package core

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/synadia-labs/bits.go/export"
	"github.com/synadia-labs/bits.go/ieee"
	"github.com/synadia-labs/bits.go/internal/logging"
	"github.com/synadia-labs/bits.go/render"
)

// Options configures a single invocation.
type Options struct {
	// Stdin reads the literal from standard input.
	Stdin bool
	// Input is the positional literal, nil when none was given.
	Input *string
	// Types, if non-empty, restricts output to the named formats.
	Types  []string
	Color  render.ColorChoice
	Output export.Encoding
	Logger zerolog.Logger
}

// Run reads the input, decodes it with every selected format and writes the
// result to stdout. Missing input is not an error. Parse failures skip the
// format and write failures are ignored, so the only errors returned are
// configuration and input errors.
func Run(opts Options, stdin io.Reader, stdout *os.File) error {
	log := logging.Component(opts.Logger, "core")

	formats, err := ieee.Select(opts.Types)
	if err != nil {
		return err
	}

	input, ok, err := ReadInput(opts, stdin)
	if err != nil {
		return err
	}
	if !ok {
		log.Debug().Msg("no input, nothing to do")
		return nil
	}
	log.Debug().
		Bool("stdin", opts.Stdin).
		Str("input", input).
		Strs("formats", formatNames(formats)).
		Str("output", opts.Output.String()).
		Msg("decoding")

	if opts.Output == export.Text {
		w, useColor := opts.Color.Resolve(stdout)
		log.Debug().Str("color", opts.Color.String()).Bool("enabled", useColor).Msg("color resolved")
		Process(input, formats, newTextSink(render.NewWriter(w, useColor), log), log)
		return nil
	}

	sink := &recordSink{}
	Process(input, formats, sink, log)
	if err := export.Encode(stdout, opts.Output, sink.records); err != nil {
		log.Debug().Err(err).Msg("ignoring write error")
	}
	return nil
}

// Process decodes input with each format in order and hands every success
// to out. Formats that cannot parse the input are skipped.
func Process(input string, formats []*ieee.Format, out Sink, log zerolog.Logger) {
	for _, f := range formats {
		v, err := ieee.Decode(f, input)
		if err != nil {
			log.Debug().Err(err).Str("format", f.Name).Msg("skipped")
			continue
		}
		log.Trace().Str("format", f.Name).Str("bits", v.Hex()).Msg("decoded")
		out.Emit(input, v)
	}
}

func formatNames(formats []*ieee.Format) []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.Name
	}
	return names
}
