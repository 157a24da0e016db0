package core

import (
	"github.com/rs/zerolog"

	"github.com/synadia-labs/bits.go/export"
	"github.com/synadia-labs/bits.go/ieee"
	"github.com/synadia-labs/bits.go/render"
)

// Sink receives every successfully decoded value in format priority order.
type Sink interface {
	Emit(input string, v ieee.Value)
}

// textSink renders each value as soon as it arrives.
type textSink struct {
	w   *render.Writer
	log zerolog.Logger
}

func newTextSink(w *render.Writer, log zerolog.Logger) *textSink {
	return &textSink{w: w, log: log}
}

func (s *textSink) Emit(_ string, v ieee.Value) {
	if failed := render.WriteBlock(s.w, v); failed > 0 {
		s.log.Debug().
			Str("format", v.Format().Name).
			Int("failed_lines", failed).
			Msg("ignoring write errors")
	}
}

// recordSink collects records for a single document written at the end.
type recordSink struct {
	records export.Records
}

func (s *recordSink) Emit(input string, v ieee.Value) {
	s.records = append(s.records, export.NewRecord(input, v))
}
