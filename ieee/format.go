package ieee

import (
	"slices"
	"strings"
)

// Format describes one binary floating-point layout: a sign bit followed by
// ExpBits of biased exponent and MantBits of fraction.
type Format struct {
	// Name is the short label used on the command line and in output, e.g. "f32".
	Name string
	// Title is a longer description, e.g. "IEEE 754 single precision".
	Title    string
	ExpBits  int
	MantBits int

	parse parseFunc
}

// The registered formats.
var (
	Float16 = &Format{
		Name:     "f16",
		Title:    "IEEE 754 half precision",
		ExpBits:  float16ExpBits,
		MantBits: float16MantBits,
		parse:    parseFloat16,
	}
	BFloat16 = &Format{
		Name:     "bf16",
		Title:    "bfloat16 (brain floating point)",
		ExpBits:  bfloat16ExpBits,
		MantBits: bfloat16MantBits,
		parse:    parseBFloat16,
	}
	Float32 = &Format{
		Name:     "f32",
		Title:    "IEEE 754 single precision",
		ExpBits:  float32ExpBits,
		MantBits: float32MantBits,
		parse:    parseFloat32,
	}
	Float64 = &Format{
		Name:     "f64",
		Title:    "IEEE 754 double precision",
		ExpBits:  float64ExpBits,
		MantBits: float64MantBits,
		parse:    parseFloat64,
	}
)

// registry holds every compiled-in format in priority order.
var registry = []*Format{Float16, BFloat16, Float32, Float64}

// TotalBits is the width of the whole pattern.
func (f *Format) TotalBits() int { return signBits + f.ExpBits + f.MantBits }

// SignShift is the bit position of the sign bit.
func (f *Format) SignShift() int { return f.ExpBits + f.MantBits }

// ExpShift is the bit position of the lowest exponent bit.
func (f *Format) ExpShift() int { return f.MantBits }

// ExpMask is the exponent mask after shifting.
func (f *Format) ExpMask() uint64 { return widthMask(f.ExpBits) }

// MantMask is the mantissa mask.
func (f *Format) MantMask() uint64 { return widthMask(f.MantBits) }

// Bias is the exponent bias.
func (f *Format) Bias() int { return int(f.ExpMask() >> 1) }

// Fields returns the sign, exponent and mantissa spans in order. Their
// widths always add up to TotalBits.
func (f *Format) Fields() []Field {
	return []Field{
		{Kind: Sign, Width: signBits, Offset: 0},
		{Kind: Exponent, Width: f.ExpBits, Offset: signBits},
		{Kind: Mantissa, Width: f.MantBits, Offset: signBits + f.ExpBits},
	}
}

func (f *Format) String() string { return f.Name }

// Formats returns all registered formats in priority order.
func Formats() []*Format { return slices.Clone(registry) }

// Names returns the names of all registered formats in priority order.
func Names() []string {
	names := make([]string, len(registry))
	for i, f := range registry {
		names[i] = f.Name
	}
	return names
}

func joinNames() string { return strings.Join(Names(), ", ") }

// Lookup resolves a format by name.
func Lookup(name string) (*Format, error) {
	name = strings.TrimSpace(name)
	for _, f := range registry {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, UnknownFormatError{Name: name}
}

// Select returns the formats named in names, in priority order regardless
// of the order given. An empty allow-list selects every format.
// Blank names are ignored and duplicates collapse.
func Select(names []string) ([]*Format, error) {
	var allowed map[*Format]struct{}
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		if allowed == nil {
			allowed = make(map[*Format]struct{}, len(registry))
		}
		allowed[f] = struct{}{}
	}
	if allowed == nil {
		return Formats(), nil
	}

	out := make([]*Format, 0, len(allowed))
	for _, f := range registry {
		if _, ok := allowed[f]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}
