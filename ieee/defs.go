// Package ieee decodes numeric literals into the exact in-memory bit patterns
// of binary floating-point formats and describes how those bits split into
// sign, exponent and mantissa fields.
//
// This package defines three "families" of functions:
//   - Formats(), Lookup() and Select() expose the statically registered
//     formats in priority order (f16, bf16, f32, f64).
//   - (*Format).Fields() describes the field partition of a layout.
//   - Decode() parses a literal for one format and returns a Value holding
//     the raw bits, obtained by bit reinterpretation rather than conversion.
//
// A literal that does not parse for a format is reported with a *ParseError;
// callers that render several formats treat it as "not applicable" and move on.
package ieee

// parseFunc turns a trimmed literal into the raw bit pattern of a format.
// The result must fit in the format's total width.
type parseFunc func(s string) (uint64, error)
