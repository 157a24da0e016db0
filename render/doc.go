// Package render writes the annotated bit layout of decoded values as text.
//
// A value is rendered as a block of lines: the raw bits behind a padded
// label, a field map of S/E/M letters aligned under the bits, and one
// description line per field. Lines are built from Segments, each of which
// may carry a Color; when the Writer has color disabled the escapes are
// simply omitted, so text and spacing never differ between modes.
package render
