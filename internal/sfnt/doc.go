// Package sfnt extracts identity names from sfnt font files (TrueType,
// OpenType and font collections).
//
// The package does two things:
//   - Faces sniffs a file's leading bytes and returns the face indices to try.
//     A TTC collection declaring N faces yields 0..N-1; everything else yields
//     the single index 0. Faces never fails.
//   - ExtractNames parses one face and returns the name records whose name ID
//     is FullName or PostScriptName and whose payload is non-empty, in the
//     order the name table stores them. Payloads are raw bytes; no text
//     decoding is done. Name records are read with
//     github.com/ConradIrwin/font/sfnt; the face checks around it are local.
//
// A face that cannot be parsed is reported as a *ParseError wrapping one of
// the sentinel errors (ErrTruncated, ErrVersion, ErrFaceIndex,
// ErrMissingTable, ErrBadTable). Both functions are pure and safe for
// concurrent use.
package sfnt
