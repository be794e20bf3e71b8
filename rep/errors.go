// This file contains the error taxonomy for replay decoding.
//
// Grounded on condortango/w3g-parser/pkg/w3g/errors.go's ParseError pattern:
// a small struct per failure kind with an Error() string, rather than a flat
// set of sentinel values, so callers that want structured detail can type-
// assert instead of parsing a message.

package rep

import "fmt"

// BadMagic is returned when the first 4 bytes of the input are not the
// replay magic constant.
type BadMagic struct {
	Got uint32
}

func (e *BadMagic) Error() string {
	return fmt.Sprintf("rep: bad magic %#08x", e.Got)
}

// TruncatedInput is returned when the input ran out of bytes while reading
// a framing field (not inside a section's own compressed payload; see
// section.CorruptSection for that).
type TruncatedInput struct {
	At int
}

func (e *TruncatedInput) Error() string {
	return fmt.Sprintf("rep: truncated input at byte %d", e.At)
}

// HeaderSizeMismatch is returned when the header section decompresses to a
// length other than the fixed 633 bytes the format requires.
type HeaderSizeMismatch struct {
	Got, Want int
}

func (e *HeaderSizeMismatch) Error() string {
	return fmt.Sprintf("rep: header decompressed to %d bytes, want %d", e.Got, e.Want)
}

// SectionLengthMismatch is returned when the commands or map section
// decompresses to a length other than the standalone 4-byte length prefix
// that precedes it.
type SectionLengthMismatch struct {
	Section   string
	Got, Want int
}

func (e *SectionLengthMismatch) Error() string {
	return fmt.Sprintf("rep: %s section decompressed to %d bytes, want %d", e.Section, e.Got, e.Want)
}
