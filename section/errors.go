package section

import "fmt"

// CorruptSection reports a chunk of a section that failed to decode: the
// compressed byte stream did not match the shape this codec expects.
type CorruptSection struct {
	Stage  string // which step of the codec detected the problem
	Offset int    // byte offset within the section's compressed payload
	Reason string
}

func (e *CorruptSection) Error() string {
	return fmt.Sprintf("section: corrupt at %s (offset %d): %s", e.Stage, e.Offset, e.Reason)
}

func corrupt(stage string, offset int, reason string) error {
	return &CorruptSection{Stage: stage, Offset: offset, Reason: reason}
}
