// Package survex parses Survex 3D image files into a survey graph of
// named stations, connecting legs and spatial bounds.
package survex

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidFormat indicates the buffer is not a Survex 3D image.
	ErrInvalidFormat = errors.New("survex: not a Survex 3D image file")

	// ErrUnexpectedEOF indicates the buffer ended inside a structure
	// that must be complete, such as the file header.
	ErrUnexpectedEOF = errors.New("survex: unexpected end of data")
)

// ParseError provides detailed information about parsing failures.
type ParseError struct {
	Section string // Section being parsed when the error occurred
	Offset  int    // Byte offset within the buffer
	Message string // Description of the error
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("survex: parse error in %s at offset 0x%x: %s: %v",
			e.Section, e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("survex: parse error in %s at offset 0x%x: %s",
		e.Section, e.Offset, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }
