// Package stream provides binary reading utilities for Survex 3D image parsing.
package stream

import (
	"encoding/binary"
	"errors"
	"strings"
)

// Errors returned by Reader
var (
	ErrUnexpectedEOF = errors.New("stream: unexpected end of data")
)

// Reader provides methods for reading binary data from a Survex 3D
// image buffer. The cursor only moves forward, and only on success.
// All multi-byte values are read in little-endian order.
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a Reader from a byte slice.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, offset: 0}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of bytes remaining.
func (r *Reader) Remaining() int {
	if r.offset >= len(r.data) {
		return 0
	}
	return len(r.data) - r.offset
}

// AtEnd reports whether the cursor has consumed the whole buffer.
func (r *Reader) AtEnd() bool {
	return r.offset >= len(r.data)
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	if r.offset+n > len(r.data) {
		return ErrUnexpectedEOF
	}
	r.offset += n
	return nil
}

// ReadU8 reads an unsigned 8-bit integer.
func (r *Reader) ReadU8() (uint8, error) {
	if r.offset >= len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	v := r.data[r.offset]
	r.offset++
	return v, nil
}

// ReadU16 reads an unsigned 16-bit integer.
func (r *Reader) ReadU16() (uint16, error) {
	if r.offset+2 > len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint16(r.data[r.offset:])
	r.offset += 2
	return v, nil
}

// ReadU32 reads an unsigned 32-bit integer.
func (r *Reader) ReadU32() (uint32, error) {
	if r.offset+4 > len(r.data) {
		return 0, ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(r.data[r.offset:])
	r.offset += 4
	return v, nil
}

// ReadI16 reads a signed 16-bit integer.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

// ReadI32 reads a signed 32-bit integer.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadBytes reads n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if r.offset+n > len(r.data) {
		return nil, ErrUnexpectedEOF
	}
	v := make([]byte, n)
	copy(v, r.data[r.offset:r.offset+n])
	r.offset += n
	return v, nil
}

// ReadDelimited reads bytes up to the next occurrence of delim and
// decodes them as UTF-8, replacing invalid sequences rather than
// failing. The cursor advances past the delimiter.
//
// When delim is the null byte, running out of data before finding it
// is not an error: the string is the rest of the buffer. For any
// other delimiter a missing terminator is ErrUnexpectedEOF.
func (r *Reader) ReadDelimited(delim byte) (string, error) {
	start := r.offset
	for r.offset < len(r.data) {
		if r.data[r.offset] == delim {
			s := r.data[start:r.offset]
			r.offset++
			return decodeUTF8(s), nil
		}
		r.offset++
	}
	if delim == 0 {
		r.offset = len(r.data)
		return decodeUTF8(r.data[start:]), nil
	}
	r.offset = start
	return "", ErrUnexpectedEOF
}

// decodeUTF8 converts raw bytes to a string, substituting the Unicode
// replacement character for invalid sequences.
func decodeUTF8(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
