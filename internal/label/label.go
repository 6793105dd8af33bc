// Package label implements the incremental station-label encoding
// used by Survex 3D image files. Consecutive stations usually share a
// long common prefix, so the format transmits each name as a tail
// edit of the previous one: delete N bytes from the end, then append
// M new bytes.
package label

import (
	"strings"

	"github.com/speleogo/survex3d/internal/stream"
)

// Buffer holds the current station label. One Buffer is shared across
// a whole file parse; each label-bearing item mutates it in place.
type Buffer struct {
	buf []byte
}

// String returns the current label value.
func (b *Buffer) String() string {
	return strings.ToValidUTF8(string(b.buf), "�")
}

// Len returns the current label length in bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// ApplyEdit reads one label edit from r and applies it to the buffer.
//
// The edit starts with a single byte b0. A non-zero b0 packs both
// counts into nibbles: delete = b0>>4, append = b0&0x0f. A zero b0 is
// followed by each count in long form: one byte holding the count, or
// the escape byte 0xff followed by an unsigned 32-bit count.
//
// The delete count is clamped to the buffer length; clamped reports
// whether that happened. After truncation, exactly the append count
// of raw bytes are consumed from r and appended.
func (b *Buffer) ApplyEdit(r *stream.Reader) (clamped bool, err error) {
	del, app, err := readCounts(r)
	if err != nil {
		return false, err
	}

	if del > uint32(len(b.buf)) {
		del = uint32(len(b.buf))
		clamped = true
	}
	b.buf = b.buf[:uint32(len(b.buf))-del]

	if app > 0 {
		data, err := r.ReadBytes(int(app))
		if err != nil {
			return clamped, err
		}
		b.buf = append(b.buf, data...)
	}

	return clamped, nil
}

func readCounts(r *stream.Reader) (del, app uint32, err error) {
	b0, err := r.ReadU8()
	if err != nil {
		return 0, 0, err
	}

	// Packed form: both counts fit in a nibble.
	if b0 != 0 {
		return uint32(b0 >> 4), uint32(b0 & 0x0f), nil
	}

	del, err = readCount(r)
	if err != nil {
		return 0, 0, err
	}
	app, err = readCount(r)
	if err != nil {
		return 0, 0, err
	}
	return del, app, nil
}

// readCount reads a long-form count: a single byte, or 0xff followed
// by a 32-bit little-endian count.
func readCount(r *stream.Reader) (uint32, error) {
	b, err := r.ReadU8()
	if err != nil {
		return 0, err
	}
	if b != 0xff {
		return uint32(b), nil
	}
	return r.ReadU32()
}
