package survex

import (
	"strconv"
	"strings"
	"time"

	"github.com/speleogo/survex3d/internal/stream"
)

// Magic is the literal every Survex 3D image file starts with.
const Magic = "Survex 3D Image File"

// decodeHeader consumes the fixed prologue: magic line, version line,
// title line, timestamp line, then one flags byte. On return the
// cursor points at the first item byte.
//
// A mismatched magic or version is fatal. A malformed timestamp is
// not: it degrades to the wall clock and is noted through warn.
func decodeHeader(r *stream.Reader, warn func(format string, args ...interface{})) (Header, error) {
	magic, err := r.ReadDelimited('\n')
	if err != nil || !strings.HasPrefix(magic, Magic) {
		return Header{}, &ParseError{
			Section: "header",
			Offset:  r.Offset(),
			Message: "bad magic string",
			Err:     ErrInvalidFormat,
		}
	}

	version, err := r.ReadDelimited('\n')
	if err != nil || !strings.HasPrefix(version, "v") {
		return Header{}, &ParseError{
			Section: "header",
			Offset:  r.Offset(),
			Message: "bad version string",
			Err:     ErrInvalidFormat,
		}
	}

	title, err := r.ReadDelimited('\n')
	if err != nil {
		return Header{}, &ParseError{
			Section: "header",
			Offset:  r.Offset(),
			Message: "truncated title",
			Err:     ErrUnexpectedEOF,
		}
	}

	tsToken, err := r.ReadDelimited('\n')
	if err != nil {
		return Header{}, &ParseError{
			Section: "header",
			Offset:  r.Offset(),
			Message: "truncated timestamp",
			Err:     ErrUnexpectedEOF,
		}
	}

	flags, err := r.ReadU8()
	if err != nil {
		return Header{}, &ParseError{
			Section: "header",
			Offset:  r.Offset(),
			Message: "missing flags byte",
			Err:     ErrUnexpectedEOF,
		}
	}

	return Header{
		Magic:     magic,
		Version:   version,
		Title:     title,
		Timestamp: parseTimestamp(tsToken, warn),
		Flags:     flags,
	}, nil
}

// parseTimestamp interprets a "@<unix-seconds>" token. Anything else
// falls back to the current time.
func parseTimestamp(token string, warn func(format string, args ...interface{})) time.Time {
	if strings.HasPrefix(token, "@") {
		secs, err := strconv.ParseInt(token[1:], 10, 64)
		if err == nil {
			return time.Unix(secs, 0).UTC()
		}
		warn("malformed timestamp token %q, using current time", token)
		return time.Now().UTC()
	}
	warn("timestamp token %q has no @ prefix, using current time", token)
	return time.Now().UTC()
}
