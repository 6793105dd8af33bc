package survex

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/speleogo/survex3d/internal/item"
	"github.com/speleogo/survex3d/internal/stream"
)

// Parser decodes one Survex 3D image buffer. Each Parser owns its own
// cursor, label buffer and graph state, so independent Parsers may
// run concurrently with no coordination.
type Parser struct {
	data  []byte
	diags *multierror.Error
}

// NewParser creates a Parser over data. The buffer must be fully
// resident; the parser performs no I/O.
func NewParser(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse is a convenience wrapper around NewParser(data).Parse().
func Parse(data []byte) (*ParseResult, error) {
	return NewParser(data).Parse()
}

// Parse decodes the buffer. A bad magic or version string fails with
// an error wrapping ErrInvalidFormat. Data that runs out mid-item is
// treated as end of stream: the result holds everything decoded up to
// the cut, and the truncation is noted in Diagnostics.
func (p *Parser) Parse() (*ParseResult, error) {
	p.diags = nil

	r := stream.NewReader(p.data)
	warn := func(format string, args ...interface{}) {
		p.diags = multierror.Append(p.diags, fmt.Errorf(format, args...))
	}

	hdr, err := decodeHeader(r, warn)
	if err != nil {
		return nil, err
	}

	dec := item.NewDecoder(r, warn)
	g := newGraphBuilder()
	for !dec.AtEnd() {
		it, err := dec.Next()
		if err != nil {
			if errors.Is(err, stream.ErrUnexpectedEOF) {
				warn("item stream truncated at offset %d", r.Offset())
				break
			}
			return nil, err
		}
		g.consume(it)
	}

	stations, legs, bounds := g.result()
	return &ParseResult{
		Header:   hdr,
		Stations: stations,
		Legs:     legs,
		Bounds:   bounds,
	}, nil
}

// Diagnostics returns the soft anomalies noted by the most recent
// Parse call (malformed timestamp, unknown item bytes, clamped label
// edits, truncation), or nil when there were none. Diagnostics never
// cause Parse to fail.
func (p *Parser) Diagnostics() error {
	return p.diags.ErrorOrNil()
}
